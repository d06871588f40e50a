package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/specialistvlad/argdump/internal/model"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		in        Config
		expected  *Config
		expectErr bool
	}{
		{
			name:     "defaults",
			in:       Config{},
			expected: &Config{LogLevel: "warn", LogFormat: "text"},
		},
		{
			name:     "explicit values",
			in:       Config{LogLevel: "debug", LogFormat: "json"},
			expected: &Config{LogLevel: "debug", LogFormat: "json"},
		},
		{
			name:      "invalid level",
			in:        Config{LogLevel: "loud"},
			expectErr: true,
		},
		{
			name:      "invalid format",
			in:        Config{LogFormat: "yaml"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.in)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, cfg)
		})
	}
}

func TestApp_Run_PrintsRecord(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	testApp, out, logs := SetupAppTest(t)
	args := &model.Arguments{Pos: strPtr("foo"), Param: strPtr("bar"), Switch: true}

	// --- Act ---
	err := testApp.Run(context.Background(), args)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Namespace(pos=\"foo\", param=\"bar\", switch=true)\n", out.String())
	require.Contains(t, logs.String(), "App.Run method finished.")
}

func TestApp_Run_NilArguments(t *testing.T) {
	t.Parallel()

	testApp, out, _ := SetupAppTest(t)

	err := testApp.Run(context.Background(), nil)

	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestApp_LogsStayOffOutput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	testApp := NewApp(out, logs, cfg)

	// --- Act ---
	err = testApp.Run(context.Background(), &model.Arguments{})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Namespace(pos=null, param=null, switch=false)\n", out.String())
	require.Empty(t, logs.String(), "debug records must be filtered at the default level")
}

func TestApp_JSONLogFormat(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg, err := NewConfig(Config{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	testApp := NewApp(out, logs, cfg)

	// --- Act ---
	err = testApp.Run(context.Background(), &model.Arguments{Pos: strPtr("${HOME}")})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Namespace(pos=\"${HOME}\", param=null, switch=false)\n", out.String())

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record), "log line is not JSON: %s", line)
		require.Equal(t, "DEBUG", record["level"])
	}
}
