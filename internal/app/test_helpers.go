package app

import (
	"bytes"
	"os"
	"testing"
)

// SetupAppTest creates an App at debug level whose output and logs are captured
// in separate buffers.
func SetupAppTest(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	outBuffer := &bytes.Buffer{}
	logBuffer := &bytes.Buffer{}
	testApp := NewApp(outBuffer, logBuffer, &Config{LogLevel: "debug", LogFormat: "text"})

	t.Cleanup(func() {
		if os.Getenv("ARGDUMP_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
