package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/argdump/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ProgramName is used in usage lines and error messages.
const ProgramName = "argdump"

// flagValues receives the raw flag values before they are bound to the record.
type flagValues struct {
	param string
	sw    bool
}

// registerFlags declares the option and the switch on fs.
func registerFlags(fs *pflag.FlagSet, v *flagValues) {
	fs.StringVarP(&v.param, model.AttrParam, "p", "", "Param")
	fs.BoolVarP(&v.sw, model.AttrSwitch, "s", false, "Switch")
}

// bind builds the record from the parsed flag set and positional tokens.
// Param is only set when the flag was actually given.
func bind(fs *pflag.FlagSet, v *flagValues, positional []string) *model.Arguments {
	parsed := &model.Arguments{Switch: v.sw}
	if fs.Changed(model.AttrParam) {
		param := v.param
		parsed.Param = &param
	}
	if len(positional) > 0 {
		pos := positional[0]
		parsed.Pos = &pos
	}
	return parsed
}

// newCommand builds the root command. onRun receives the bound record when
// parsing succeeds and help was not requested.
func newCommand(outW, errW io.Writer, onRun func(*model.Arguments)) *cobra.Command {
	values := &flagValues{}

	cmd := &cobra.Command{
		Use:   ProgramName + " [pos]",
		Short: "Print the parsed command-line arguments.",
		Long: `argdump parses an optional positional argument, the -p/--param option and
the -s/--switch flag, then prints the parsed record.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, positional []string) error {
			onRun(bind(cmd.Flags(), values, positional))
			return nil
		},
	}
	cmd.SetOut(outW)
	cmd.SetErr(errW)

	registerFlags(cmd.Flags(), values)
	cmd.InitDefaultHelpFlag()

	return cmd
}

// parseRoot parses args against the root command's flags, validates the
// positional arity and runs the command. A help request is returned as
// pflag.ErrHelp.
func parseRoot(cmd *cobra.Command, args []string) error {
	if err := cmd.ParseFlags(args); err != nil {
		return err
	}

	helpVal, err := cmd.Flags().GetBool("help")
	if err != nil {
		return fmt.Errorf("help flag not registered: %w", err)
	}
	if helpVal {
		return pflag.ErrHelp
	}

	positional := cmd.Flags().Args()
	if err := cmd.ValidateArgs(positional); err != nil {
		return err
	}
	return cmd.RunE(cmd, positional)
}

// Parse processes command-line arguments. It returns the parsed record,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Help requested with -h/--help goes to outW. Help for an empty invocation and
// usage for malformed input go to errW.
func Parse(args []string, outW, errW io.Writer) (*model.Arguments, bool, error) {
	slog.Debug("CLI parser started.", "args", args)

	var parsed *model.Arguments
	cmd := newCommand(outW, errW, func(a *model.Arguments) { parsed = a })

	if len(args) == 0 {
		slog.Debug("No arguments provided, printing help and exiting.")
		cmd.SetOut(errW)
		if err := cmd.Help(); err != nil {
			return nil, false, fmt.Errorf("failed to print help: %w", err)
		}
		return nil, false, &ExitError{Code: ExitNoArguments, Err: ErrNoArguments}
	}

	// The root command has no subcommands, so flags are parsed on it directly
	// rather than through Execute, which would route reserved tokens such as
	// __complete to cobra's hidden completion command.
	if err := parseRoot(cmd, args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			slog.Debug("Help requested, printing help and exiting.")
			if err := cmd.Help(); err != nil {
				return nil, false, fmt.Errorf("failed to print help: %w", err)
			}
			return nil, true, nil
		}
		slog.Debug("Argument parsing failed.", "error", err)
		fmt.Fprint(errW, cmd.UsageString())
		return nil, false, &ExitError{
			Code:    ExitUsage,
			Message: fmt.Sprintf("%s: error: %v", ProgramName, err),
			Err:     err,
		}
	}

	if parsed == nil {
		return nil, false, fmt.Errorf("parser finished without a result")
	}

	slog.Debug("CLI parser finished successfully.", "arguments", parsed.String())
	return parsed, false, nil
}
