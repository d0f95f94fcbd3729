// Package cli provides the command-line interface for wic.
package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avalluri/wic/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Format specifies the output format (text or json).
	Format string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command. These flags are available to
// all subcommands via PersistentFlags. The global flags carry no shorthands;
// the single-letter flags are reserved for the create command's artifact
// options.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(&flags.Format, "format", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	cmd.PersistentFlags().BoolVar(&flags.Quiet, "quiet", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper for configuration file and
// environment variable support. The WIC_ prefix is used for environment
// variables (e.g., WIC_FORMAT, WIC_VERBOSE).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	if err := v.BindPFlag("format", rootFlags.Lookup("format")); err != nil {
		return err
	}
	if err := v.BindPFlag("verbose", rootFlags.Lookup("verbose")); err != nil {
		return err
	}
	if err := v.BindPFlag("quiet", rootFlags.Lookup("quiet")); err != nil {
		return err
	}

	v.SetEnvPrefix("WIC")
	v.AutomaticEnv()

	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// invalidInputSentinels are the errors that indicate a malformed command line
// rather than a failure of validation, resolution, or the engine. Failures in
// the latter group always exit 1.
//
//nolint:gochecknoglobals // Read-only lookup table for exit code mapping
var invalidInputSentinels = []error{
	errors.ErrInvalidArgument,
	errors.ErrUnknownListKind,
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for command-line
// usage errors (unknown flags, bad arguments), and ExitError (1) for all other
// errors, including artifact-resolution and configuration failures.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	for _, sentinel := range invalidInputSentinels {
		if stderrors.Is(err, sentinel) {
			return ExitInvalidInput
		}
	}

	// Check for Cobra flag parsing errors (mutually exclusive flags, unknown flags, etc.)
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"accepts 1 arg",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
