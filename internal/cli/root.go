// Package cli provides the command-line interface for branding.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	brandingerrors "github.com/princespaghetti/branding/internal/errors"
)

// Version information (will be set by build flags in production).
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var (
	debug  bool
	logger = newLogger(os.Stderr)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "branding",
	Short: "Fetch branding data from a URL",
	Long: `branding downloads a branding definition over HTTP and prints it as JSON.

Every failure, whether the host is unreachable, the server answers with a
non-2xx status, or the body is not valid JSON, is reported with the same
message naming the URL. Use --debug to log the underlying cause.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "branding version %s\n", Version)
		fmt.Fprintf(out, "  commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  built:  %s\n", BuildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	rootCmd.AddCommand(versionCmd)
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: !colorsEnabled,
	})
	return l
}

// usageError marks bad arguments or flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// usageArgs marks errors from an argument validator as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	var uerr *usageError
	switch {
	case err == nil:
		return brandingerrors.ExitSuccess
	case brandingerrors.IsFetchError(err):
		return brandingerrors.ExitNetworkError
	case errors.As(err, &uerr):
		return brandingerrors.ExitConfigError
	default:
		return brandingerrors.ExitGeneralError
	}
}

// Execute runs the root command and handles errors.
// Interrupts cancel in-flight requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		failure(os.Stderr, "%v", err)
		os.Exit(exitCode(err))
	}
}
