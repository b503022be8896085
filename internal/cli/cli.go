package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/seqdoc/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options holds the raw flag values before validation.
type options struct {
	document     string
	format       string
	logFormat    string
	logLevel     string
	maxSteps     int
	printGlobals bool
}

// NewRootCommand creates the seqdoc command. onConfig receives the validated
// configuration when a document path was given.
func NewRootCommand(onConfig func(*app.Config)) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "seqdoc [DOCUMENT]",
		Short: "seqdoc - sequential document translator",
		Long: `Executes a document of nested instances in order.

Each instance may carry an HCL expression that is evaluated against the
global namespace and the instance's own namespace. DOCUMENT may be a .json,
.yaml/.yml or .hcl file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.document
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			slog.Debug("Document path determined.", "path", path)

			if path == "" {
				slog.Debug("No document path provided, printing usage and exiting.")
				return cmd.Usage()
			}

			cfg, err := app.NewConfig(app.Config{
				DocumentPath: path,
				Format:       strings.ToLower(opts.format),
				LogFormat:    strings.ToLower(opts.logFormat),
				LogLevel:     strings.ToLower(opts.logLevel),
				MaxSteps:     opts.maxSteps,
				PrintGlobals: opts.printGlobals,
			})
			if err != nil {
				return err
			}
			onConfig(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.document, "document", "d", "", "path to the document file")
	flags.StringVar(&opts.format, "format", "auto", "document format (auto|json|yaml|hcl)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log output format (text|json)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "logging level (debug|info|warn|error)")
	flags.IntVar(&opts.maxSteps, "max-steps", 0, "abort after visiting this many instances, 0 disables the limit")
	flags.BoolVar(&opts.printGlobals, "print-globals", false, "print the global namespace as JSON after a successful run")

	return cmd
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var cfg *app.Config
	cmd := NewRootCommand(func(c *app.Config) { cfg = c })
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg == nil {
		// Help was requested or no document was given.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
