package cli

import (
	"fmt"
	"log/slog"

	"github.com/gobeaver/mimekit"
	"github.com/spf13/cobra"
)

// app holds state shared by all subcommands of one invocation
type app struct {
	output   string
	logLevel string
	lenient  bool

	resolver *mimekit.Resolver
	logger   *slog.Logger
}

// NewRootCommand builds the mimekit command tree
func NewRootCommand(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "mimekit",
		Short:   "Identify file content types",
		Long:    `mimekit classifies files by extension, magic bytes and image headers.`,
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatText, "Output format (text, json, yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides BEAVER_MIMEKIT_LOG_LEVEL")
	root.PersistentFlags().BoolVar(&a.lenient, "lenient", false, "Accept extensions without a leading dot")

	root.AddCommand(
		newExtCommand(a),
		newSniffCommand(a),
		newImageCommand(a),
		newTypesCommand(a),
	)
	return root
}

// Execute runs the root command with the build version injected via ldflags
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := validateFormat(a.output); err != nil {
		return err
	}

	cfg, err := mimekit.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("lenient") {
		cfg.LenientExtensions = a.lenient
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.resolver, err = mimekit.New(cfg, mimekit.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("creating resolver: %w", err)
	}
	return nil
}
