// Package cli builds the solarcast command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"solarcast/internal/config"
)

// MainWithArgs runs the command tree and returns a process exit code.
func MainWithArgs(args []string) int {
	return run(context.Background(), args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := buildRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "solarcast: %v\n", err)
		return 1
	}
	return 0
}

// buildRootCmd constructs the command tree. Running the root without a
// subcommand is the same as "serve".
func buildRootCmd() *cobra.Command {
	def := config.Default()
	root := &cobra.Command{
		Use:           "solarcast",
		Short:         "Solar radiation forecasts over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a config file (.yaml, .yml, .json or .toml)")
	pf.String("log-level", def.LogLevel, "Log level: debug|info|warn|error|off")
	pf.String("global-model", def.GlobalModel, "Location of the global radiation model artifact")
	pf.String("diffusion-model", def.DiffusionModel, "Location of the diffuse radiation model artifact")
	pf.String("addr", def.Addr, "HTTP listen address, e.g. :8000")
	pf.Int64("max-body-bytes", def.MaxBodyBytes, "Maximum request body size in bytes")

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP server",
		Example: "  solarcast serve --addr :8000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, newLogger(cfg, cmd.ErrOrStderr()))
		},
	}
	root.RunE = serveCmd.RunE

	predictCmd := &cobra.Command{
		Use:     "predict",
		Short:   "Print a forecast as the API would return it",
		Example: "  solarcast predict --model global --year 2024\n  solarcast predict --model diffusion --date 2023-06-15",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return predict(cmd, cfg)
		},
	}
	predictCmd.Flags().String("model", "global", "Model type: global|diffusion")
	predictCmd.Flags().Int("year", 0, "Forecast every day of this year")
	predictCmd.Flags().String("date", "", "Forecast a single date (YYYY-MM-DD)")
	predictCmd.MarkFlagsMutuallyExclusive("year", "date")
	predictCmd.MarkFlagsOneRequired("year", "date")

	root.AddCommand(serveCmd, predictCmd)
	return root
}

// resolveConfig layers defaults < config file < environment (.env included) < flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := config.Default()
	flags := cmd.Flags()
	if p, _ := flags.GetString("config"); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", p, err)
		}
		cfg = loaded
	}
	cfg, err := config.ApplyEnv(cfg)
	if err != nil {
		return cfg, err
	}
	str := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	str("log-level", &cfg.LogLevel)
	str("global-model", &cfg.GlobalModel)
	str("diffusion-model", &cfg.DiffusionModel)
	str("addr", &cfg.Addr)
	if flags.Changed("max-body-bytes") {
		cfg.MaxBodyBytes, _ = flags.GetInt64("max-body-bytes")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
