package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ichiban/horn"
)

// Version is a version of this build.
var Version = "horn/0.1"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// flags are the command line flags shared by all the commands.
type flags struct {
	config      string
	verbose     bool
	occursCheck bool
	unknown     horn.UnknownAction
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "horn [files...]",
		Short:        "An interactive top level for Horn clause programs",
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return runREPL(cmd.Context(), cfg, args)
		},
	}

	f.register(cmd.PersistentFlags())
	cmd.AddCommand(newQueryCmd(&f))
	return cmd
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "path to a YAML configuration file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "trace goals")
	fs.BoolVar(&f.occursCheck, "occurs-check", false, "reject cyclic bindings in unification")
	fs.Var(&f.unknown, "unknown", `what to do with calls to unknown procedures: "fail" or "warning"`)
}

// resolve reads the configuration file, if any, and overrides it with the flags set on the command line.
func (f *flags) resolve(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{}
	if f.config != "" {
		var err error
		cfg, err = LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if fs.Changed("occurs-check") {
		cfg.OccursCheck = f.occursCheck
	}
	if fs.Changed("unknown") {
		cfg.Unknown = f.unknown.String()
	}

	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return cfg, nil
}
