package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all commands.
type app struct {
	cfgFile string
	verbose bool

	v      *viper.Viper
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "colonsegment",
		Short: "Generate a colon segment mesh with a simple mesentery",
		Long: `colonsegment builds a hexahedral mesh of a colon segment with a mesenteric
zone along one side. Options come from a named parameter set, overlaid by a YAML
config file and COLONSEGMENT_* environment variables.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := a.setupLogging(); err != nil {
				return err
			}
			return a.initConfig()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCommand(a), newOptionsCommand(a))
	return root
}

func (a *app) setupLogging() error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// initConfig loads the config file, if any, and binds the environment.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix("colonsegment")
	a.v.AutomaticEnv()
	if a.cfgFile == "" {
		return nil
	}
	a.v.SetConfigFile(a.cfgFile)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	a.logger.Debug("using config file", zap.String("file", a.v.ConfigFileUsed()))
	return nil
}
