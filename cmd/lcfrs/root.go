package main

import (
	"context"

	"github.com/spf13/cobra"
)

// configKey is used to store the config in a command's context.
type configKey struct{}

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lcfrs",
		Short: "Induce LCFRS grammars from NeGra treebanks",
		Long: `lcfrs extracts a Linear Context-Free Rewriting System from a corpus of
discontinuous constituency trees in NeGra export format.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, used, err := loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			setTraceLevel(cfg.Trace)
			if used != "" {
				tracer().Infof("Using config file %s", used)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lcfrs.yaml)")
	root.PersistentFlags().String("trace", "", "Trace level [Debug|Info|Error]")
	root.PersistentFlags().String("order", "", "Daughter order [position|declared]")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress and run report")
	_ = root.RegisterFlagCompletionFunc("order", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"position", "declared"}, cobra.ShellCompDirectiveNoFileComp
	})
	root.AddCommand(newInduceCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// configFrom returns the config loaded for a command.
func configFrom(cmd *cobra.Command) *Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*Config); ok {
		return cfg
	}
	cfg, _, _ := loadConfig("", nil)
	return cfg
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of lcfrs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("lcfrs %s\n", Version)
		},
	}
}
