package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/seqmatch/log"
)

// newRootCmd builds the command tree. Every call returns fresh commands and
// a fresh viper instance so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "seqmatch",
		Short: "seqmatch finds motifs in sequences",
		Long: `seqmatch finds PROSITE-style motifs in nucleotide and protein sequences,
and restriction enzyme sites in DNA.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind the flags of the command being run; subcommands share
			// flag names.
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			return setLogLevel(v.GetString("log-level"))
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.seqmatch.yaml)")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().Int("begin", 0, "offset added to reported positions (1 for 1-based output)")

	root.AddCommand(newClassifyCmd(v), newSearchCmd(v), newRestrictCmd(v))
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".seqmatch")
	}

	v.SetEnvPrefix("seqmatch")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	log.Debugf("seqmatch: using config file %s", v.ConfigFileUsed())
	return nil
}

func setLogLevel(s string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", s, err)
	}
	log.SetLevel(l)
	return nil
}
