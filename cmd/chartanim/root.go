package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/NickKoleits/gg-animate-tutorial/src/logging"
)

var subcommandFns = map[string]func(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command{}

// NewRootCommand reads the map of subcommandFns and creates a top level
// cobra command with each of them as subcommands.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "chartanim",
		Short: "chartanim - static charts and GIF animations from CSV tables",
		Long: `A worked tutorial turning tabular datasets (development
indicators, temperature anomalies, climate simulations) into static charts
and time- or state-based GIF animations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, err := cmd.Flags().GetString("log-level")
			if err == nil {
				logging.SetLevel(logLevel)
			}
			v := viper.New()
			return setAllConfig(v, cmd.Flags(), "CHARTANIM")
		},
	}
	rc.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")
	for _, subcomFn := range subcommandFns {
		rc.AddCommand(subcomFn(stdin, stdout, stderr))
	}
	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, then reads from the command line and the environment and applies
// the configuration in that priority order. Environment variables are
// capitalized flag names with dashes replaced by underscores, prefixed with
// envPrefix plus an underscore (e.g. CHARTANIM_DATA_DIR).
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet, envPrefix string) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil {
			return
		}
		if f.Changed {
			// Set on the command line, which outranks the environment.
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		value := v.GetString(f.Name)
		if value == f.DefValue {
			return
		}
		flagErr = f.Value.Set(value)
	})
	if flagErr != nil {
		return fmt.Errorf("applying environment config: %w", flagErr)
	}
	return nil
}
