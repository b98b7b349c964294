package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bjaus/boxtable"
)

const (
	envPrefix          = "boxtable"
	errorMessagePrefix = "error mapping environment variables to command flags"
)

// checkEnvironmentVariables sets every flag not given on the command line
// from BOXTABLE_<FLAG>, with dashes in the flag name replaced by underscores.
func checkEnvironmentVariables(command *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	command.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", boxtable.ErrInvalidConfig, errorMessagePrefix, strings.Join(errs, "; "))
}
