package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/operatorNode/operatorNodeConfig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "operator",
	Short: "Image verification AVS operator",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var configFile string
var Config *operatorNodeConfig.OperatorNodeConfig

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, operatorNodeConfig.ConfigFile, "", "config file path (yaml or json)")

	initConfig(rootCmd)

	rootCmd.PersistentFlags().Bool(operatorNodeConfig.Debug, false, `"true" or "false"`)
	rootCmd.PersistentFlags().String(operatorNodeConfig.RpcUrl, "", "ledger rpc url, ws:// or wss:// enables subscriptions")
	rootCmd.PersistentFlags().Uint(operatorNodeConfig.ChainIdFlag, 0, "expected chain id")
	rootCmd.PersistentFlags().String(operatorNodeConfig.DeploymentsDir, "", "directory holding core/<chainId>.json and image-verification/<chainId>.json")
	rootCmd.PersistentFlags().Int(operatorNodeConfig.MetricsPort, 0, "port to serve prometheus metrics on, 0 disables")

	// setup sub commands
	rootCmd.AddCommand(runCmd)

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		key := config.KebabToSnakeCase(f.Name)
		viper.BindPFlag(key, f) //nolint:errcheck
		viper.BindEnv(key)      //nolint:errcheck
	})
}

func initConfig(cmd *cobra.Command) {
	viper.SetEnvPrefix(operatorNodeConfig.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file if one was given and applies flag and env overrides.
func loadConfig() error {
	path := configFile
	if path == "" {
		path = viper.GetString(config.NormalizeFlagName(operatorNodeConfig.ConfigFile))
	}
	if path == "" {
		Config = operatorNodeConfig.NewOperatorNodeConfig()
		Config.ApplyFlagOverrides()
		return nil
	}

	fmt.Printf("Using config file: %s\n", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		Config, err = operatorNodeConfig.NewOperatorNodeConfigFromJsonBytes(data)
	} else {
		Config, err = operatorNodeConfig.NewOperatorNodeConfigFromYamlBytes(data)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	if Config == nil {
		return fmt.Errorf("config file %s is empty", path)
	}
	Config.ApplyFlagOverrides()
	return nil
}

func main() {
	Execute()
}
