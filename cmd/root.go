// Package cmd provides the pencraft command-line interface.
//
// Configuration is read, highest priority first, from command-line flags,
// PENCRAFT_<SECTION>_<KEY> environment variables (PENCRAFT_DOCUMENT_PATH,
// PENCRAFT_IDS_BASE, ...), and a YAML file: --config, else the file named by
// PENCRAFT_CONFIG_FILE, else .pencraft.yml in the working directory.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pencraft",
	Short: "Generate component showcase pages into a design document",
	Long: `pencraft writes a component showcase into a design document: a JSON page
tree of frames, text and icons. Sections are appended to named pages in
passes, with ids that never collide with nodes already in the file.

Quick Start:
  pencraft generate                 Write a new document with every section
  pencraft extend components-2      Run one pass on an existing document
  pencraft append card --page Forms Add a single section anywhere
  pencraft pages                    List the pages in the document
  pencraft validate --bands         Check ids, round trip and page overlap`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any error with suggestions.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", explain(err))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pencraft.yml, can also use PENCRAFT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig points viper at the config file and enables PENCRAFT_
// environment overrides. A missing file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PENCRAFT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pencraft")
	}

	viper.SetEnvPrefix("PENCRAFT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
