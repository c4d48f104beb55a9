package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/resoltico/boundary/internal/logging"
)

var (
	cfgFile string
	log     logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boundary-detect",
	Short: "Locate document-outline quadrilaterals in raster images",
	Long: `boundary-detect runs a deterministic classical computer-vision
pipeline over an input image and reports the convex quadrilaterals it
finds, without rectifying, cropping, or classifying their content.`,
}

// Execute runs the root command, following the teacher corpus's
// cobra.Execute/os.Exit(1) error-reporting convention.
func Execute() {
	if log == nil {
		initLogging()
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./boundary-detect.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose console logging")

	bind("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	bind("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func bind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("boundary-detect: failed to bind flag %q: %v", key, err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("boundary-detect")
	}

	viper.SetEnvPrefix("BOUNDARY_DETECT")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func initLogging() {
	level := parseLevel(viper.GetString("log-level"))
	if viper.GetBool("verbose") {
		log = logging.NewConsole(level)
		return
	}
	log = logging.New(os.Stderr, level)
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
