package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "domparse",
	Short: "Simplified HTML parser",
	Long: "domparse tokenizes simplified HTML documents, builds their node tree, " +
		"and prints, reformats or lints the result.",
	SilenceUsage:      true,
	PersistentPreRunE: configureLogging,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("DOMPARSE")
	viper.AutomaticEnv()
}

func configureLogging(cmd *cobra.Command, _ []string) error {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	switch {
	case viper.GetBool("debug"):
		logrus.SetLevel(logrus.DebugLevel)
	case viper.GetBool("verbose"):
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}

	_, err := parseFormat(viper.GetString("format"))
	return err
}
