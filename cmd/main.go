package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/advisorlabs/course-advisor/cmd/cli"
	"github.com/advisorlabs/course-advisor/pkg/logger"
)

var (
	logMode    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "course-advisor",
	Short: "Course Advisor",
	Long:  `A rule-driven course recommendation service with an offline-trained category classifier`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch logMode {
		case "debug", "pretty", "info", "prod", "test":
			logger.InitWithMode(logger.LogMode(logMode))
		default:
			logger.InitWithMode(logger.LogModePretty)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunServer(configPath)
	},
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the recommendation API server",
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunServer(configPath)
	},
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the category classifier and write the model artifact",
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunTrain(configPath)
	},
}

func main() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(trainCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logMode, "log", "pretty", "Log mode: debug, pretty, info, prod, test")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "Path to config file")
}
