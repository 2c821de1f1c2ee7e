package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/policyatlas/covergrade/internal/config"
	"github.com/policyatlas/covergrade/internal/output"
	"github.com/policyatlas/covergrade/internal/pipeline"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failBelow    string
)

var rootCmd = &cobra.Command{
	Use:   "covergrade",
	Short: "Covergrade - normalize and grade insurance product extracts",
	Long: `Covergrade ingests loosely-structured product extracts (JSON or YAML),
normalizes them into canonical schema-validated records, and grades each
product against a weighted set of quality criteria.

By default, covergrade evaluates every extract under the root directory.
Use the normalize command to inspect the canonical record for one extract.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEvaluate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Directory containing raw extracts (default current directory)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show the full per-parameter breakdown")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVar(&failBelow, "fail-below", "D", "Exit non-zero when any product grades below this (D|C|B|A|A+)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failBelow", rootCmd.PersistentFlags().Lookup("fail-below"))
}

func initConfig() {
	configPaths := []string{".covergraderc.json", ".covergraderc.yaml", ".covergraderc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

func runEvaluate() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	runner, err := pipeline.NewRunner(cfg)
	if err != nil {
		return err
	}
	summary, err := runner.Run()
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(cfg)
	if err != nil {
		return err
	}
	if err := formatter.Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if summary.FailedFiles > 0 {
		os.Exit(1)
	}
	for _, res := range summary.Results {
		if res.Evaluation != nil && !config.GradeMeets(res.Evaluation.Overall.Grade, cfg.FailBelow) {
			os.Exit(1)
		}
	}
	return nil
}
