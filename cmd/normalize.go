package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/policyatlas/covergrade/internal/frontend"
	"github.com/policyatlas/covergrade/internal/normalize"
	"github.com/policyatlas/covergrade/internal/schema"
)

var skipValidation bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize <extract-file>",
	Short: "Normalize one raw extract and print the canonical record",
	Long: `Normalize reads a single raw extract (JSON or YAML), converts it to the
canonical record, validates it against the published contract, and prints
the canonical JSON. Validation failures go to stderr and exit non-zero.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runNormalize(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	normalizeCmd.Flags().BoolVar(&skipValidation, "no-validate", false, "Skip canonical contract validation")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(path string) error {
	raw, err := frontend.ParseFile(path)
	if err != nil {
		return err
	}

	canonical := normalize.Normalize(raw)

	if !skipValidation {
		validator, err := schema.NewValidator()
		if err != nil {
			return err
		}
		if verrs := validator.Validate(canonical); len(verrs) > 0 {
			for _, verr := range verrs {
				fmt.Fprintf(os.Stderr, "schema: %s\n", verr.Error())
			}
			return fmt.Errorf("canonical record failed contract validation")
		}
	}

	out, err := json.MarshalIndent(canonical, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding canonical record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
