package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/policyatlas/covergrade/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the published canonical-record contract",
	Long:  `Schema prints the CUE contract every canonical record must satisfy.`,
	Run: func(cmd *cobra.Command, args []string) {
		src, err := schema.ContractSource()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(src)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
