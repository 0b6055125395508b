package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dzivkovi/semanticjson/pkg/differ"
	"github.com/dzivkovi/semanticjson/pkg/document"
)

var diffCmd = &cobra.Command{
	Use:   "diff <file1> <file2>",
	Short: "Show the structural diff between two JSON documents",
	Long: `Computes the categorized structural diff between two JSON (or YAML)
documents and prints it as pretty JSON, without any semantic scoring.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc1, err := document.Load(args[0])
		if err != nil {
			return err
		}
		doc2, err := document.Load(args[1])
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(differ.Compare(doc1, doc2))
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
