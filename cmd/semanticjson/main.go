package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "semanticjson",
	Short: "Structural and semantic JSON comparison tool",
	Long: `SemanticJSON compares two JSON documents along two axes: structural
differences (keys added, removed or changed) and semantic similarity of
changed string values, scored with sentence embeddings.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
