package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dzivkovi/semanticjson/pkg/config"
	"github.com/dzivkovi/semanticjson/pkg/document"
	"github.com/dzivkovi/semanticjson/pkg/embedding"
	"github.com/dzivkovi/semanticjson/pkg/logger"
	"github.com/dzivkovi/semanticjson/pkg/reconciler"
	"github.com/dzivkovi/semanticjson/pkg/renderer"
)

var compareCmd = &cobra.Command{
	Use:   "compare <file1> <file2>",
	Short: "Compare two JSON documents structurally and semantically",
	Long: `Performs a hybrid comparison of two JSON (or YAML) documents.
Structural differences are categorized by path; changed string values are
additionally scored with sentence embeddings, and pairs at or above the
similarity threshold are reported as semantically equivalent instead of
changed.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

var (
	compareFormat    string
	compareThreshold float64
	compareOutput    string
)

func init() {
	compareCmd.Flags().StringVar(&compareFormat, "format", "", "Output format: raw, color, table (default raw)")
	compareCmd.Flags().Float64Var(&compareThreshold, "threshold", reconciler.DefaultThreshold,
		"Minimum similarity at which differing strings count as equivalent")
	compareCmd.Flags().StringVar(&compareOutput, "output", "", "Output file (default: stdout)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	doc1, err := document.Load(args[0])
	if err != nil {
		return err
	}
	doc2, err := document.Load(args[1])
	if err != nil {
		return err
	}

	emb := embedding.New(embedding.Config{
		Endpoint:  cfg.Embedding.Endpoint,
		Model:     cfg.Embedding.Model,
		Dimension: cfg.Embedding.Dimension,
		BatchSize: cfg.Embedding.BatchSize,
		Timeout:   cfg.Embedding.Timeout(),
		Logger:    log,
	})
	if cfg.Embedding.Endpoint == "" {
		log.Warn("no embedding endpoint configured; changed strings will all score 0 similarity")
	}

	threshold := cfg.Compare.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = compareThreshold
	}

	rec, err := reconciler.New(emb, threshold, log)
	if err != nil {
		return err
	}

	result, err := rec.Reconcile(cmd.Context(), doc1, doc2)
	if err != nil {
		return fmt.Errorf("comparing %s and %s: %w", args[0], args[1], err)
	}

	format := cfg.Compare.Format
	if compareFormat != "" {
		format = compareFormat
	}
	output, err := renderer.Format(result, format)
	if err != nil {
		return err
	}

	if compareOutput != "" {
		if err := os.WriteFile(compareOutput, []byte(output+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", compareOutput, err)
		}
		log.Info("comparison written", zap.String("file", compareOutput))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
