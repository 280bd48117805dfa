package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/engine"
	"github.com/go-analogy/sme/src/system/graphfile"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		unmatched []string
		infer     bool
		debug     bool
	)

	root := &cobra.Command{
		Use:   "sme",
		Short: "Structure Mapping Engine: discover analogical mappings between two graphs",
	}

	match := &cobra.Command{
		Use:   "match <base.yaml> <target.yaml>",
		Short: "Run the SME pipeline over a base and target graph file and print the resulting GMaps",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logLevel := archivist.LEVEL_WARNING
			debugLevel := 0
			if debug {
				logLevel = archivist.LEVEL_DEBUG
				debugLevel = archivist.DEBUG_LEVEL_TRACE
			}
			log := archivist.New(&archivist.Config{LogLevel: logLevel, DebugLevel: debugLevel})

			base, err := graphfile.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading base graph: %w", err)
			}
			target, err := graphfile.Load(args[1])
			if err != nil {
				return fmt.Errorf("loading target graph: %w", err)
			}

			cfg := engine.Config{UnmatchedAttributes: unmatched, Infer: infer}
			result, err := engine.Match(context.Background(), base, target, nil, cfg, log)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}

			printGMaps(cmd, result)
			return nil
		},
	}
	match.Flags().StringSliceVar(&unmatched, "unmatched-attributes", nil, "attribute names excluded from emap content comparison")
	match.Flags().BoolVar(&infer, "infer", false, "run the optional inference-transfer stage")
	match.Flags().BoolVar(&debug, "debug", false, "trace every pipeline stage")

	root.AddCommand(match)
	return root
}

func printGMaps(cmd *cobra.Command, result *engine.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d gmap(s)\n", len(result.GMaps))
	for i, g := range result.GMaps {
		fmt.Fprintf(out, "gmap[%d]: mhs=%d score=%.1f emap-matches=%d roots=%d", i, len(g.MHs), g.Score, g.EmapMatches, len(g.Roots))
		if g.Transferred != nil {
			fmt.Fprintf(out, " transferred=%d", len(g.Transferred))
		}
		fmt.Fprintln(out)
	}
}
