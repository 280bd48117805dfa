package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/engine"
	"github.com/go-analogy/sme/src/system/model"
)

// This demo builds the classic heat/cold analogy by hand using
// model.GraphBuilder, runs it through engine.Match with inference turned
// on, and prints the result.
func main() {
	log := archivist.New(&archivist.Config{Logger: nil, LogLevel: archivist.LEVEL_INFO})

	greater := model.NewPredicate("greater", 2, model.KindRelation)
	flows := model.NewPredicate("flows", 2, model.KindRelation)

	heat := model.NewEntity("heat", "Heat", model.Attribute{Name: "temp", Value: 100.0})
	cold := model.NewEntity("cold", "Cold", model.Attribute{Name: "temp", Value: 0.0})

	unmatched := model.NewExpr(greater).WithID("greater(heat,cold)").Args(heat, cold).Build()
	matched := model.NewExpr(flows).WithID("flows(heat,cold)").Args(heat, cold).Build()

	base, err := model.NewGraphBuilder().Top(unmatched).Top(matched).Build()
	if err != nil {
		fmt.Println("base graph:", err)
		os.Exit(1)
	}

	fast := model.NewEntity("fast", "Fast", model.Attribute{Name: "temp", Value: 100.0})
	slow := model.NewEntity("slow", "Slow", model.Attribute{Name: "temp", Value: 0.0})
	targetFlows := model.NewExpr(flows).WithID("flows(fast,slow)").Args(fast, slow).Build()

	target, err := model.NewGraphBuilder().Top(targetFlows).Build()
	if err != nil {
		fmt.Println("target graph:", err)
		os.Exit(1)
	}

	result, err := engine.Match(context.Background(), base, target, nil, engine.Config{Infer: true}, log)
	if err != nil {
		fmt.Println("match failed:", err)
		os.Exit(1)
	}

	for i, g := range result.GMaps {
		fmt.Printf("gmap[%d] mhs=%d score=%.1f emap-matches=%d\n", i, len(g.MHs), g.Score, g.EmapMatches)
		if g.Transferred != nil {
			fmt.Printf("  transferred %d inference(s) from the unmatched greater(heat,cold)\n", len(g.Transferred))
		}
	}
}
