package engine

import (
	"context"
	"fmt"

	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/combiner"
	"github.com/go-analogy/sme/src/system/gmap"
	"github.com/go-analogy/sme/src/system/infer"
	"github.com/go-analogy/sme/src/system/merger"
	"github.com/go-analogy/sme/src/system/model"
	"github.com/go-analogy/sme/src/system/rules"
	"github.com/go-analogy/sme/src/system/scorer"
	"github.com/go-analogy/sme/src/system/structurer"
)

// Result is the primary operation's output (§6): the scored, mutually
// consistent GMaps plus the MH-structure they were built from.
type Result struct {
	GMaps     []*gmap.GMap
	Structure structurer.Structure
}

// Match runs the full A→H pipeline over base and target (§1, §6). A nil
// ruleset defaults to the one named by cfg.RulesetName (currently only the
// empty string, meaning rules.LiteralSimilarity, is recognized). Fatal
// errors (an unknown cfg.RulesetName, RuleFailure from the rule engine, or a
// cancelled ctx reaching the combiner) abort the whole pipeline and are
// returned as-is; every other
// outcome, including an empty GMap collection, is a normal (nil-error)
// result (§7).
func Match(ctx context.Context, base, target *model.Graph, ruleset *rules.Ruleset, cfg Config, log *archivist.Archivist) (*Result, error) {
	if log == nil {
		log = archivist.New(&archivist.Config{LogLevel: archivist.LEVEL_WARNING})
	}
	if ruleset == nil {
		switch cfg.RulesetName {
		case "":
			ruleset = rules.LiteralSimilarity()
		default:
			return nil, fmt.Errorf("engine: unknown ruleset %q", cfg.RulesetName)
		}
	}

	log.Info("engine MATCH begin")

	mhs, err := rules.Generate(ruleset, base, target, log)
	if err != nil {
		log.Error("engine MATCH aborted: rule failure: ", err)
		return nil, err
	}

	structure := structurer.Annotate(mhs, log)
	initial := gmap.Build(structure, log)

	subsets, err := combiner.Combine(ctx, initial, log)
	if err != nil {
		log.Error("engine MATCH aborted: combiner cancelled: ", err)
		return nil, err
	}

	merged := merger.Merge(subsets, log)

	scoreCfg := scorer.Config{UnmatchedAttributes: cfg.UnmatchedAttributes}
	for _, g := range merged {
		g.Mapping = gmap.Mapping{Base: base, Target: target}
		scorer.Score(g, structure, scoreCfg, log)
		if cfg.Infer {
			infer.Annotate(g, base, log)
			infer.Transfer(g, log)
		}
	}

	log.Info("engine MATCH done gmaps=", len(merged))
	return &Result{GMaps: merged, Structure: structure}, nil
}
