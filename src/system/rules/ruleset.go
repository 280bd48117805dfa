package rules

import "github.com/go-analogy/sme/src/system/model"

// FilterRule inspects one (base_item, target_item) pair and either proposes
// a match hypothesis or declines (§4.B). Filter rules must be pure.
type FilterRule func(base, target model.Item) (*model.MH, error)

// InternRule derives zero or more new MHs from an existing one, typically
// from its arguments (§4.B). Intern rules must be pure.
type InternRule func(m model.MH) ([]model.MH, error)

// Ruleset is the pair of ordered rule families consulted by Generate.
type Ruleset struct {
	Filter []FilterRule
	Intern []InternRule
}

// New builds an empty Ruleset ready for filter/intern rules to be appended.
func New() *Ruleset {
	return &Ruleset{}
}

func (r *Ruleset) AddFilter(rule FilterRule) *Ruleset {
	r.Filter = append(r.Filter, rule)
	return r
}

func (r *Ruleset) AddIntern(rule InternRule) *Ruleset {
	r.Intern = append(r.Intern, rule)
	return r
}
