package graphfile

import (
	"fmt"
	"os"

	"github.com/go-analogy/sme/src/system/model"
	"gopkg.in/yaml.v3"
)

// File is the YAML shape a base or target graph is authored in. Expressions
// reference each other and entities purely by id, which is how the format
// represents DAG sharing: two expressions naming the same arg id share that
// subtree.
type File struct {
	Predicates  []predicateSpec  `yaml:"predicates"`
	Entities    []entitySpec     `yaml:"entities"`
	Expressions []expressionSpec `yaml:"expressions"`
	Top         []string         `yaml:"top"`
}

type predicateSpec struct {
	Name        string `yaml:"name"`
	Arity       int    `yaml:"arity"`
	Kind        string `yaml:"kind"`
	Commutative bool   `yaml:"commutative"`
}

type attributeSpec struct {
	Name  string      `yaml:"name"`
	Value interface{} `yaml:"value"`
}

type entitySpec struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Attributes []attributeSpec `yaml:"attributes"`
}

type expressionSpec struct {
	ID      string   `yaml:"id"`
	Functor string   `yaml:"functor"`
	Args    []string `yaml:"args"`
}

// Load reads path and resolves it into a validated *model.Graph.
func Load(path string) (*model.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return Resolve(&f)
}

// Resolve turns a parsed File into a *model.Graph, wiring predicates,
// entities and expressions together by the ids they reference.
func Resolve(f *File) (*model.Graph, error) {
	predicates := map[string]*model.Predicate{}
	for _, p := range f.Predicates {
		predicates[p.Name] = model.NewPredicate(p.Name, p.Arity, model.PredicateKind(p.Kind)).WithCommutative(p.Commutative)
	}

	entities := map[string]*model.Entity{}
	for _, e := range f.Entities {
		attrs := make([]model.Attribute, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs = append(attrs, model.Attribute{Name: a.Name, Value: a.Value})
		}
		entities[e.ID] = model.NewEntity(e.ID, e.Name, attrs...)
	}

	expressions := map[string]*model.Expression{}
	// Expressions may reference expressions declared later in the file, so
	// resolve in two passes: first allocate every expression with its
	// functor, then fill in args once every id is known to exist.
	pending := map[string]expressionSpec{}
	for _, spec := range f.Expressions {
		pred, ok := predicates[spec.Functor]
		if !ok {
			return nil, fmt.Errorf("graphfile: expression %q references unknown predicate %q", spec.ID, spec.Functor)
		}
		expressions[spec.ID] = model.NewExpression(spec.ID, pred)
		pending[spec.ID] = spec
	}
	for id, spec := range pending {
		expr := expressions[id]
		args := make([]model.Item, 0, len(spec.Args))
		for _, argID := range spec.Args {
			if item, ok := entities[argID]; ok {
				args = append(args, item)
				continue
			}
			if item, ok := expressions[argID]; ok {
				args = append(args, item)
				continue
			}
			return nil, fmt.Errorf("graphfile: expression %q references unknown arg id %q", id, argID)
		}
		expr.Args = args
	}

	top := make([]*model.Expression, 0, len(f.Top))
	for _, id := range f.Top {
		expr, ok := expressions[id]
		if !ok {
			return nil, fmt.Errorf("graphfile: top id %q is not a declared expression", id)
		}
		top = append(top, expr)
	}

	return model.NewGraph(top...)
}
