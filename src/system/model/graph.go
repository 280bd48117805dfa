package model

// Graph is a set of top-level expressions plus the transitive closure of
// everything reachable from them (§3). It is built once, validated once,
// and never mutated.
type Graph struct {
	top         []*Expression
	expressions []*Expression
	entities    []*Entity
	exprByID    map[string]*Expression
	entityByID  map[string]*Entity
}

// NewGraph builds and validates a Graph from its top-level expressions,
// checking arity agreement and cycle-freedom at construction time so a
// malformed graph fails as early as possible. It returns a
// *MalformedGraphError on the first violation found.
func NewGraph(top ...*Expression) (*Graph, error) {
	g := &Graph{
		top:        top,
		exprByID:   map[string]*Expression{},
		entityByID: map[string]*Entity{},
	}

	visiting := map[string]bool{}
	visited := map[string]bool{}

	var walk func(e *Expression) error
	walk = func(e *Expression) error {
		if visited[e.Ident()] {
			return nil
		}
		if visiting[e.Ident()] {
			return &MalformedGraphError{Reason: "cycle detected", ExpressionID: e.Ident()}
		}
		visiting[e.Ident()] = true

		if e.Functor == nil {
			return &MalformedGraphError{Reason: "nil functor", ExpressionID: e.Ident()}
		}
		if e.Functor.Arity != len(e.Args) {
			return &MalformedGraphError{Reason: "arity mismatch", ExpressionID: e.Ident()}
		}

		if _, ok := g.exprByID[e.Ident()]; !ok {
			g.exprByID[e.Ident()] = e
			g.expressions = append(g.expressions, e)
		}

		for _, arg := range e.Args {
			switch item := arg.(type) {
			case *Entity:
				if _, ok := g.entityByID[item.Ident()]; !ok {
					g.entityByID[item.Ident()] = item
					g.entities = append(g.entities, item)
				}
			case *Expression:
				if err := walk(item); err != nil {
					return err
				}
			default:
				return &MalformedGraphError{Reason: "arg is neither entity nor expression", ExpressionID: e.Ident()}
			}
		}

		visiting[e.Ident()] = false
		visited[e.Ident()] = true
		return nil
	}

	for _, e := range top {
		if err := walk(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Expressions enumerates every expression reachable from the graph's top
// level, each appearing exactly once.
func (g *Graph) Expressions() []*Expression { return g.expressions }

// Entities enumerates every entity reachable from the graph's top level.
func (g *Graph) Entities() []*Entity { return g.entities }

// Top returns the graph's top-level expressions.
func (g *Graph) Top() []*Expression { return g.top }

// Items returns every expression and entity in the graph, expressions
// first. Useful for rule engines that treat both uniformly.
func (g *Graph) Items() []Item {
	out := make([]Item, 0, len(g.expressions)+len(g.entities))
	for _, e := range g.expressions {
		out = append(out, e)
	}
	for _, e := range g.entities {
		out = append(out, e)
	}
	return out
}

// Descendants returns e's descendants, exactly as the package-level
// Descendants does; it does not check that e belongs to this graph.
func (g *Graph) Descendants(e *Expression) []Item {
	return Descendants(e)
}

// Ancestor reports whether target has an ancestor among set's expressions.
func (g *Graph) Ancestor(set []*Expression, target Item) bool {
	return IsAncestor(set, target)
}
