package graphstore

import (
	"fmt"

	"github.com/go-analogy/sme/src/system/model"
	"github.com/voodooEntity/gits"
	"github.com/voodooEntity/gits/src/query"
	"github.com/voodooEntity/gits/src/transport"
)

// ToTransport snapshots a Graph's top-level expressions into
// transport.TransportEntity trees, the wire/query shape gits itself uses.
// This is a thin, optional adapter: the core matching pipeline never
// imports gits or this package, only callers who want to inspect a
// match's inputs through gits's own query language do.
func ToTransport(g *model.Graph) []transport.TransportEntity {
	out := make([]transport.TransportEntity, 0, len(g.Top()))
	for _, top := range g.Top() {
		out = append(out, itemToTransport(top))
	}
	return out
}

func itemToTransport(item model.Item) transport.TransportEntity {
	switch v := item.(type) {
	case *model.Entity:
		props := make(map[string]string, len(v.Attributes))
		for _, a := range v.Attributes {
			props[a.Name] = fmt.Sprintf("%v", a.Value)
		}
		return transport.TransportEntity{
			Type:       "Entity",
			ID:         -1,
			Value:      v.Name,
			Context:    v.Ident(),
			Properties: props,
		}
	case *model.Expression:
		rels := make([]transport.TransportRelation, 0, len(v.Args))
		for _, a := range v.Args {
			rels = append(rels, transport.TransportRelation{Target: itemToTransport(a)})
		}
		return transport.TransportEntity{
			Type:           "Expression",
			ID:             -1,
			Value:          v.Functor.Name,
			Context:        v.Ident(),
			Properties:     map[string]string{},
			ChildRelations: rels,
		}
	default:
		return transport.TransportEntity{}
	}
}

// Query runs a gits read query for typeName against an existing *gits.Gits
// instance. It returns the raw query result (its concrete type is internal
// to gits); callers inspect it with %+v formatting or type-assert as
// needed.
func Query(instance *gits.Gits, typeName string) interface{} {
	qry := query.New().Read(typeName)
	return instance.Query().Execute(qry)
}
