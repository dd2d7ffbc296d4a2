package rdf

import (
	"encoding/json"
	"fmt"
)

type jsonldDocument struct {
	Context map[string]string `json:"@context"`
	Graph   []map[string]any  `json:"@graph"`
}

func writeJSONLD(g *Graph) ([]byte, error) {
	doc := jsonldDocument{
		Context: g.Prefixes(),
		Graph:   []map[string]any{},
	}

	for _, subject := range g.Subjects() {
		node := map[string]any{"@id": string(subject)}

		for _, predicate := range g.predicatesOf(subject) {
			objects := g.Objects(subject, predicate)

			if predicate == RDFType {
				types := make([]string, 0, len(objects))
				for _, o := range objects {
					if iri, ok := o.(IRI); ok {
						types = append(types, g.compactIRI(iri))
					}
				}
				node["@type"] = types
				continue
			}

			values := make([]any, 0, len(objects))
			for _, o := range objects {
				values = append(values, g.jsonldValue(o))
			}

			key := g.compactIRI(predicate)
			if len(values) == 1 {
				node[key] = values[0]
			} else {
				node[key] = values
			}
		}

		doc.Graph = append(doc.Graph, node)
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json-ld: %w", err)
	}

	return body, nil
}

func (g *Graph) compactIRI(iri IRI) string {
	if prefix, local, ok := g.split(iri); ok {
		return prefix + ":" + local
	}
	return string(iri)
}

func (g *Graph) jsonldValue(t Term) any {
	switch v := t.(type) {
	case IRI:
		return map[string]string{"@id": string(v)}
	case Literal:
		if v.Lang != "" {
			return map[string]string{"@value": v.Lexical, "@language": v.Lang}
		}
		if v.Datatype != "" && v.Datatype != XSDString {
			return map[string]string{"@value": v.Lexical, "@type": g.compactIRI(v.Datatype)}
		}
		return v.Lexical
	default:
		return nil
	}
}
