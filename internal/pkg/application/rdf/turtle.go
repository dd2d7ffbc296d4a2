package rdf

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func writeTurtle(g *Graph) []byte {
	var sb strings.Builder

	prefixes := maps.Keys(g.prefixes)
	slices.Sort(prefixes)

	for _, prefix := range prefixes {
		sb.WriteString(fmt.Sprintf("@prefix %s: %s .\n", prefix, iriRef(IRI(g.prefixes[prefix]))))
	}
	sb.WriteString("\n")

	for _, subject := range g.Subjects() {
		sb.WriteString(iriRef(subject) + "\n")

		predicates := g.predicatesOf(subject)
		for i, predicate := range predicates {
			objects := g.Objects(subject, predicate)

			terms := make([]string, 0, len(objects))
			for _, o := range objects {
				terms = append(terms, g.turtleTerm(o))
			}

			terminator := " ;"
			if i == len(predicates)-1 {
				terminator = " ."
			}

			sb.WriteString(fmt.Sprintf("    %s %s%s\n", g.turtlePredicate(predicate), strings.Join(terms, ", "), terminator))
		}

		sb.WriteString("\n")
	}

	return []byte(sb.String())
}

func (g *Graph) turtlePredicate(p IRI) string {
	if p == RDFType {
		return "a"
	}
	return g.turtleIRI(p)
}

func (g *Graph) turtleIRI(iri IRI) string {
	if prefix, local, ok := g.split(iri); ok {
		return prefix + ":" + local
	}
	return iriRef(iri)
}

func (g *Graph) turtleTerm(t Term) string {
	switch v := t.(type) {
	case IRI:
		return g.turtleIRI(v)
	case Literal:
		lexical := `"` + escapeString(v.Lexical) + `"`
		if v.Lang != "" {
			return lexical + "@" + v.Lang
		}
		if v.Datatype != "" && v.Datatype != XSDString {
			return lexical + "^^" + g.turtleIRI(v.Datatype)
		}
		return lexical
	default:
		return `""`
	}
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
