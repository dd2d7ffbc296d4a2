package rdf

import (
	"fmt"
	"strings"
)

func writeNTriples(g *Graph) []byte {
	var sb strings.Builder

	for _, t := range g.triples {
		sb.WriteString(fmt.Sprintf("%s %s %s .\n", iriRef(t.Subject), iriRef(t.Predicate), ntriplesTerm(t.Object)))
	}

	return []byte(sb.String())
}

func ntriplesTerm(t Term) string {
	switch v := t.(type) {
	case IRI:
		return iriRef(v)
	case Literal:
		lexical := `"` + escapeString(v.Lexical) + `"`
		if v.Lang != "" {
			return lexical + "@" + v.Lang
		}
		if v.Datatype != "" && v.Datatype != XSDString {
			return lexical + "^^" + iriRef(v.Datatype)
		}
		return lexical
	default:
		return `""`
	}
}

// iriRef writes iri as an IRIREF, percent-encoding the characters that the
// Turtle and N-Triples grammars do not allow between angle brackets.
func iriRef(iri IRI) string {
	var sb strings.Builder

	sb.WriteByte('<')
	for _, r := range string(iri) {
		if r <= 0x20 || strings.ContainsRune("<>\"{}|^`\\", r) {
			sb.WriteString(fmt.Sprintf("%%%02X", r))
			continue
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('>')

	return sb.String()
}
