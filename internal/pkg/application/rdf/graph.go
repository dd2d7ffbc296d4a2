// Package rdf holds the small triple model that the catalog assembler
// produces, together with writers for the supported serializations.
package rdf

import (
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	NamespaceRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceXSD     = "http://www.w3.org/2001/XMLSchema#"
	NamespaceDCAT    = "http://www.w3.org/ns/dcat#"
	NamespaceDCTerms = "http://purl.org/dc/terms/"
	NamespaceFOAF    = "http://xmlns.com/foaf/0.1/"

	RDFType     IRI = NamespaceRDF + "type"
	XSDString   IRI = NamespaceXSD + "string"
	XSDDate     IRI = NamespaceXSD + "date"
	XSDDateTime IRI = NamespaceXSD + "dateTime"
	XSDInteger  IRI = NamespaceXSD + "integer"
	RDFLangText IRI = NamespaceRDF + "langString"
)

// Term is either an IRI or a Literal.
type Term interface {
	term()
}

type IRI string

func (IRI) term() {}

type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string
}

func (Literal) term() {}

func NewLiteral(s string) Literal {
	return Literal{Lexical: s}
}

func NewTypedLiteral(s string, datatype IRI) Literal {
	return Literal{Lexical: s, Datatype: datatype}
}

func NewLangLiteral(s, lang string) Literal {
	return Literal{Lexical: s, Lang: lang}
}

type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Term
}

func (t Triple) key() string {
	var sb strings.Builder
	sb.WriteString(string(t.Subject))
	sb.WriteString("\x00")
	sb.WriteString(string(t.Predicate))
	sb.WriteString("\x00")

	switch o := t.Object.(type) {
	case IRI:
		sb.WriteString("I")
		sb.WriteString(string(o))
	case Literal:
		sb.WriteString("L")
		sb.WriteString(o.Lexical)
		sb.WriteString("\x00")
		sb.WriteString(string(o.Datatype))
		sb.WriteString("\x00")
		sb.WriteString(o.Lang)
	}

	return sb.String()
}

// Graph is an insertion ordered set of triples. It has no internal
// synchronization and must only be written from one goroutine at a time.
type Graph struct {
	prefixes map[string]string
	triples  []Triple
	index    map[string]struct{}
}

func NewGraph() *Graph {
	return &Graph{
		prefixes: map[string]string{
			"rdf":     NamespaceRDF,
			"xsd":     NamespaceXSD,
			"dcat":    NamespaceDCAT,
			"dcterms": NamespaceDCTerms,
			"foaf":    NamespaceFOAF,
		},
		index: map[string]struct{}{},
	}
}

func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

func (g *Graph) Prefixes() map[string]string {
	return maps.Clone(g.prefixes)
}

// Add inserts a triple and reports whether it was new.
func (g *Graph) Add(subject, predicate IRI, object Term) bool {
	t := Triple{Subject: subject, Predicate: predicate, Object: object}
	k := t.key()

	if _, exists := g.index[k]; exists {
		return false
	}

	g.index[k] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

func (g *Graph) Triples() []Triple {
	return slices.Clone(g.triples)
}

func (g *Graph) Len() int {
	return len(g.triples)
}

// Subjects returns every subject in the order it was first added.
func (g *Graph) Subjects() []IRI {
	seen := map[IRI]bool{}
	subjects := []IRI{}

	for _, t := range g.triples {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			subjects = append(subjects, t.Subject)
		}
	}

	return subjects
}

func (g *Graph) Objects(subject, predicate IRI) []Term {
	objects := []Term{}
	for _, t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			objects = append(objects, t.Object)
		}
	}
	return objects
}

func (g *Graph) predicatesOf(subject IRI) []IRI {
	predicates := []IRI{}
	for _, t := range g.triples {
		if t.Subject == subject && !slices.Contains(predicates, t.Predicate) {
			predicates = append(predicates, t.Predicate)
		}
	}
	return predicates
}

var localNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_\-]*$`)

// split returns the prefix and local part of an IRI when one of the bound
// namespaces matches and the remainder is a plain local name.
func (g *Graph) split(iri IRI) (string, string, bool) {
	prefixes := maps.Keys(g.prefixes)
	slices.Sort(prefixes)

	for _, prefix := range prefixes {
		ns := g.prefixes[prefix]
		if local, ok := strings.CutPrefix(string(iri), ns); ok && localNamePattern.MatchString(local) {
			return prefix, local, true
		}
	}

	return "", "", false
}
