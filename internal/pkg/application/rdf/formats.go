package rdf

import (
	"strings"

	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
)

type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatRDFXML   Format = "rdfxml"
	FormatJSONLD   Format = "jsonld"
	FormatNTriples Format = "ntriples"
)

type FormatInfo struct {
	Name      Format
	MIMEType  string
	Extension string
}

var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle:   {Name: FormatTurtle, MIMEType: "text/turtle", Extension: ".ttl"},
	FormatRDFXML:   {Name: FormatRDFXML, MIMEType: "application/rdf+xml", Extension: ".rdf"},
	FormatJSONLD:   {Name: FormatJSONLD, MIMEType: "application/ld+json", Extension: ".jsonld"},
	FormatNTriples: {Name: FormatNTriples, MIMEType: "application/n-triples", Extension: ".nt"},
}

var formatAliases = map[string]Format{
	"turtle":                FormatTurtle,
	"ttl":                   FormatTurtle,
	"text/turtle":           FormatTurtle,
	"rdfxml":                FormatRDFXML,
	"rdf":                   FormatRDFXML,
	"xml":                   FormatRDFXML,
	"rdf+xml":               FormatRDFXML,
	"application/rdf+xml":   FormatRDFXML,
	"jsonld":                FormatJSONLD,
	"json-ld":               FormatJSONLD,
	"application/ld+json":   FormatJSONLD,
	"ntriples":              FormatNTriples,
	"n-triples":             FormatNTriples,
	"nt":                    FormatNTriples,
	"application/n-triples": FormatNTriples,
}

// ParseFormat maps a user supplied token (name, file extension or MIME type)
// onto one of the supported formats.
func ParseFormat(token string) (Format, error) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return "", &domain.UnsupportedFormatError{Kind: "catalog", Token: token}
	}
	return f, nil
}

// Serialize renders the graph in the requested format.
func Serialize(g *Graph, format Format) ([]byte, error) {
	switch format {
	case FormatTurtle:
		return writeTurtle(g), nil
	case FormatNTriples:
		return writeNTriples(g), nil
	case FormatRDFXML:
		return writeRDFXML(g)
	case FormatJSONLD:
		return writeJSONLD(g)
	default:
		return nil, &domain.UnsupportedFormatError{Kind: "catalog", Token: string(format)}
	}
}
