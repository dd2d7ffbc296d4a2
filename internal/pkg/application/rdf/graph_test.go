package rdf

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/matryer/is"
)

const (
	testDataset IRI = "https://data.sfgov.org/api/views/vw6y-z8j6"
	dcatDataset IRI = NamespaceDCAT + "Dataset"
	dctTitle    IRI = NamespaceDCTerms + "title"
	dcatKeyword IRI = NamespaceDCAT + "keyword"
	dcatLanding IRI = NamespaceDCAT + "landingPage"
	dctModified IRI = NamespaceDCTerms + "modified"
)

func TestThatAddIgnoresDuplicateTriples(t *testing.T) {
	is := is.New(t)
	g := NewGraph()

	is.True(g.Add(testDataset, dctTitle, NewLiteral("311 Cases")))
	is.True(!g.Add(testDataset, dctTitle, NewLiteral("311 Cases")))
	is.True(g.Add(testDataset, dctTitle, NewLangLiteral("311 Cases", "en")))

	is.Equal(g.Len(), 2)
}

func TestThatSubjectsAreReturnedInInsertionOrder(t *testing.T) {
	is := is.New(t)
	g := NewGraph()

	g.Add("urn:b", dctTitle, NewLiteral("b"))
	g.Add("urn:a", dctTitle, NewLiteral("a"))
	g.Add("urn:b", dcatKeyword, NewLiteral("k"))

	is.Equal(g.Subjects(), []IRI{"urn:b", "urn:a"})
	is.Equal(len(g.Objects("urn:b", dctTitle)), 1)
}

func TestParseFormat(t *testing.T) {
	is := is.New(t)

	for token, expected := range map[string]Format{
		"ttl":                 FormatTurtle,
		"Turtle":              FormatTurtle,
		"xml":                 FormatRDFXML,
		"application/ld+json": FormatJSONLD,
		" nt ":                FormatNTriples,
	} {
		f, err := ParseFormat(token)
		is.NoErr(err)
		is.Equal(f, expected)
	}
}

func TestThatParseFormatFailsForUnknownTokens(t *testing.T) {
	is := is.New(t)

	_, err := ParseFormat("yaml")

	var ufe *domain.UnsupportedFormatError
	is.True(errors.As(err, &ufe))
	is.Equal(ufe.Token, "yaml")
}

func TestSerializeTurtle(t *testing.T) {
	is := is.New(t)

	body, err := Serialize(testGraph(), FormatTurtle)
	is.NoErr(err)

	ttl := string(body)
	is.True(strings.Contains(ttl, "@prefix dcat: <http://www.w3.org/ns/dcat#> ."))
	is.True(strings.Contains(ttl, "<https://data.sfgov.org/api/views/vw6y-z8j6>\n    a dcat:Dataset ;"))
	is.True(strings.Contains(ttl, `dcat:keyword "311", "sf \"311\"" ;`))
	is.True(strings.Contains(ttl, `dcterms:modified "2026-02-06T04:06:12"^^xsd:dateTime .`))
}

func TestSerializeNTriples(t *testing.T) {
	is := is.New(t)

	body, err := Serialize(testGraph(), FormatNTriples)
	is.NoErr(err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	is.Equal(len(lines), 6)
	is.Equal(lines[0], "<https://data.sfgov.org/api/views/vw6y-z8j6> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/dcat#Dataset> .")
	is.Equal(lines[4], "<https://data.sfgov.org/api/views/vw6y-z8j6> <http://www.w3.org/ns/dcat#landingPage> <https://data.sfgov.org/d/vw6y-z8j6> .")
}

func TestThatVocabularyConstantsAreIRIs(t *testing.T) {
	is := is.New(t)

	is.Equal(RDFType, IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"))
	is.Equal(XSDDateTime, IRI("http://www.w3.org/2001/XMLSchema#dateTime"))
	is.Equal(dcatDataset, IRI("http://www.w3.org/ns/dcat#Dataset"))
}

func TestThatIRIsWithIllegalCharactersAreEscaped(t *testing.T) {
	is := is.New(t)

	g := NewGraph()
	g.Bind("dcat", NamespaceDCAT)
	g.Add(IRI("https://example.org/a b"), dcatLanding, IRI(`https://example.org/x>y"z`))

	nt, err := Serialize(g, FormatNTriples)
	is.NoErr(err)
	is.Equal(string(nt), "<https://example.org/a%20b> <http://www.w3.org/ns/dcat#landingPage> <https://example.org/x%3Ey%22z> .\n")

	ttl, err := Serialize(g, FormatTurtle)
	is.NoErr(err)
	is.True(strings.Contains(string(ttl), "<https://example.org/a%20b>\n"))
	is.True(strings.Contains(string(ttl), "<https://example.org/x%3Ey%22z>"))
	is.True(!strings.Contains(string(ttl), "a b"))
}

func TestSerializeRDFXML(t *testing.T) {
	is := is.New(t)

	body, err := Serialize(testGraph(), FormatRDFXML)
	is.NoErr(err)

	doc := string(body)
	is.True(strings.HasPrefix(doc, xml.Header))
	is.True(strings.Contains(doc, `xmlns:dcat="http://www.w3.org/ns/dcat#"`))
	is.True(strings.Contains(doc, `<rdf:Description rdf:about="https://data.sfgov.org/api/views/vw6y-z8j6">`))
	is.True(strings.Contains(doc, `<dcat:landingPage rdf:resource="https://data.sfgov.org/d/vw6y-z8j6"></dcat:landingPage>`))
	is.True(strings.Contains(doc, `<dcterms:modified rdf:datatype="http://www.w3.org/2001/XMLSchema#dateTime">2026-02-06T04:06:12</dcterms:modified>`))
}

func TestThatRDFXMLGeneratesPrefixesForUnboundNamespaces(t *testing.T) {
	is := is.New(t)
	g := NewGraph()
	g.Add(testDataset, "http://example.org/vocab#score", NewTypedLiteral("3", XSDInteger))

	body, err := Serialize(g, FormatRDFXML)
	is.NoErr(err)
	is.True(strings.Contains(string(body), `xmlns:ns1="http://example.org/vocab#"`))
	is.True(strings.Contains(string(body), "<ns1:score"))
}

func TestSerializeJSONLD(t *testing.T) {
	is := is.New(t)

	body, err := Serialize(testGraph(), FormatJSONLD)
	is.NoErr(err)

	doc := struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}{}
	is.NoErr(json.Unmarshal(body, &doc))

	is.Equal(doc.Context["dcterms"], NamespaceDCTerms)
	is.Equal(len(doc.Graph), 1)

	node := doc.Graph[0]
	is.Equal(node["@id"], string(testDataset))
	is.Equal(node["@type"], []any{"dcat:Dataset"})
	is.Equal(node["dcterms:title"], "311 Cases")
	is.Equal(node["dcat:keyword"], []any{"311", `sf "311"`})
	is.Equal(node["dcat:landingPage"], map[string]any{"@id": "https://data.sfgov.org/d/vw6y-z8j6"})
	is.Equal(node["dcterms:modified"], map[string]any{"@value": "2026-02-06T04:06:12", "@type": "xsd:dateTime"})
}

func TestThatSerializeRejectsUnknownFormats(t *testing.T) {
	is := is.New(t)

	_, err := Serialize(testGraph(), Format("csv"))

	var ufe *domain.UnsupportedFormatError
	is.True(errors.As(err, &ufe))
}

func testGraph() *Graph {
	g := NewGraph()
	g.Add(testDataset, RDFType, dcatDataset)
	g.Add(testDataset, dctTitle, NewLiteral("311 Cases"))
	g.Add(testDataset, dcatKeyword, NewLiteral("311"))
	g.Add(testDataset, dcatKeyword, NewLiteral(`sf "311"`))
	g.Add(testDataset, dcatLanding, IRI("https://data.sfgov.org/d/vw6y-z8j6"))
	g.Add(testDataset, dctModified, NewTypedLiteral("2026-02-06T04:06:12", XSDDateTime))
	return g
}
