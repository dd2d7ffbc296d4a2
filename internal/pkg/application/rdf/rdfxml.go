package rdf

import (
	"encoding/xml"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type rdfDocument struct {
	XMLName      xml.Name     `xml:"rdf:RDF"`
	Namespaces   []xml.Attr   `xml:",any,attr"`
	Descriptions []rdfElement `xml:"rdf:Description"`
}

type rdfElement struct {
	About      string        `xml:"rdf:about,attr"`
	Properties []rdfProperty `xml:",any"`
}

type rdfProperty struct {
	XMLName  xml.Name
	Resource string `xml:"rdf:resource,attr,omitempty"`
	Datatype string `xml:"rdf:datatype,attr,omitempty"`
	Lang     string `xml:"xml:lang,attr,omitempty"`
	Value    string `xml:",chardata"`
}

func writeRDFXML(g *Graph) ([]byte, error) {
	namespaces := maps.Clone(g.prefixes)
	generated := 0

	qname := func(iri IRI) (string, error) {
		if prefix, local, ok := g.split(iri); ok {
			return prefix + ":" + local, nil
		}

		s := string(iri)
		idx := strings.LastIndexAny(s, "#/")
		if idx < 0 || idx == len(s)-1 || !localNamePattern.MatchString(s[idx+1:]) {
			return "", fmt.Errorf("predicate %s can not be expressed as an xml element name", s)
		}

		ns, local := s[:idx+1], s[idx+1:]
		for prefix, existing := range namespaces {
			if existing == ns {
				return prefix + ":" + local, nil
			}
		}

		generated++
		prefix := fmt.Sprintf("ns%d", generated)
		namespaces[prefix] = ns
		return prefix + ":" + local, nil
	}

	doc := rdfDocument{}

	for _, subject := range g.Subjects() {
		element := rdfElement{About: string(subject)}

		for _, predicate := range g.predicatesOf(subject) {
			name, err := qname(predicate)
			if err != nil {
				return nil, err
			}

			for _, o := range g.Objects(subject, predicate) {
				p := rdfProperty{XMLName: xml.Name{Local: name}}

				switch v := o.(type) {
				case IRI:
					p.Resource = string(v)
				case Literal:
					p.Value = v.Lexical
					p.Lang = v.Lang
					if v.Lang == "" && v.Datatype != "" && v.Datatype != XSDString {
						p.Datatype = string(v.Datatype)
					}
				}

				element.Properties = append(element.Properties, p)
			}
		}

		doc.Descriptions = append(doc.Descriptions, element)
	}

	prefixes := maps.Keys(namespaces)
	slices.Sort(prefixes)
	for _, prefix := range prefixes {
		doc.Namespaces = append(doc.Namespaces, xml.Attr{
			Name:  xml.Name{Local: "xmlns:" + prefix},
			Value: namespaces[prefix],
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rdf/xml: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
