package dcat

import (
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"
	"github.com/google/uuid"
)

// IRIMinter derives resource identifiers. Implementations must be pure
// functions of their arguments so that regenerating a catalog yields the same
// identifiers. Host and id are expected to be validated by the caller.
type IRIMinter interface {
	Catalog(host string) rdf.IRI
	Dataset(host, id string) rdf.IRI
	Distribution(host, id string) rdf.IRI
	Service(host, id string) rdf.IRI
}

// URLMinter mints identifiers that resolve to the source platform.
type URLMinter struct{}

func (URLMinter) Catalog(host string) rdf.IRI {
	return rdf.IRI("https://" + host + "/catalog")
}

func (URLMinter) Dataset(host, id string) rdf.IRI {
	return rdf.IRI(mapping.Expand(host, mapping.ViewPage, id))
}

func (m URLMinter) Distribution(host, id string) rdf.IRI {
	return m.Dataset(host, id) + "#csv"
}

func (m URLMinter) Service(host, id string) rdf.IRI {
	return m.Dataset(host, id) + "#api"
}

// UUIDMinter mints name based (version 5) urn:uuid identifiers.
type UUIDMinter struct{}

func (UUIDMinter) Catalog(host string) rdf.IRI {
	return urn(URLMinter{}.Catalog(host))
}

func (UUIDMinter) Dataset(host, id string) rdf.IRI {
	return urn(URLMinter{}.Dataset(host, id))
}

func (m UUIDMinter) Distribution(host, id string) rdf.IRI {
	return m.Dataset(host, id) + "-csv"
}

func (m UUIDMinter) Service(host, id string) rdf.IRI {
	return m.Dataset(host, id) + "-api"
}

func urn(name rdf.IRI) rdf.IRI {
	return rdf.IRI(uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).URN())
}
