package dcat

import (
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"
	"golang.org/x/exp/slices"
)

// Entity is the common part of every catalog resource: an identifier, a
// class and an ordered set of property values. Callers only get read access,
// values are written by the mapping tables in this package.
type Entity struct {
	iri        rdf.IRI
	class      rdf.IRI
	predicates []rdf.IRI
	values     map[rdf.IRI][]rdf.Term
}

func newEntity(iri, class rdf.IRI) Entity {
	return Entity{
		iri:    iri,
		class:  class,
		values: map[rdf.IRI][]rdf.Term{},
	}
}

func (e *Entity) IRI() rdf.IRI {
	return e.iri
}

func (e *Entity) Class() rdf.IRI {
	return e.class
}

func (e *Entity) Values(predicate rdf.IRI) []rdf.Term {
	return slices.Clone(e.values[predicate])
}

// Value returns the first value of predicate.
func (e *Entity) Value(predicate rdf.IRI) (rdf.Term, bool) {
	v := e.values[predicate]
	if len(v) == 0 {
		return nil, false
	}
	return v[0], true
}

func (e *Entity) Has(predicate rdf.IRI) bool {
	return len(e.values[predicate]) > 0
}

func (e *Entity) Predicates() []rdf.IRI {
	return slices.Clone(e.predicates)
}

func (e *Entity) add(predicate rdf.IRI, objects ...rdf.Term) {
	if len(objects) == 0 {
		return
	}

	if _, ok := e.values[predicate]; !ok {
		e.predicates = append(e.predicates, predicate)
	}

	for _, o := range objects {
		if !slices.Contains(e.values[predicate], o) {
			e.values[predicate] = append(e.values[predicate], o)
		}
	}
}

func (e *Entity) reset() {
	e.predicates = nil
	e.values = map[rdf.IRI][]rdf.Term{}
}

func (e *Entity) writeTo(g *rdf.Graph) {
	g.Add(e.iri, rdf.RDFType, e.class)

	for _, p := range e.predicates {
		for _, o := range e.values[p] {
			g.Add(e.iri, p, o)
		}
	}
}

type Catalog struct {
	Entity
	datasets []*Dataset
	services []*DataService
}

func (c *Catalog) Datasets() []*Dataset {
	return slices.Clone(c.datasets)
}

func (c *Catalog) Services() []*DataService {
	return slices.Clone(c.services)
}

func (c *Catalog) contains(d *Dataset) bool {
	return slices.Contains(c.datasets, d)
}

func (c *Catalog) include(d *Dataset) {
	if c.contains(d) {
		return
	}

	c.datasets = append(c.datasets, d)
	c.services = append(c.services, d.service)
	c.add(DatasetLink, d.iri)
	c.add(ServiceLink, d.service.iri)
}

// Dataset owns exactly one primary distribution and one primary service.
type Dataset struct {
	Entity
	sourceID     string
	distribution *Distribution
	service      *DataService
}

func (d *Dataset) SourceID() string {
	return d.sourceID
}

func (d *Dataset) Distribution() *Distribution {
	return d.distribution
}

func (d *Dataset) Service() *DataService {
	return d.service
}

type Distribution struct {
	Entity
	dataset *Dataset
}

// Dataset is a lookup only back-reference to the owning dataset.
func (d *Distribution) Dataset() *Dataset {
	return d.dataset
}

type DataService struct {
	Entity
	dataset *Dataset
}

func (s *DataService) Dataset() *Dataset {
	return s.dataset
}
