// Package dcat maps dataset records onto the W3C Data Catalog vocabulary and
// assembles them, together with a catalog for the hosting server, into a
// single graph.
package dcat

import (
	"fmt"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
)

// Session collects the datasets of one generation call. It is not safe for
// concurrent use.
type Session struct {
	host     string
	server   domain.Server
	minter   IRIMinter
	catalog  *Catalog
	datasets map[rdf.IRI]*Dataset
}

type Option func(*Session)

func WithMinter(minter IRIMinter) Option {
	return func(s *Session) {
		s.minter = minter
	}
}

func NewSession(server domain.Server, options ...Option) (*Session, error) {
	host, err := mapping.NormalizeHost(server.Host)
	if err != nil {
		return nil, err
	}

	s := &Session{
		host:     host,
		server:   server,
		minter:   URLMinter{},
		datasets: map[rdf.IRI]*Dataset{},
	}

	for _, opt := range options {
		opt(s)
	}

	s.catalog = &Catalog{Entity: newEntity(s.minter.Catalog(host), ClassCatalog)}
	mapping.Apply(s.source(nil), catalogRules, func(p rdf.IRI, objects []rdf.Term) {
		s.catalog.add(p, objects...)
	})

	return s, nil
}

// Add maps each record into a dataset with its distribution and service and
// links it to the catalog. A record that was added before is mapped again into
// the same entities, so the catalog never holds two datasets with the same
// identifier.
func (s *Session) Add(records ...*domain.DatasetRecord) error {
	for _, record := range records {
		if err := mapping.RequireID(record); err != nil {
			return err
		}

		s.add(record)
	}

	return nil
}

func (s *Session) add(record *domain.DatasetRecord) {
	src := s.source(record)
	id := record.ID()
	iri := s.minter.Dataset(s.host, id)

	dataset, exists := s.datasets[iri]
	if exists {
		dataset.reset()
		dataset.distribution.reset()
		dataset.service.reset()
	} else {
		dataset = &Dataset{
			Entity:   newEntity(iri, ClassDataset),
			sourceID: id,
		}
		dataset.distribution = &Distribution{
			Entity:  newEntity(s.minter.Distribution(s.host, id), ClassDistribution),
			dataset: dataset,
		}
		dataset.service = &DataService{
			Entity:  newEntity(s.minter.Service(s.host, id), ClassDataService),
			dataset: dataset,
		}
		s.datasets[iri] = dataset
	}

	apply(src, datasetRules, &dataset.Entity)
	apply(src, distributionRules, &dataset.distribution.Entity)
	apply(src, serviceRules, &dataset.service.Entity)

	s.catalog.include(dataset)
}

func apply(src source, rules []mapping.Rule[source], e *Entity) {
	mapping.Apply(src, rules, func(p rdf.IRI, objects []rdf.Term) {
		e.add(p, objects...)
	})
}

func (s *Session) source(record *domain.DatasetRecord) source {
	return source{
		host:   s.host,
		server: s.server,
		record: record,
		minter: s.minter,
	}
}

func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// Dataset looks up a dataset in the session by its source identifier.
func (s *Session) Dataset(id string) (*Dataset, bool) {
	d, ok := s.datasets[s.minter.Dataset(s.host, id)]
	return d, ok
}

// Graph renders the session as a new graph. The catalog comes first, then
// each dataset followed by its distribution and service.
func (s *Session) Graph() *rdf.Graph {
	g := rdf.NewGraph()

	s.catalog.writeTo(g)

	for _, d := range s.catalog.datasets {
		d.writeTo(g)
		d.distribution.writeTo(g)
		d.service.writeTo(g)
	}

	return g
}

// Assemble builds a catalog graph for server from records in one go.
func Assemble(server domain.Server, records []*domain.DatasetRecord, options ...Option) (*rdf.Graph, error) {
	s, err := NewSession(server, options...)
	if err != nil {
		return nil, err
	}

	if err := s.Add(records...); err != nil {
		return nil, fmt.Errorf("failed to assemble catalog for %s: %w", s.host, err)
	}

	return s.Graph(), nil
}
