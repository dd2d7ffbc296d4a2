package dcat

import (
	"time"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
)

// source is what every mapping table is evaluated against.
type source struct {
	host   string
	server domain.Server
	record *domain.DatasetRecord
	minter IRIMinter
}

func (s source) id() string {
	return s.record.ID()
}

func (s source) url(pattern mapping.Pattern) []rdf.Term {
	return []rdf.Term{rdf.IRI(mapping.Expand(s.host, pattern, s.id()))}
}

var catalogRules = []mapping.Rule[source]{
	mapping.Scalar(
		"server.name", Title,
		func(s source) *string { return &s.server.Name },
		mapping.Literal,
	),
	mapping.Derived("server.host", Publisher, publishers),
	mapping.List(
		"server.spatial", Spatial,
		func(s source) []string { return s.server.Spatial },
		mapping.ResourceOrLiteral,
	),
}

var datasetRules = []mapping.Rule[source]{
	mapping.Derived("id", Identifier, func(s source) []rdf.Term {
		return []rdf.Term{rdf.NewLiteral(s.id())}
	}),
	mapping.Scalar(
		"name", Title,
		func(s source) *string { return s.record.Name },
		mapping.Literal,
	),
	mapping.Scalar(
		"description", Description,
		func(s source) *string { return s.record.Description },
		mapping.Literal,
	),
	mapping.List(
		"tags", Keyword,
		func(s source) []string { return s.record.Tags },
		mapping.Literal,
	),
	mapping.Derived("id", LandingPage, func(s source) []rdf.Term {
		return s.url(mapping.LandingPage)
	}),
	mapping.Derived("license", License, license),
	mapping.Derived("rowsUpdatedAt|viewLastModified", Modified, func(s source) []rdf.Term {
		return timestamp(
			mapping.Candidate[time.Time]{Value: s.record.RowsUpdatedAt, Priority: 1},
			mapping.Candidate[time.Time]{Value: s.record.ViewLastModified, Priority: 2},
		)
	}),
	mapping.Derived("publicationDate|createdAt", Issued, func(s source) []rdf.Term {
		return timestamp(
			mapping.Candidate[time.Time]{Value: s.record.PublicationDate, Priority: 1},
			mapping.Candidate[time.Time]{Value: s.record.CreatedAt, Priority: 2},
		)
	}),
	mapping.Scalar(
		"category", Subject,
		func(s source) *string { return s.record.Category },
		mapping.Literal,
	),
	mapping.Derived("server.host", Publisher, publishers),
	mapping.List(
		"server.spatial", Spatial,
		func(s source) []string { return s.server.Spatial },
		mapping.ResourceOrLiteral,
	),
	mapping.List(
		"server.languages", Language,
		func(s source) []string { return s.server.Languages },
		mapping.Literal,
	),
	mapping.Derived("id", DistributionOf, func(s source) []rdf.Term {
		return []rdf.Term{s.minter.Distribution(s.host, s.id())}
	}),
}

var distributionRules = []mapping.Rule[source]{
	mapping.Derived("id", DownloadURL, func(s source) []rdf.Term {
		return s.url(mapping.CSVDownload)
	}),
	mapping.Derived("", MediaType, func(source) []rdf.Term {
		return []rdf.Term{CSVMediaType}
	}),
	mapping.Derived("", Format, func(source) []rdf.Term {
		return []rdf.Term{rdf.NewLiteral("CSV")}
	}),
	mapping.Derived("id", AccessService, func(s source) []rdf.Term {
		return []rdf.Term{s.minter.Service(s.host, s.id())}
	}),
}

var serviceRules = []mapping.Rule[source]{
	mapping.Derived("id", ServesDataset, func(s source) []rdf.Term {
		return []rdf.Term{s.minter.Dataset(s.host, s.id())}
	}),
	mapping.Derived("id", ConformsTo, func(s source) []rdf.Term {
		return s.url(mapping.APIFoundry)
	}),
	mapping.Derived("id", EndpointURL, func(s source) []rdf.Term {
		return s.url(mapping.APIEndpoint)
	}),
	mapping.Derived("", Type, func(source) []rdf.Term {
		return []rdf.Term{SocrataAPIService}
	}),
}

func publishers(s source) []rdf.Term {
	terms := []rdf.Term{rdf.IRI("https://" + s.host)}
	return append(terms, mapping.MapList(s.server.Publisher, mapping.ResourceOrLiteral)...)
}

// license prefers the descriptive license (name and terms link) over the
// license code. A name on its own is enough to leave the code out.
func license(s source) []rdf.Term {
	var described, coded *[]rdf.Term

	if l := s.record.License; l != nil {
		terms := []rdf.Term{}
		if t := mapping.MapScalar(l.Name, mapping.Literal); t != nil {
			terms = append(terms, *t)
		}
		if t := mapping.MapScalar(l.TermsLink, mapping.ResourceOrLiteral); t != nil {
			terms = append(terms, *t)
		}
		if len(terms) > 0 {
			described = &terms
		}
	}

	if t := mapping.MapScalar(s.record.LicenseID, mapping.Literal); t != nil {
		coded = &[]rdf.Term{*t}
	}

	chosen := mapping.Coalesce(
		mapping.Candidate[[]rdf.Term]{Value: described, Priority: 1},
		mapping.Candidate[[]rdf.Term]{Value: coded, Priority: 2},
	)
	if chosen == nil {
		return nil
	}

	return *chosen
}

func timestamp(candidates ...mapping.Candidate[time.Time]) []rdf.Term {
	t := mapping.Coalesce(candidates...)
	if term := mapping.MapScalar(t, mapping.DateTime); term != nil {
		return []rdf.Term{*term}
	}
	return nil
}
