package dcat

import "github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"

const (
	ClassCatalog      rdf.IRI = rdf.NamespaceDCAT + "Catalog"
	ClassDataset      rdf.IRI = rdf.NamespaceDCAT + "Dataset"
	ClassDistribution rdf.IRI = rdf.NamespaceDCAT + "Distribution"
	ClassDataService  rdf.IRI = rdf.NamespaceDCAT + "DataService"

	AccessService  rdf.IRI = rdf.NamespaceDCAT + "accessService"
	DatasetLink    rdf.IRI = rdf.NamespaceDCAT + "dataset"
	DistributionOf rdf.IRI = rdf.NamespaceDCAT + "distribution"
	DownloadURL    rdf.IRI = rdf.NamespaceDCAT + "downloadURL"
	EndpointURL    rdf.IRI = rdf.NamespaceDCAT + "endpointURL"
	Keyword        rdf.IRI = rdf.NamespaceDCAT + "keyword"
	LandingPage    rdf.IRI = rdf.NamespaceDCAT + "landingPage"
	MediaType      rdf.IRI = rdf.NamespaceDCAT + "mediaType"
	ServesDataset  rdf.IRI = rdf.NamespaceDCAT + "servesDataset"
	ServiceLink    rdf.IRI = rdf.NamespaceDCAT + "service"

	ConformsTo  rdf.IRI = rdf.NamespaceDCTerms + "conformsTo"
	Description rdf.IRI = rdf.NamespaceDCTerms + "description"
	Format      rdf.IRI = rdf.NamespaceDCTerms + "format"
	Identifier  rdf.IRI = rdf.NamespaceDCTerms + "identifier"
	Issued      rdf.IRI = rdf.NamespaceDCTerms + "issued"
	Language    rdf.IRI = rdf.NamespaceDCTerms + "language"
	License     rdf.IRI = rdf.NamespaceDCTerms + "license"
	Modified    rdf.IRI = rdf.NamespaceDCTerms + "modified"
	Publisher   rdf.IRI = rdf.NamespaceDCTerms + "publisher"
	Spatial     rdf.IRI = rdf.NamespaceDCTerms + "spatial"
	Subject     rdf.IRI = rdf.NamespaceDCTerms + "subject"
	Title       rdf.IRI = rdf.NamespaceDCTerms + "title"
	Type        rdf.IRI = rdf.NamespaceDCTerms + "type"

	CSVMediaType      rdf.IRI = "http://www.iana.org/assignments/media-types/text/csv"
	SocrataAPIService rdf.IRI = "http://rdf.highvaluedata.net/vocab/service_type#SocrataOpenDataAPI"
)
