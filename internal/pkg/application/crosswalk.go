package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/codegen"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/croissant"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/dcat"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/ddi"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/markdown"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/servers"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/diwise/opendata-crosswalk/internal/pkg/infrastructure/socrata"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("opendata-crosswalk/crosswalk")

const (
	KindCatalog   string = "dcat"
	KindCodebook  string = "ddi"
	KindCroissant string = "croissant"
	KindMarkdown  string = "markdown"
	KindCode      string = "code"
)

// Document is a generated metadata document ready to be written somewhere.
type Document struct {
	Kind        string
	Format      string
	ContentType string
	Body        []byte
}

type documentFormat struct {
	name        string
	contentType string
}

var (
	codebookFormats = map[string]documentFormat{
		"":    {name: "xml", contentType: "application/xml"},
		"xml": {name: "xml", contentType: "application/xml"},
	}
	croissantFormats = map[string]documentFormat{
		"":       {name: "jsonld", contentType: "application/ld+json"},
		"jsonld": {name: "jsonld", contentType: "application/ld+json"},
		"json":   {name: "json", contentType: "application/json"},
	}
)

//go:generate moq -rm -out crosswalk_mock.go . Crosswalk

type Crosswalk interface {
	Catalog(ctx context.Context, host string, refs []domain.DatasetRef, format string) (*Document, error)
	Codebook(ctx context.Context, host string, ref domain.DatasetRef, format string) (*Document, error)
	Croissant(ctx context.Context, host string, ref domain.DatasetRef, format string) (*Document, error)
	Markdown(ctx context.Context, host string, ref domain.DatasetRef) (*Document, error)
	Code(ctx context.Context, host, id, environment string) (*Document, error)

	Search(ctx context.Context, host string) ([]domain.CatalogEntry, error)
	Servers() []domain.Server
}

type Option func(*crosswalk)

func WithMinter(minter dcat.IRIMinter) Option {
	return func(cw *crosswalk) {
		cw.minter = minter
	}
}

// WithRefresh makes every fetch bypass the metadata cache.
func WithRefresh(refresh bool) Option {
	return func(cw *crosswalk) {
		cw.refresh = refresh
	}
}

func WithCodebookOptions(opts ddi.Options) Option {
	return func(cw *crosswalk) {
		cw.codebook = opts
	}
}

func WithCroissantOptions(opts croissant.Options) Option {
	return func(cw *crosswalk) {
		cw.croissant = opts
	}
}

func WithCodeOptions(opts codegen.Options) Option {
	return func(cw *crosswalk) {
		cw.code = opts
	}
}

func New(client socrata.Client, registry servers.Registry, opts ...Option) Crosswalk {
	cw := &crosswalk{
		client:   client,
		registry: registry,
		minter:   dcat.URLMinter{},
	}

	for _, opt := range opts {
		opt(cw)
	}

	return cw
}

type crosswalk struct {
	client   socrata.Client
	registry servers.Registry
	minter   dcat.IRIMinter
	refresh  bool

	codebook  ddi.Options
	croissant croissant.Options
	code      codegen.Options
}

func (cw *crosswalk) Catalog(ctx context.Context, host string, refs []domain.DatasetRef, format string) (doc *Document, err error) {
	ctx, span := tracer.Start(ctx, "catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

	if format == "" {
		format = string(rdf.FormatTurtle)
	}

	f, err := rdf.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	server, err := cw.server(host)
	if err != nil {
		return nil, err
	}

	session, err := dcat.NewSession(server, dcat.WithMinter(cw.minter))
	if err != nil {
		return nil, err
	}

	for _, ref := range refs {
		var record *domain.DatasetRecord
		record, err = cw.resolve(ctx, server.Host, ref)
		if err != nil {
			return nil, err
		}

		if err = session.Add(record); err != nil {
			return nil, fmt.Errorf("failed to add dataset %s to catalog: %w", ref.ID(), err)
		}
	}

	graph := session.Graph()

	body, err := rdf.Serialize(graph, f)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("host", server.Host).Int("datasets", len(refs)).Int("triples", graph.Len()).Msg("assembled catalog")

	return &Document{
		Kind:        KindCatalog,
		Format:      string(f),
		ContentType: rdf.FormatRegistry[f].MIMEType,
		Body:        body,
	}, nil
}

func (cw *crosswalk) Codebook(ctx context.Context, host string, ref domain.DatasetRef, format string) (doc *Document, err error) {
	ctx, span := tracer.Start(ctx, "codebook")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	f, err := documentFormatFor(codebookFormats, KindCodebook, format)
	if err != nil {
		return nil, err
	}

	server, record, err := cw.lookup(ctx, host, ref)
	if err != nil {
		return nil, err
	}

	cb, err := ddi.Generate(server, record, cw.codebook)
	if err != nil {
		return nil, err
	}

	if err = ddi.Validate(cb); err != nil {
		return nil, err
	}

	body, err := ddi.Marshal(cb)
	if err != nil {
		return nil, err
	}

	return &Document{Kind: KindCodebook, Format: f.name, ContentType: f.contentType, Body: body}, nil
}

func (cw *crosswalk) Croissant(ctx context.Context, host string, ref domain.DatasetRef, format string) (doc *Document, err error) {
	ctx, span := tracer.Start(ctx, "croissant")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	f, err := documentFormatFor(croissantFormats, KindCroissant, format)
	if err != nil {
		return nil, err
	}

	server, record, err := cw.lookup(ctx, host, ref)
	if err != nil {
		return nil, err
	}

	metadata, err := croissant.Generate(server, record, cw.croissant)
	if err != nil {
		return nil, err
	}

	if err = croissant.Validate(metadata); err != nil {
		return nil, err
	}

	body, err := croissant.Marshal(metadata)
	if err != nil {
		return nil, err
	}

	return &Document{Kind: KindCroissant, Format: f.name, ContentType: f.contentType, Body: body}, nil
}

func (cw *crosswalk) Markdown(ctx context.Context, host string, ref domain.DatasetRef) (doc *Document, err error) {
	ctx, span := tracer.Start(ctx, "markdown")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, record, err := cw.lookup(ctx, host, ref)
	if err != nil {
		return nil, err
	}

	body := markdown.Generate(record, markdown.SectionVariables)

	return &Document{Kind: KindMarkdown, Format: "markdown", ContentType: "text/markdown", Body: []byte(body)}, nil
}

// Code renders a snippet without contacting the host.
func (cw *crosswalk) Code(ctx context.Context, host, id, environment string) (*Document, error) {
	server, err := cw.server(host)
	if err != nil {
		return nil, err
	}

	snippet, err := codegen.Generate(environment, server.Host, id, cw.code)
	if err != nil {
		return nil, err
	}

	return &Document{
		Kind:        KindCode,
		Format:      strings.ToLower(strings.TrimSpace(environment)),
		ContentType: "text/plain",
		Body:        []byte(snippet),
	}, nil
}

func (cw *crosswalk) Search(ctx context.Context, host string) ([]domain.CatalogEntry, error) {
	server, err := cw.server(host)
	if err != nil {
		return nil, err
	}

	return cw.client.SearchDatasets(ctx, server.Host)
}

func (cw *crosswalk) Servers() []domain.Server {
	return cw.registry.List()
}

func (cw *crosswalk) server(host string) (domain.Server, error) {
	h, err := mapping.NormalizeHost(host)
	if err != nil {
		return domain.Server{}, err
	}
	return cw.registry.Get(h), nil
}

func (cw *crosswalk) lookup(ctx context.Context, host string, ref domain.DatasetRef) (domain.Server, *domain.DatasetRecord, error) {
	server, err := cw.server(host)
	if err != nil {
		return domain.Server{}, nil, err
	}

	record, err := cw.resolve(ctx, server.Host, ref)
	if err != nil {
		return domain.Server{}, nil, err
	}

	return server, record, nil
}

func (cw *crosswalk) resolve(ctx context.Context, host string, ref domain.DatasetRef) (*domain.DatasetRecord, error) {
	return ref.Resolve(ctx, func(ctx context.Context, id string) (*domain.DatasetRecord, error) {
		var opts []socrata.FetchOption
		if cw.refresh {
			opts = append(opts, socrata.WithRefresh())
		}
		return cw.client.FetchDatasetMetadata(ctx, host, id, opts...)
	})
}

func documentFormatFor(formats map[string]documentFormat, kind, token string) (documentFormat, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return documentFormat{}, &domain.UnsupportedFormatError{Kind: kind, Token: token}
	}
	return f, nil
}
