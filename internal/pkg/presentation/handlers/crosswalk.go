package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("opendata-crosswalk/api")

func NewRetrieveServersHandler(logger zerolog.Logger, cw application.Crosswalk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, cw.Servers())
	})
}

func NewSearchDatasetsHandler(logger zerolog.Logger, cw application.Crosswalk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "search-datasets")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		entries, err := cw.Search(ctx, hostParam(r))
		if err != nil {
			writeError(w, log, "search", err)
			return
		}

		writeJSON(w, log, entries)
	})
}

// NewRetrieveCatalogHandler serves a catalog of the datasets listed in one or
// more dataset query parameters, or of the single dataset in the path.
func NewRetrieveCatalogHandler(logger zerolog.Logger, cw application.Crosswalk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-catalog")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		refs := []domain.DatasetRef{}
		if id := idParam(r); id != "" {
			refs = append(refs, domain.ByID(id))
		} else {
			for _, param := range r.URL.Query()["dataset"] {
				for _, id := range strings.Split(param, ",") {
					if strings.TrimSpace(id) != "" {
						refs = append(refs, domain.ByID(id))
					}
				}
			}
		}

		doc, err := cw.Catalog(ctx, hostParam(r), refs, catalogFormat(r))
		if err != nil {
			writeError(w, log, application.KindCatalog, err)
			return
		}

		writeDocument(w, doc)
	})
}

func NewRetrieveCodebookHandler(logger zerolog.Logger, cw application.Crosswalk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-codebook")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		doc, err := cw.Codebook(ctx, hostParam(r), domain.ByID(idParam(r)), r.URL.Query().Get("format"))
		if err != nil {
			writeError(w, log, application.KindCodebook, err)
			return
		}

		writeDocument(w, doc)
	})
}

func NewRetrieveCroissantHandler(logger zerolog.Logger, cw application.Crosswalk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-croissant")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		doc, err := cw.Croissant(ctx, hostParam(r), domain.ByID(idParam(r)), r.URL.Query().Get("format"))
		if err != nil {
			writeError(w, log, application.KindCroissant, err)
			return
		}

		writeDocument(w, doc)
	})
}

func NewRetrieveMarkdownHandler(logger zerolog.Logger, cw application.Crosswalk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-markdown")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		doc, err := cw.Markdown(ctx, hostParam(r), domain.ByID(idParam(r)))
		if err != nil {
			writeError(w, log, application.KindMarkdown, err)
			return
		}

		writeDocument(w, doc)
	})
}

func NewRetrieveCodeHandler(logger zerolog.Logger, cw application.Crosswalk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-code")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		environment, _ := url.QueryUnescape(chi.URLParam(r, "environment"))

		doc, err := cw.Code(ctx, hostParam(r), idParam(r), environment)
		if err != nil {
			writeError(w, log, application.KindCode, err)
			return
		}

		writeDocument(w, doc)
	})
}

func hostParam(r *http.Request) string {
	host, _ := url.QueryUnescape(chi.URLParam(r, "host"))
	return host
}

func idParam(r *http.Request) string {
	id, _ := url.QueryUnescape(chi.URLParam(r, "id"))
	return id
}

// catalogFormat prefers the format query parameter and falls back to the
// first RDF media type in the Accept header.
func catalogFormat(r *http.Request) string {
	if format := r.URL.Query().Get("format"); format != "" {
		return format
	}

	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(strings.Split(accept, ";")[0])
		if f, err := rdf.ParseFormat(mediaType); err == nil {
			return string(f)
		}
	}

	return ""
}

func writeDocument(w http.ResponseWriter, doc *application.Document) {
	documentsGenerated.WithLabelValues(doc.Kind, doc.Format).Inc()

	w.Header().Add("Content-Type", doc.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Body)
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeError(w http.ResponseWriter, log zerolog.Logger, kind string, err error) {
	generationErrors.WithLabelValues(kind).Inc()

	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("kind", kind).Msg("failed to generate document")
	} else {
		log.Info().Err(err).Str("kind", kind).Msg("rejected request")
	}

	http.Error(w, err.Error(), status)
}

// StatusCode translates the typed errors of the crosswalk into HTTP status codes.
func StatusCode(err error) int {
	var (
		validationErr  *domain.ValidationError
		unsupportedErr *domain.UnsupportedFormatError
		notFoundErr    *domain.NotFoundError
		networkErr     *domain.NetworkError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &unsupportedErr):
		return http.StatusNotAcceptable
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &networkErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
