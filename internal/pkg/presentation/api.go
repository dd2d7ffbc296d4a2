package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application"
	"github.com/diwise/opendata-crosswalk/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Router() chi.Router
	Start(port string) error
}

type crosswalkAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, cw application.Crosswalk) API {
	return newCrosswalkAPI(ctx, r, cw)
}

func newCrosswalkAPI(ctx context.Context, r chi.Router, cw application.Crosswalk) *crosswalkAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"text/turtle", "application/rdf+xml", "application/ld+json", "application/n-triples",
		"application/xml", "application/json", "text/markdown", "text/plain",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("opendata-crosswalk", otelchi.WithChiRoutes(r)))

	a := &crosswalkAPI{
		router: r,
		log:    log,
	}

	a.addProbeHandlers(r)
	a.addCrosswalkHandlers(r, log, cw)

	return a
}

func (a *crosswalkAPI) Router() chi.Router {
	return a.router
}

func (a *crosswalkAPI) Start(port string) error {
	a.log.Info().Msgf("Starting opendata-crosswalk on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *crosswalkAPI) addCrosswalkHandlers(r chi.Router, log zerolog.Logger, cw application.Crosswalk) {
	r.Route("/api/servers", func(r chi.Router) {
		r.Get("/", handlers.NewRetrieveServersHandler(log, cw))

		r.Route("/{host}", func(r chi.Router) {
			r.Get("/dcat", handlers.NewRetrieveCatalogHandler(log, cw))
			r.Get("/datasets", handlers.NewSearchDatasetsHandler(log, cw))

			r.Route("/datasets/{id}", func(r chi.Router) {
				r.Get("/dcat", handlers.NewRetrieveCatalogHandler(log, cw))
				r.Get("/ddi", handlers.NewRetrieveCodebookHandler(log, cw))
				r.Get("/croissant", handlers.NewRetrieveCroissantHandler(log, cw))
				r.Get("/markdown", handlers.NewRetrieveMarkdownHandler(log, cw))
				r.Get("/code/{environment}", handlers.NewRetrieveCodeHandler(log, cw))
			})
		})
	})
}

func (a *crosswalkAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
}
