package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/codegen"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/croissant"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/dcat"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/ddi"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/servers"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/diwise/opendata-crosswalk/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/opendata-crosswalk/internal/pkg/infrastructure/socrata"
	"github.com/diwise/opendata-crosswalk/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const serviceName string = "opendata-crosswalk"

type settings struct {
	cachePath   string
	serversFile string
	refresh     bool
	uuids       bool

	threshold       int
	includeComputed bool
	excludeCodes    bool
	maxCodes        int
	appToken        string
	limit           int
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	s := &settings{}

	cmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Describe Socrata datasets as DCAT, DDI-Codebook and Croissant",
		Version:      buildinfo.SourceVersion(),
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&s.cachePath, "cache", "", "sqlite file to cache dataset metadata in (env CROSSWALK_CACHE_PATH)")
	flags.StringVar(&s.serversFile, "servers", "", "yaml file describing known servers (env CROSSWALK_SERVERS_FILE)")
	flags.BoolVar(&s.refresh, "refresh", false, "ignore cached metadata")
	flags.BoolVar(&s.uuids, "uuid", false, "identify catalog resources with urn:uuid identifiers")

	cmd.AddCommand(
		serveCmd(s),
		dcatCmd(s),
		ddiCmd(s),
		croissantCmd(s),
		markdownCmd(s),
		codeCmd(s),
		searchCmd(s),
		serversCmd(s),
	)

	return cmd
}

func serveCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the crosswalk over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log, cleanup := o11y.Init(cmd.Context(), serviceName, buildinfo.SourceVersion())
			defer cleanup()

			log.Info().Msgf("Starting up %s ...", serviceName)

			port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

			cw, err := newCrosswalk(ctx, log, s)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to set up crosswalk")
			}

			api := presentation.NewAPI(ctx, chi.NewRouter(), cw)
			if err = api.Start(port); err != nil {
				log.Fatal().Msgf("failed to start router: %s", err.Error())
			}

			return nil
		},
	}
}

func dcatCmd(s *settings) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dcat <host> <dataset id>...",
		Short: "Describe one or more datasets as a DCAT catalog",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, func(ctx context.Context, cw application.Crosswalk) (*application.Document, error) {
				return cw.Catalog(ctx, args[0], refs(args[1:]), format)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "turtle, rdfxml, jsonld or ntriples")

	return cmd
}

func ddiCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ddi <host> <dataset id>",
		Short: "Describe a dataset as a DDI-Codebook 2.5 document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, func(ctx context.Context, cw application.Crosswalk) (*application.Document, error) {
				return cw.Codebook(ctx, args[0], refs(args[1:])[0], "xml")
			})
		},
	}

	cmd.Flags().IntVar(&s.threshold, "threshold", ddi.DefaultCategoryThreshold, "highest cardinality for which categories are listed")

	return cmd
}

func croissantCmd(s *settings) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "croissant <host> <dataset id>",
		Short: "Describe a dataset as Croissant metadata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, func(ctx context.Context, cw application.Crosswalk) (*application.Document, error) {
				return cw.Croissant(ctx, args[0], refs(args[1:])[0], format)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "jsonld", "jsonld or json")
	cmd.Flags().BoolVar(&s.includeComputed, "include-computed", false, "keep computed region columns")
	cmd.Flags().BoolVar(&s.excludeCodes, "exclude-codes", false, "skip the code record sets")
	cmd.Flags().IntVar(&s.maxCodes, "max-codes", croissant.DefaultMaxCodes, "highest cardinality for a complete code list")

	return cmd
}

func markdownCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "markdown <host> <dataset id>",
		Short: "Summarize a dataset as Markdown",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, func(ctx context.Context, cw application.Crosswalk) (*application.Document, error) {
				return cw.Markdown(ctx, args[0], refs(args[1:])[0])
			})
		},
	}
}

func codeCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "code <environment> <host> <dataset id>",
		Short:     "Print a snippet that loads a dataset",
		Long:      "Print a snippet that loads a dataset. Supported environments: " + fmt.Sprint(codegen.Environments()),
		Args:      cobra.ExactArgs(3),
		ValidArgs: codegen.Environments(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, func(ctx context.Context, cw application.Crosswalk) (*application.Document, error) {
				return cw.Code(ctx, args[1], args[2], args[0])
			})
		},
	}

	cmd.Flags().StringVar(&s.appToken, "app-token", codegen.DefaultAppToken, "application token to put in the snippet")
	cmd.Flags().IntVar(&s.limit, "limit", codegen.DefaultLimit, "row limit to put in the snippet")

	return cmd
}

func searchCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "search <host>",
		Short: "List the datasets published by a host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := cliContext(cmd)

			cw, err := newCrosswalk(ctx, log, s)
			if err != nil {
				return err
			}

			entries, err := cw.Search(ctx, args[0])
			if err != nil {
				return err
			}

			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.ID, e.Name)
			}

			return nil
		},
	}
}

func serversCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List the known servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := cliContext(cmd)

			cw, err := newCrosswalk(ctx, log, s)
			if err != nil {
				return err
			}

			for _, server := range cw.Servers() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", server.Host, server.Name)
			}

			return nil
		},
	}
}

func run(cmd *cobra.Command, s *settings, generate func(context.Context, application.Crosswalk) (*application.Document, error)) error {
	ctx, log := cliContext(cmd)

	cw, err := newCrosswalk(ctx, log, s)
	if err != nil {
		return err
	}

	doc, err := generate(ctx, cw)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(doc.Body)
	return err
}

// cliContext logs to stderr so that generated documents can be piped.
func cliContext(cmd *cobra.Command) (context.Context, zerolog.Logger) {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return logging.NewContextWithLogger(ctx, log), log
}

func newCrosswalk(ctx context.Context, log zerolog.Logger, s *settings) (application.Crosswalk, error) {
	registry := servers.NewDefaultRegistry()

	serversFile := s.serversFile
	if serversFile == "" {
		serversFile = env.GetVariableOrDefault(log, "CROSSWALK_SERVERS_FILE", "")
	}

	if serversFile != "" {
		f, err := os.Open(serversFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open server configuration: %w", err)
		}
		defer f.Close()

		registry, err = servers.NewRegistry(f)
		if err != nil {
			return nil, err
		}
	}

	clientOpts := []socrata.Option{}

	cachePath := s.cachePath
	if cachePath == "" {
		cachePath = env.GetVariableOrDefault(log, "CROSSWALK_CACHE_PATH", "")
	}

	if cachePath != "" {
		db, err := database.NewDatabaseConnection(database.NewSQLiteConnector(cachePath), log)
		if err != nil {
			return nil, err
		}
		clientOpts = append(clientOpts, socrata.WithDatastore(db))
	}

	opts := []application.Option{
		application.WithRefresh(s.refresh),
		application.WithCodebookOptions(ddi.Options{
			CategoryThreshold: s.threshold,
			SoftwareVersion:   buildinfo.SourceVersion(),
		}),
		application.WithCroissantOptions(croissant.Options{
			IncludeComputed: s.includeComputed,
			ExcludeCodes:    s.excludeCodes,
			MaxCodes:        s.maxCodes,
		}),
		application.WithCodeOptions(codegen.Options{
			AppToken: s.appToken,
			Limit:    s.limit,
		}),
	}

	if s.uuids {
		opts = append(opts, application.WithMinter(dcat.UUIDMinter{}))
	}

	return application.New(socrata.New(clientOpts...), registry, opts...), nil
}

func refs(ids []string) []domain.DatasetRef {
	result := make([]domain.DatasetRef, 0, len(ids))
	for _, id := range ids {
		result = append(result, domain.ByID(id))
	}
	return result
}
