// Package socrata retrieves dataset metadata from Socrata hosts.
package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/diwise/opendata-crosswalk/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("opendata-crosswalk/socrata")

const searchPageSize int = 100

//go:generate moq -rm -out client_mock.go . Client

type Client interface {
	FetchDatasetMetadata(ctx context.Context, host, id string, opts ...FetchOption) (*domain.DatasetRecord, error)
	SearchDatasets(ctx context.Context, host string) ([]domain.CatalogEntry, error)
}

type Option func(*client)

// WithBaseURL sends every request to baseURL instead of https://{host}.
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithDatastore keeps retrieved metadata in a persistent cache.
func WithDatastore(db database.Datastore) Option {
	return func(c *client) {
		c.db = db
	}
}

type fetchOptions struct {
	refresh bool
}

type FetchOption func(*fetchOptions)

// WithRefresh bypasses both the in-memory and the persistent cache.
func WithRefresh() FetchOption {
	return func(o *fetchOptions) {
		o.refresh = true
	}
}

func New(opts ...Option) Client {
	c := &client{
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		views: map[string][]byte{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type client struct {
	baseURL    string
	httpClient http.Client
	db         database.Datastore

	mu    sync.Mutex
	views map[string][]byte
}

func (c *client) FetchDatasetMetadata(ctx context.Context, host, id string, opts ...FetchOption) (*domain.DatasetRecord, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-dataset-metadata")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

	fo := fetchOptions{}
	for _, opt := range opts {
		opt(&fo)
	}

	host, err = mapping.NormalizeHost(host)
	if err != nil {
		return nil, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		err = domain.NewValidationError("id", "dataset identifier is empty")
		return nil, err
	}

	body, cached := c.cached(host, id, fo.refresh)

	if !cached {
		requestURL := c.hostURL(host) + "/api/views/" + url.PathEscape(id) + ".json"

		body, err = c.get(ctx, requestURL, &domain.NotFoundError{Host: host, ID: id})
		if err != nil {
			return nil, err
		}
	}

	record := &domain.DatasetRecord{}
	if err = json.Unmarshal(body, record); err != nil {
		err = domain.NewValidationError("view", fmt.Sprintf("malformed metadata for %s: %s", id, err.Error()))
		return nil, err
	}

	if record.ID() == "" {
		err = domain.NewValidationError("id", "metadata document has no identifier")
		return nil, err
	}

	if record.AssetType != nil && *record.AssetType != domain.AssetTypeDataset {
		err = domain.NewValidationError("assetType", fmt.Sprintf("unexpected asset type %q, must be %q", *record.AssetType, domain.AssetTypeDataset))
		return nil, err
	}

	if !cached {
		c.store(ctx, host, id, body)
		logger.Debug().Str("host", host).Str("dataset", id).Msg("retrieved dataset metadata")
	}

	return record, nil
}

func (c *client) cached(host, id string, refresh bool) ([]byte, bool) {
	if refresh {
		return nil, false
	}

	key := host + "/" + id

	c.mu.Lock()
	body, ok := c.views[key]
	c.mu.Unlock()

	if ok {
		return body, true
	}

	if c.db == nil {
		return nil, false
	}

	body, err := c.db.GetView(host, id)
	if err != nil {
		return nil, false
	}

	c.mu.Lock()
	c.views[key] = body
	c.mu.Unlock()

	return body, true
}

func (c *client) store(ctx context.Context, host, id string, body []byte) {
	c.mu.Lock()
	c.views[host+"/"+id] = body
	c.mu.Unlock()

	if c.db != nil {
		if err := c.db.StoreView(host, id, body); err != nil {
			logger := logging.GetFromContext(ctx)
			logger.Error().Err(err).Msg("failed to store dataset metadata in cache")
		}
	}
}

type discoveryResponse struct {
	Results []struct {
		Resource struct {
			ID          string     `json:"id"`
			Name        string     `json:"name"`
			Description string     `json:"description"`
			Type        string     `json:"type"`
			UpdatedAt   *time.Time `json:"updatedAt"`
		} `json:"resource"`
		Permalink string `json:"permalink"`
		Link      string `json:"link"`
	} `json:"results"`
	ResultSetSize int `json:"resultSetSize"`
}

// SearchDatasets lists the datasets a host publishes through the discovery API.
func (c *client) SearchDatasets(ctx context.Context, host string) ([]domain.CatalogEntry, error) {
	var err error

	ctx, span := tracer.Start(ctx, "search-datasets")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	host, err = mapping.NormalizeHost(host)
	if err != nil {
		return nil, err
	}

	entries := []domain.CatalogEntry{}

	for offset := 0; ; offset += searchPageSize {
		params := url.Values{}
		params.Add("domains", host)
		params.Add("only", "datasets")
		params.Add("limit", fmt.Sprintf("%d", searchPageSize))
		params.Add("offset", fmt.Sprintf("%d", offset))

		var body []byte
		body, err = c.get(ctx, c.hostURL(host)+"/api/catalog/v1?"+params.Encode(), &domain.NotFoundError{Host: host})
		if err != nil {
			return nil, err
		}

		page := discoveryResponse{}
		if err = json.Unmarshal(body, &page); err != nil {
			err = fmt.Errorf("failed to unmarshal discovery response: %w", err)
			return nil, err
		}

		for _, r := range page.Results {
			entries = append(entries, domain.CatalogEntry{
				ID:          r.Resource.ID,
				Name:        r.Resource.Name,
				Description: r.Resource.Description,
				Type:        r.Resource.Type,
				UpdatedAt:   r.Resource.UpdatedAt,
				Permalink:   r.Permalink,
				Link:        r.Link,
			})
		}

		if len(page.Results) < searchPageSize {
			break
		}

		if page.ResultSetSize > 0 && len(entries) >= page.ResultSetSize {
			break
		}
	}

	return entries, nil
}

func (c *client) hostURL(host string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return "https://" + host
}

// get returns notFound when the host answers 404 Not Found.
func (c *client) get(ctx context.Context, requestURL string, notFound error) ([]byte, error) {
	logger := logging.GetFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &domain.NetworkError{URL: requestURL, Err: err}
	}

	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{URL: requestURL, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, notFound
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error().Str("url", requestURL).Int("status", resp.StatusCode).Str("body", truncate(body, 256)).Msg("request failed")
		return nil, &domain.NetworkError{URL: requestURL, StatusCode: resp.StatusCode}
	}

	return body, nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
