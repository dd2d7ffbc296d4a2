package presentation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/servers"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/diwise/opendata-crosswalk/internal/pkg/infrastructure/socrata"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestHealth(t *testing.T) {
	is, ts, _ := testSetup(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/health", "")
	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestServers(t *testing.T) {
	is, ts, _ := testSetup(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/servers", "")
	is.Equal(resp.StatusCode, http.StatusOK)

	list := []domain.Server{}
	is.NoErr(json.Unmarshal([]byte(body), &list))
	is.Equal(len(list), 10)
}

func TestCatalogAsTurtle(t *testing.T) {
	is, ts, _ := testSetup(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/servers/data.sfgov.org/datasets/vw6y-z8j6/dcat", "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "text/turtle")
	is.True(strings.Contains(body, "<https://data.sfgov.org/d/vw6y-z8j6>"))
}

func TestThatAnUnknownFormatIsNotAcceptable(t *testing.T) {
	is, ts, client := testSetup(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/servers/data.sfgov.org/datasets/vw6y-z8j6/ddi?format=pdf", "")
	is.Equal(resp.StatusCode, http.StatusNotAcceptable)
	is.Equal(len(client.FetchDatasetMetadataCalls()), 0)
}

func TestThatAMissingDatasetIsNotFound(t *testing.T) {
	is, ts, client := testSetup(t)
	defer ts.Close()

	client.FetchDatasetMetadataFunc = func(ctx context.Context, host, id string, opts ...socrata.FetchOption) (*domain.DatasetRecord, error) {
		return nil, &domain.NotFoundError{Host: host, ID: id}
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/servers/data.sfgov.org/datasets/xxxx-xxxx/croissant", "")
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestMarkdown(t *testing.T) {
	is, ts, _ := testSetup(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/servers/data.sfgov.org/datasets/vw6y-z8j6/markdown", "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.HasPrefix(body, "# 311 Cases"))
}

func TestMetrics(t *testing.T) {
	is, ts, _ := testSetup(t)
	defer ts.Close()

	newTestRequest(is, ts, http.MethodGet, "/api/servers/data.sfgov.org/datasets/vw6y-z8j6/code/stata", "")

	resp, body := newTestRequest(is, ts, http.MethodGet, "/metrics", "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `crosswalk_documents_generated_total{format="stata",kind="code"}`))
}

func newTestRequest(is *is.I, ts *httptest.Server, method, path string, body string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	is.NoErr(err)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}

func testSetup(t *testing.T) (*is.I, *httptest.Server, *socrata.ClientMock) {
	is := is.New(t)

	client := &socrata.ClientMock{
		FetchDatasetMetadataFunc: func(ctx context.Context, host, id string, opts ...socrata.FetchOption) (*domain.DatasetRecord, error) {
			record := &domain.DatasetRecord{}
			err := json.Unmarshal([]byte(viewJSON), record)
			return record, err
		},
	}

	cw := application.New(client, servers.NewDefaultRegistry())
	a := NewAPI(context.Background(), chi.NewRouter(), cw)

	return is, httptest.NewServer(a.Router()), client
}

const viewJSON string = `{
	"id": "vw6y-z8j6",
	"name": "311 Cases",
	"assetType": "dataset",
	"description": "SF311 cases",
	"tags": ["311"],
	"columns": [
		{
			"id": 438233, "name": "Status", "fieldName": "status_description", "position": 3,
			"dataTypeName": "text", "renderTypeName": "text"
		}
	]
}`
