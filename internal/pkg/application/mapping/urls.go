package mapping

import (
	"net/url"
	"strings"

	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
)

// Pattern is a URL template with {host} and {id} placeholders.
type Pattern string

const (
	LandingPage  Pattern = "https://{host}/d/{id}"
	CSVDownload  Pattern = "https://{host}/resource/{id}.csv"
	APIEndpoint  Pattern = "https://{host}/resource/{id}.json"
	APIFoundry   Pattern = "https://dev.socrata.com/foundry/{host}/{id}"
	ViewMetadata Pattern = "https://{host}/api/views/{id}.json"
	ViewPage     Pattern = "https://{host}/api/views/{id}"
)

// DeriveURL expands pattern for the given host and dataset identifier. The
// identifier is path escaped so reserved characters can not alter the path.
func DeriveURL(host string, pattern Pattern, id string) (string, error) {
	h, err := NormalizeHost(host)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(id) == "" {
		return "", domain.NewValidationError("id", "dataset identifier is empty")
	}

	return Expand(h, pattern, id), nil
}

// Expand fills in pattern without validating its arguments.
func Expand(host string, pattern Pattern, id string) string {
	return strings.NewReplacer(
		"{host}", host,
		"{id}", url.PathEscape(id),
	).Replace(string(pattern))
}

// NormalizeHost strips an optional scheme and trailing slashes from host.
func NormalizeHost(host string) (string, error) {
	h := TrimHost(host)

	if h == "" {
		return "", domain.NewValidationError("host", "host is empty")
	}

	if strings.ContainsAny(h, "/?# ") {
		return "", domain.NewValidationError("host", "host must not contain a path, query or whitespace")
	}

	return h, nil
}

// TrimHost lowercases host and strips an optional scheme and trailing slashes.
func TrimHost(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	h = strings.TrimPrefix(h, "https://")
	h = strings.TrimPrefix(h, "http://")
	return strings.TrimRight(h, "/")
}
