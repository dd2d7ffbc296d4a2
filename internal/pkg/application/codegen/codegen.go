// Package codegen produces snippets that retrieve the rows of a dataset in
// a number of client environments.
package codegen

import (
	"embed"
	"fmt"
	"net/url"
	"path"
	"strings"
	"text/template"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	DefaultAppToken string = "YOURAPPTOKENHERE"
	DefaultLimit    int    = 5000
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

var aliases = map[string]string{
	"soda-stata": "stata",
}

type Options struct {
	AppToken string
	Limit    int
}

type snippetData struct {
	Host     string
	ID       string
	AppToken string
	Limit    int
}

// Environments returns the supported environment tokens in sorted order.
func Environments() []string {
	envs := maps.Keys(aliases)
	for _, t := range templates.Templates() {
		envs = append(envs, strings.TrimSuffix(t.Name(), path.Ext(t.Name())))
	}
	slices.Sort(envs)
	return envs
}

func Generate(environment, host, id string, opts ...Options) (string, error) {
	env := strings.ToLower(strings.TrimSpace(environment))
	if alias, ok := aliases[env]; ok {
		env = alias
	}

	tmpl := templates.Lookup(env + ".tmpl")
	if tmpl == nil {
		return "", &domain.UnsupportedFormatError{Kind: "code", Token: environment}
	}

	h, err := mapping.NormalizeHost(host)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(id) == "" {
		return "", domain.NewValidationError("id", "dataset identifier is empty")
	}

	data := snippetData{
		Host:     h,
		ID:       url.PathEscape(id),
		AppToken: DefaultAppToken,
		Limit:    DefaultLimit,
	}

	if len(opts) > 0 {
		if opts[0].AppToken != "" {
			data.AppToken = opts[0].AppToken
		}
		if opts[0].Limit > 0 {
			data.Limit = opts[0].Limit
		}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s snippet: %w", env, err)
	}

	return sb.String(), nil
}
