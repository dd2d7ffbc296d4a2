package servers

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

//go:embed servers.yaml
var defaultServers []byte

type Registry interface {
	Get(host string) domain.Server
	Known(host string) bool
	List() []domain.Server
}

type config struct {
	Servers []domain.Server `yaml:"servers"`
}

// NewRegistry reads server descriptions from input, a YAML document with a
// top level servers list.
func NewRegistry(input io.Reader) (Registry, error) {
	buf, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read server configuration: %w", err)
	}

	cfg := config{}
	if err = yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server configuration: %w", err)
	}

	r := &registry{servers: map[string]domain.Server{}}

	for _, s := range cfg.Servers {
		host := mapping.TrimHost(s.Host)
		if host == "" {
			return nil, fmt.Errorf("server %q has no host", s.Name)
		}

		s.Host = host
		if s.Name == "" {
			s.Name = host
		}

		r.servers[host] = s
	}

	return r, nil
}

// NewDefaultRegistry returns a registry of the well known Socrata hosts.
func NewDefaultRegistry() Registry {
	r, err := NewRegistry(bytes.NewReader(defaultServers))
	if err != nil {
		panic(fmt.Sprintf("embedded server configuration is broken: %s", err.Error()))
	}
	return r
}

type registry struct {
	servers map[string]domain.Server
}

// Get returns the configured server for host. Unknown hosts are described by
// their host name alone.
func (r *registry) Get(host string) domain.Server {
	h := mapping.TrimHost(host)

	if s, ok := r.servers[h]; ok {
		return s
	}

	return domain.Server{
		Host:      h,
		Name:      h,
		Publisher: []string{"https://" + h},
	}
}

func (r *registry) Known(host string) bool {
	_, ok := r.servers[mapping.TrimHost(host)]
	return ok
}

func (r *registry) List() []domain.Server {
	hosts := maps.Keys(r.servers)
	slices.Sort(hosts)

	result := make([]domain.Server, 0, len(hosts))
	for _, h := range hosts {
		result = append(result, r.servers[h])
	}

	return result
}
