package domain

import "time"

// Server describes a Socrata host together with the catalog level metadata
// that the views API does not expose.
type Server struct {
	Host      string   `yaml:"host" json:"host"`
	Name      string   `yaml:"name" json:"name"`
	Publisher []string `yaml:"publisher" json:"publisher,omitempty"`
	Spatial   []string `yaml:"spatial" json:"spatial,omitempty"`
	Languages []string `yaml:"languages" json:"languages,omitempty"`
}

func (s Server) HostURL() string {
	return "https://" + s.Host
}

// CatalogEntry is a single hit from the discovery API.
type CatalogEntry struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"type"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Permalink   string     `json:"permalink,omitempty"`
	Link        string     `json:"link,omitempty"`
}
