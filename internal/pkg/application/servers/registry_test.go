package servers

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
)

func TestLoad(t *testing.T) {
	is := is.New(t)

	config := bytes.NewBufferString(configFile)
	reg, err := NewRegistry(config)
	is.NoErr(err)

	s := reg.Get("https://Data.Example.org/")
	is.Equal(s.Name, "Example Portal")
	is.Equal(s.Languages, []string{"sv"})
	is.True(reg.Known("data.example.org"))
}

func TestThatUnknownHostsGetADefaultDescription(t *testing.T) {
	is := is.New(t)

	reg, err := NewRegistry(bytes.NewBufferString(configFile))
	is.NoErr(err)

	s := reg.Get("data.unknown.org")
	is.Equal(s.Host, "data.unknown.org")
	is.Equal(s.Name, "data.unknown.org")
	is.Equal(s.Publisher, []string{"https://data.unknown.org"})
	is.True(!reg.Known("data.unknown.org"))
}

func TestThatHostsAreMatchedRegardlessOfSchemeAndCase(t *testing.T) {
	is := is.New(t)

	r := NewDefaultRegistry()

	is.True(r.Known("HTTPS://Data.SFGov.org/"))
	is.Equal(r.Get("https://DATA.sfgov.org").Host, "data.sfgov.org")
}

func TestThatServersWithoutHostAreRejected(t *testing.T) {
	is := is.New(t)

	_, err := NewRegistry(bytes.NewBufferString("servers:\n  - name: nowhere\n"))
	is.True(err != nil)
}

func TestDefaultRegistry(t *testing.T) {
	is := is.New(t)

	reg := NewDefaultRegistry()

	sf := reg.Get("data.sfgov.org")
	is.Equal(sf.Name, "San Francisco Open Data Portal")
	is.Equal(sf.Publisher, []string{"City of San Francisco"})
	is.Equal(sf.Spatial, []string{"San Francisco, California, USA", "http://sws.geonames.org/5391959"})

	co := reg.Get("datos.gov.co")
	is.Equal(co.Languages, []string{"es"})

	all := reg.List()
	is.Equal(len(all), 10)
	is.Equal(all[0].Host, "data.calgary.ca")
}

const configFile string = `
servers:
  - host: data.example.org
    name: Example Portal
    publisher: ["Example Municipality"]
    languages: ["sv"]
  - host: data.other.org
`
