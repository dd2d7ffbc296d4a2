package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestEnvironments(t *testing.T) {
	is := is.New(t)

	is.Equal(Environments(), []string{
		"jquery", "powershell", "python-pandas", "r-socrata", "sas",
		"soda-dotnet", "soda-ruby", "soda-stata", "stata",
	})
}

func TestThatEverySnippetMentionsTheDataset(t *testing.T) {
	is := is.New(t)

	for _, env := range Environments() {
		code, err := Generate(env, "data.sfgov.org", "vw6y-z8j6")
		is.NoErr(err)
		is.True(strings.Contains(code, "data.sfgov.org"))
		is.True(strings.Contains(code, "vw6y-z8j6"))
	}
}

func TestPythonPandasSnippet(t *testing.T) {
	is := is.New(t)

	code, err := Generate("python-pandas", "https://data.sfgov.org/", "vw6y-z8j6", Options{Limit: 100})
	is.NoErr(err)

	is.True(strings.Contains(code, `client = Socrata("data.sfgov.org", None)`))
	is.True(strings.Contains(code, `results = client.get("vw6y-z8j6", limit=100)`))
}

func TestThatAppTokenCanBeSet(t *testing.T) {
	is := is.New(t)

	code, err := Generate("jquery", "data.sfgov.org", "vw6y-z8j6", Options{AppToken: "secret"})
	is.NoErr(err)
	is.True(strings.Contains(code, `"$$app_token" : "secret"`))
	is.True(strings.Contains(code, `"$limit" : 5000`))
}

func TestThatStataAliasIsSupported(t *testing.T) {
	is := is.New(t)

	a, err := Generate("soda-stata", "data.sfgov.org", "vw6y-z8j6")
	is.NoErr(err)
	b, err := Generate("Stata", "data.sfgov.org", "vw6y-z8j6")
	is.NoErr(err)

	is.Equal(a, b)
}

func TestThatUnknownEnvironmentsAreRejected(t *testing.T) {
	is := is.New(t)

	_, err := Generate("cobol", "data.sfgov.org", "vw6y-z8j6")

	var ufe *domain.UnsupportedFormatError
	is.True(errors.As(err, &ufe))
	is.Equal(ufe.Token, "cobol")
}

func TestThatAnIdentifierIsRequired(t *testing.T) {
	is := is.New(t)

	_, err := Generate("sas", "data.sfgov.org", " ")

	var ve *domain.ValidationError
	is.True(errors.As(err, &ve))
}
