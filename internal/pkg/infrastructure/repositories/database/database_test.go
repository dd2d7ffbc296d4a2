package database_test

import (
	"errors"
	"testing"

	db "github.com/diwise/opendata-crosswalk/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestDatabaseConnection(t *testing.T) {
	is := is.New(t)

	_, err := db.NewDatabaseConnection(db.NewSQLiteConnector(""), zerolog.Nop())
	is.NoErr(err)
}

func TestThatAMissingViewIsNotCached(t *testing.T) {
	is, store := testSetup(t)

	_, err := store.GetView("data.sfgov.org", "vw6y-z8j6")
	is.True(errors.Is(err, db.ErrNotCached))
}

func TestStoreAndGetView(t *testing.T) {
	is, store := testSetup(t)

	is.NoErr(store.StoreView("data.sfgov.org", "vw6y-z8j6", []byte(`{"id":"vw6y-z8j6"}`)))

	body, err := store.GetView("data.sfgov.org", "vw6y-z8j6")
	is.NoErr(err)
	is.Equal(string(body), `{"id":"vw6y-z8j6"}`)

	_, err = store.GetView("data.cityofchicago.org", "vw6y-z8j6")
	is.True(errors.Is(err, db.ErrNotCached))
}

func TestThatStoreViewReplacesExistingViews(t *testing.T) {
	is, store := testSetup(t)

	is.NoErr(store.StoreView("data.sfgov.org", "vw6y-z8j6", []byte(`{"name":"old"}`)))
	is.NoErr(store.StoreView("data.sfgov.org", "vw6y-z8j6", []byte(`{"name":"new"}`)))

	body, err := store.GetView("data.sfgov.org", "vw6y-z8j6")
	is.NoErr(err)
	is.Equal(string(body), `{"name":"new"}`)
}

func TestDeleteView(t *testing.T) {
	is, store := testSetup(t)

	is.NoErr(store.StoreView("data.sfgov.org", "vw6y-z8j6", []byte(`{}`)))
	is.NoErr(store.DeleteView("data.sfgov.org", "vw6y-z8j6"))

	_, err := store.GetView("data.sfgov.org", "vw6y-z8j6")
	is.True(errors.Is(err, db.ErrNotCached))

	is.NoErr(store.StoreView("data.sfgov.org", "vw6y-z8j6", []byte(`{}`)))
}

func testSetup(t *testing.T) (*is.I, db.Datastore) {
	is := is.New(t)

	store, err := db.NewDatabaseConnection(db.NewSQLiteConnector(""), zerolog.Nop())
	is.NoErr(err)

	return is, store
}
