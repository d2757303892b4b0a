package registry

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/meoying/ifxbridge/internal/datasource"
	"github.com/meoying/ifxbridge/internal/datasource/single"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Open(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	r := New()
	r.Register("informix", func(dsn string) (datasource.DataSource, error) {
		return single.NewDB(db), nil
	})

	ds, err := r.Open("informix", "DSN=ol_test")
	require.NoError(t, err)
	assert.NotNil(t, ds)

	_, err = r.Open("oracle", "whatever")
	assert.Error(t, err)
}
