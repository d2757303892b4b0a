package single

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/meoying/ifxbridge/internal/datasource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_QueryExec(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	ds := NewDB(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT tabname FROM systables")).
		WillReturnRows(sqlmock.NewRows([]string{"tabname"}).AddRow("users"))
	rows, err := ds.Query(context.Background(), datasource.Query{SQL: "SELECT tabname FROM systables"})
	require.NoError(t, err)
	require.True(t, rows.Next())
	var name string
	require.NoError(t, rows.Scan(&name))
	assert.Equal(t, "users", name)
	require.NoError(t, rows.Close())

	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	_, err = ds.Exec(context.Background(), datasource.Query{SQL: "DROP TABLE users"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Transaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	ds := NewDB(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO t (a) VALUES (1)")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := ds.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	_, err = tx.Exec(context.Background(), datasource.Query{SQL: "INSERT INTO t (a) VALUES (1)"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
