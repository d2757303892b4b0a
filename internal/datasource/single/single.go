package single

import (
	"context"
	"database/sql"

	"github.com/meoying/ifxbridge/internal/datasource"
)

var _ datasource.DataSource = &DB{}

// DB 包装单个 *sql.DB，是这个库默认的 DataSource 实现。
// 连接池、超时这些都交给 database/sql 和底层驱动。
type DB struct {
	db *sql.DB
}

func NewDB(db *sql.DB) *DB {
	return &DB{db: db}
}

// OpenDB 要求驱动已经由宿主应用注册到 database/sql。
func OpenDB(driverName, dsn string) (*DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	return NewDB(db), nil
}

func (d *DB) Query(ctx context.Context, query datasource.Query) (*sql.Rows, error) {
	return d.db.QueryContext(ctx, query.SQL)
}

func (d *DB) Exec(ctx context.Context, query datasource.Query) (sql.Result, error) {
	return d.db.ExecContext(ctx, query.SQL)
}

func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (datasource.Tx, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &singleTx{tx: tx}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

type singleTx struct {
	tx *sql.Tx
}

func (t *singleTx) Query(ctx context.Context, query datasource.Query) (*sql.Rows, error) {
	return t.tx.QueryContext(ctx, query.SQL)
}

func (t *singleTx) Exec(ctx context.Context, query datasource.Query) (sql.Result, error) {
	return t.tx.ExecContext(ctx, query.SQL)
}

func (t *singleTx) Commit() error {
	return t.tx.Commit()
}

func (t *singleTx) Rollback() error {
	return t.tx.Rollback()
}
