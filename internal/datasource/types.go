package datasource

import (
	"context"
	"database/sql"

	"github.com/meoying/ifxbridge/internal/query"
)

//go:generate mockgen -source=./types.go -destination=mocks/datasource.mock.go -package=mocks

// Executor 对应连接层提供的两个原语：
// Query 执行返回结果集的字面 SQL，Exec 执行不返回结果集的字面 SQL。
type Executor interface {
	Query(ctx context.Context, query Query) (*sql.Rows, error)
	Exec(ctx context.Context, query Query) (sql.Result, error)
}

type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error)
}

type Tx interface {
	Executor
	Commit() error
	Rollback() error
}

// DataSource 注意这里没有 Prepare。
// Informix 旧驱动的预编译不可用，所有语句都走字面化提交。
type DataSource interface {
	TxBeginner
	Executor
	Close() error
}

type Query = query.Query
