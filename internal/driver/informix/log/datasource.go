package log

import (
	"context"
	"database/sql"

	"github.com/meoying/ifxbridge/internal/datasource"
)

var _ datasource.DataSource = &dsWrapper{}

type dsWrapper struct {
	ds     datasource.DataSource
	logger logger
}

func (d *dsWrapper) Query(ctx context.Context, query datasource.Query) (*sql.Rows, error) {
	rows, err := d.ds.Query(ctx, query)
	if err != nil {
		d.logger.Error("查询语句执行失败", "语句", query.SQL, "错误", err)
		return nil, err
	}
	d.logger.Debug("查询语句执行成功", "语句", query.SQL)
	return rows, nil
}

func (d *dsWrapper) Exec(ctx context.Context, query datasource.Query) (sql.Result, error) {
	res, err := d.ds.Exec(ctx, query)
	if err != nil {
		d.logger.Error("执行语句失败", "语句", query.SQL, "错误", err)
		return nil, err
	}
	d.logger.Debug("执行语句成功", "语句", query.SQL)
	return res, nil
}

func (d *dsWrapper) BeginTx(ctx context.Context, opts *sql.TxOptions) (datasource.Tx, error) {
	tx, err := d.ds.BeginTx(ctx, opts)
	if err != nil {
		d.logger.Error("开启事务失败", "错误", err)
		return nil, err
	}
	d.logger.Debug("开启事务成功")
	return &txWrapper{tx: tx, logger: d.logger}, nil
}

func (d *dsWrapper) Close() error {
	err := d.ds.Close()
	if err != nil {
		d.logger.Error("关闭连接失败", "错误", err)
		return err
	}
	return nil
}
