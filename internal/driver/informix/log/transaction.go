package log

import (
	"context"
	"database/sql"

	"github.com/meoying/ifxbridge/internal/datasource"
)

var _ datasource.Tx = &txWrapper{}

type txWrapper struct {
	tx     datasource.Tx
	logger logger
}

func (t *txWrapper) Query(ctx context.Context, query datasource.Query) (*sql.Rows, error) {
	rows, err := t.tx.Query(ctx, query)
	if err != nil {
		t.logger.Error("事务内查询失败", "语句", query.SQL, "错误", err)
		return nil, err
	}
	t.logger.Debug("事务内查询成功", "语句", query.SQL)
	return rows, nil
}

func (t *txWrapper) Exec(ctx context.Context, query datasource.Query) (sql.Result, error) {
	res, err := t.tx.Exec(ctx, query)
	if err != nil {
		t.logger.Error("事务内执行失败", "语句", query.SQL, "错误", err)
		return nil, err
	}
	t.logger.Debug("事务内执行成功", "语句", query.SQL)
	return res, nil
}

func (t *txWrapper) Commit() error {
	err := t.tx.Commit()
	if err != nil {
		t.logger.Error("提交事务失败", "错误", err)
		return err
	}
	t.logger.Info("事务提交成功")
	return nil
}

func (t *txWrapper) Rollback() error {
	err := t.tx.Rollback()
	if err != nil {
		t.logger.Error("回滚事务失败", "错误", err)
		return err
	}
	t.logger.Info("事务回滚成功")
	return nil
}
