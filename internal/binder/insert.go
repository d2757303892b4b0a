package binder

import (
	"context"
	"database/sql"
	"strings"

	"github.com/meoying/ifxbridge/internal/datasource"
	"github.com/meoying/ifxbridge/internal/datasource/transaction"
	"github.com/meoying/ifxbridge/internal/errs"
	"github.com/meoying/ifxbridge/internal/grammar"
	"go.uber.org/multierr"
)

// InsertBatch 摊平的参数按占位符个数切好后的多行批
type InsertBatch struct {
	Table   string
	Columns []string
	Rows    [][]any
}

// PrepareInsert 判断一次 insert 调用是不是把多行参数摊平传进来了。
// 返回值二选一：batch 为 nil 时 sql 是直接可执行的单条语句。
//
// 参数个数等于占位符个数（或为零）按单行处理。
// 模板解析失败、或者参数个数除不尽占位符个数时，退化成直接绑定——
// 这样生成的语句大概率会被数据库拒绝，属于约定好的降级行为，不做静默修正。
func PrepareInsert(sqlStr string, args []any) (string, *InsertBatch) {
	markers := CountMarkers(sqlStr)
	if len(args) == 0 || markers == 0 || len(args) == markers {
		return Bind(sqlStr, args), nil
	}
	table, cols, err := parseInsert(sqlStr)
	if err != nil {
		return Bind(sqlStr, args), nil
	}
	rows, err := splitRows(args, markers)
	if err != nil {
		return Bind(sqlStr, args), nil
	}
	return "", &InsertBatch{Table: table, Columns: cols, Rows: rows}
}

// ExecInsert 单行直接执行；多行批在一个事务里逐行执行，
// 任何一行失败整批回滚，不自动重试，由调用方决定是否整批重来。
func ExecInsert(ctx context.Context, ds datasource.DataSource, sqlStr string, args []any) (sql.Result, error) {
	single, batch := PrepareInsert(sqlStr, args)
	if batch == nil {
		res, err := ds.Exec(ctx, datasource.Query{SQL: single})
		return res, errs.ClassifyExec(err)
	}
	return execBatch(ctx, ds, batch)
}

func execBatch(ctx context.Context, ds datasource.DataSource, batch *InsertBatch) (sql.Result, error) {
	tx, err := ds.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	txDS := transaction.NewTransactionDataSource(tx)
	rowTemplate := grammar.CompileInsert(batch.Table, batch.Columns)
	var last sql.Result
	for _, row := range batch.Rows {
		res, er := txDS.Exec(ctx, datasource.Query{SQL: Bind(rowTemplate, row)})
		if er != nil {
			er = errs.ClassifyExec(er)
			if rbErr := tx.Rollback(); rbErr != nil {
				return nil, multierr.Append(er, rbErr)
			}
			return nil, er
		}
		last = res
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return last, nil
}

// parseInsert 从单行 insert 模板里恢复表名和列。
// 只认 INSERT INTO t (a, b) VALUES (...) 这一种形状，
// 解析用的是带引号状态的顺序扫描，认不出就报 ErrMalformedTemplate。
func parseInsert(sqlStr string) (string, []string, error) {
	s := strings.TrimSpace(sqlStr)
	rest, ok := cutKeyword(s, "INSERT")
	if !ok {
		return "", nil, errs.ErrMalformedTemplate
	}
	rest, ok = cutKeyword(rest, "INTO")
	if !ok {
		return "", nil, errs.ErrMalformedTemplate
	}
	table, rest := cutToken(rest)
	if table == "" {
		return "", nil, errs.ErrMalformedTemplate
	}
	rest = strings.TrimSpace(rest)
	if len(rest) == 0 || rest[0] != '(' {
		return "", nil, errs.ErrMalformedTemplate
	}
	closing := strings.IndexByte(rest, ')')
	if closing < 0 {
		return "", nil, errs.ErrMalformedTemplate
	}
	cols := splitColumns(rest[1:closing])
	if len(cols) == 0 {
		return "", nil, errs.ErrMalformedTemplate
	}
	rest = rest[closing+1:]
	if _, ok = cutKeyword(rest, "VALUES"); !ok {
		return "", nil, errs.ErrMalformedTemplate
	}
	return table, cols, nil
}

// splitRows 把摊平的参数按占位符个数切成行，除不尽就报 ErrUnevenBatch
func splitRows(args []any, markers int) ([][]any, error) {
	if len(args)%markers != 0 {
		return nil, errs.ErrUnevenBatch
	}
	rowCnt := len(args) / markers
	rows := make([][]any, 0, rowCnt)
	for i := 0; i < rowCnt; i++ {
		rows = append(rows, args[i*markers:(i+1)*markers])
	}
	return rows, nil
}

// cutKeyword 大小写不敏感地吃掉开头的关键字
func cutKeyword(s, kw string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(kw) || !strings.EqualFold(s[:len(kw)], kw) {
		return s, false
	}
	rest := s[len(kw):]
	if rest != "" && !isSpace(rest[0]) && rest[0] != '(' {
		return s, false
	}
	return rest, true
}

// cutToken 取下一个空白或左括号之前的词
func cutToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) || s[i] == '(' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func splitColumns(s string) []string {
	parts := strings.Split(s, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil
		}
		cols = append(cols, p)
	}
	return cols
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
