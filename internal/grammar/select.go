package grammar

import (
	"strconv"

	"github.com/ecodeclub/ekit/slice"
)

// SelectStmt 一条抽象的查询形状。
// Where、OrderBy 是上层已经字面化好的片段，这里原样拼接。
// Lock 允许 bool（FOR UPDATE / FOR READ ONLY）或 string（原样透传）。
type SelectStmt struct {
	Table    string
	Columns  []string
	Distinct bool
	Where    string
	GroupBy  []string
	OrderBy  string
	Limit    int
	Offset   int
	Lock     any
}

func CompileSelect(stmt SelectStmt) string {
	b := newBuilder()
	b.writeString(compileColumns(stmt))
	b.writeString(" FROM ")
	b.identifier(stmt.Table)
	if stmt.Where != "" {
		b.writeString(" WHERE ")
		b.writeString(stmt.Where)
	}
	if len(stmt.GroupBy) > 0 {
		b.writeString(" GROUP BY ")
		b.writeString(joinIdents(stmt.GroupBy))
	}
	if stmt.OrderBy != "" {
		b.writeString(" ORDER BY ")
		b.writeString(stmt.OrderBy)
	}
	b.writeString(compileLock(stmt.Lock))
	return b.take()
}

// CompileExists 存在性检查改写成只查常量 1，其余子句照常走完整个编译管线
func CompileExists(stmt SelectStmt) string {
	stmt.Columns = []string{"1"}
	return CompileSelect(stmt)
}

// CompileTruncate 不支持 CASCADE / RESTART IDENTITY 这类选项
func CompileTruncate(table string) string {
	return "TRUNCATE TABLE " + ident(table)
}

// CompileInsert 生成单行插入模板，占位符留给 binder 填
func CompileInsert(table string, cols []string) string {
	b := newBuilder()
	b.writeString("INSERT INTO ")
	b.identifier(table)
	b.writeString(" (")
	b.writeString(joinIdents(cols))
	b.writeString(") VALUES (")
	for i := range cols {
		if i > 0 {
			b.comma()
		}
		b.writeByte('?')
	}
	b.writeByte(')')
	return b.take()
}

// CompileLimit Informix 没有 LIMIT 子句，这部分行为整体
// 搬进了列子句（见 compileColumns），这里恒为空。
func CompileLimit(limit int) string {
	return ""
}

// CompileOffset 同 CompileLimit，恒为空
func CompileOffset(offset int) string {
	return ""
}

// compileColumns 把 limit/offset 改写成紧跟 SELECT（和 DISTINCT）之后的
// SKIP / FIRST 关键字，顺序固定 SKIP 在 FIRST 前面。
// 非正数直接省掉对应关键字。
func compileColumns(stmt SelectStmt) string {
	b := newBuilder()
	b.writeString("SELECT ")
	if stmt.Distinct {
		b.writeString("DISTINCT ")
	}
	if stmt.Offset > 0 {
		b.writeString("SKIP ")
		b.writeString(strconv.Itoa(stmt.Offset))
		b.writeByte(' ')
	}
	if stmt.Limit > 0 {
		b.writeString("FIRST ")
		b.writeString(strconv.Itoa(stmt.Limit))
		b.writeByte(' ')
	}
	cols := stmt.Columns
	if len(cols) == 0 {
		cols = []string{"*"}
	}
	b.writeString(joinIdents(cols))
	return b.take()
}

func compileLock(lock any) string {
	switch v := lock.(type) {
	case bool:
		if v {
			return " FOR UPDATE"
		}
		return " FOR READ ONLY"
	case string:
		if v == "" {
			return ""
		}
		return " " + v
	default:
		return ""
	}
}

func joinIdents(cols []string) string {
	b := newBuilder()
	for i, col := range slice.Map(cols, func(idx int, src string) string {
		return ident(src)
	}) {
		if i > 0 {
			b.comma()
		}
		b.writeString(col)
	}
	return b.take()
}
