package catalog

import (
	"context"
	"strings"

	"github.com/meoying/ifxbridge/internal/datasource"
)

// Dump 按目录信息重建一张表的建表语句文本，迁移比对和排障用。
// 这条路径拿到的是原始 coltype，非空位走 NotNull 的 >=256 位判断，
// 和 Columns 里先剥标志位的做法是两条独立的解码规则。
func (r *Reader) Dump(ctx context.Context, table string) (string, error) {
	rows, err := r.exec.Query(ctx, datasource.Query{
		SQL: "SELECT c.colname, c.coltype, c.collength" +
			" FROM systables t, syscolumns c" +
			" WHERE c.tabid = t.tabid AND LOWER(t.tabname) = " + lowered(table) +
			" ORDER BY c.colno",
	})
	if err != nil {
		return "", err
	}
	defer func() { _ = rows.Close() }()
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(strings.ToLower(table))
	sb.WriteString(" (")
	first := true
	for rows.Next() {
		var name string
		var coltype, length int
		if err = rows.Scan(&name, &coltype, &length); err != nil {
			return "", err
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strings.TrimSpace(name))
		sb.WriteByte(' ')
		sb.WriteString(strings.ToUpper(DecodeColumnType(coltype, length)))
		if NotNull(coltype) {
			sb.WriteString(" NOT NULL")
		}
	}
	if err = rows.Err(); err != nil {
		return "", err
	}
	sb.WriteByte(')')
	return sb.String(), nil
}
