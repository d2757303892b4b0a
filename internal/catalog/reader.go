package catalog

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/meoying/ifxbridge/internal/datasource"
	"github.com/meoying/ifxbridge/internal/errs"
	"github.com/meoying/ifxbridge/internal/grammar"
	"github.com/meoying/ifxbridge/internal/literal"
	"golang.org/x/sync/errgroup"
)

// 复合索引参与列的槽位数，sysindexes 的 part1..part8
const indexParts = 8

// 删全库表的重试趟数预算
const dropPasses = 5

// Reader 每次调用都现查系统目录，不做缓存。
// 表名匹配在目录侧先 LOWER 再比较：目录里存的是大写或混合大小写，
// 调用方传什么大小写都行。
type Reader struct {
	exec datasource.Executor
}

func NewReader(exec datasource.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) Tables(ctx context.Context) ([]string, error) {
	return r.tabNames(ctx, "T")
}

func (r *Reader) Views(ctx context.Context) ([]string, error) {
	return r.tabNames(ctx, "V")
}

// tabid >= 100 过滤掉系统自带的目录表
func (r *Reader) tabNames(ctx context.Context, tabType string) ([]string, error) {
	rows, err := r.exec.Query(ctx, datasource.Query{
		SQL: "SELECT tabname FROM systables WHERE tabtype = " + literal.Quote(tabType) +
			" AND tabid >= 100 ORDER BY tabname",
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, strings.TrimSpace(name))
	}
	return names, rows.Err()
}

func (r *Reader) Columns(ctx context.Context, table string) ([]Column, error) {
	rows, err := r.exec.Query(ctx, datasource.Query{
		SQL: "SELECT c.colname, c.coltype, c.collength" +
			" FROM systables t, syscolumns c" +
			" WHERE c.tabid = t.tabid AND LOWER(t.tabname) = " + lowered(table) +
			" ORDER BY c.colno",
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var cols []Column
	for rows.Next() {
		var name string
		var coltype, length int
		if err = rows.Scan(&name, &coltype, &length); err != nil {
			return nil, err
		}
		// 非空标志剥成单独的标志位再判断，0 为可空
		flag := coltype / 256
		cols = append(cols, Column{
			Name:          strings.TrimSpace(name),
			TypeCode:      coltype,
			TypeName:      DecodeColumnType(coltype, length),
			Length:        length,
			Nullable:      grammar.DecodeNullable(flag),
			AutoIncrement: AutoIncrement(coltype),
		})
	}
	return cols, rows.Err()
}

func (r *Reader) Indexes(ctx context.Context, table string) ([]Index, error) {
	var sb strings.Builder
	sb.WriteString("SELECT i.idxname, i.idxtype, k.constrtype")
	for n := 1; n <= indexParts; n++ {
		sb.WriteString(", p")
		writeInt(&sb, n)
		sb.WriteString(".colname")
	}
	sb.WriteString(" FROM systables t")
	sb.WriteString(" JOIN sysindexes i ON i.tabid = t.tabid")
	sb.WriteString(" LEFT JOIN sysconstraints k ON k.tabid = i.tabid AND k.idxname = i.idxname")
	for n := 1; n <= indexParts; n++ {
		sb.WriteString(" LEFT JOIN syscolumns p")
		writeInt(&sb, n)
		sb.WriteString(" ON p")
		writeInt(&sb, n)
		sb.WriteString(".tabid = i.tabid AND p")
		writeInt(&sb, n)
		sb.WriteString(".colno = i.part")
		writeInt(&sb, n)
	}
	sb.WriteString(" WHERE LOWER(t.tabname) = ")
	sb.WriteString(lowered(table))

	rows, err := r.exec.Query(ctx, datasource.Query{SQL: sb.String()})
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var idxes []Index
	for rows.Next() {
		var (
			name, idxType string
			constrType    sql.NullString
			parts         [indexParts]sql.NullString
		)
		dest := []any{&name, &idxType, &constrType}
		for n := range parts {
			dest = append(dest, &parts[n])
		}
		if err = rows.Scan(dest...); err != nil {
			return nil, err
		}
		idxes = append(idxes, Index{
			Name:    strings.TrimSpace(name),
			Columns: partColumns(parts[:]),
			Unique:  strings.TrimSpace(idxType) == "U",
			Primary: strings.TrimSpace(constrType.String) == "P",
		})
	}
	return idxes, rows.Err()
}

func (r *Reader) ForeignKeys(ctx context.Context, table string) ([]ForeignKey, error) {
	var sb strings.Builder
	sb.WriteString("SELECT c.constrname, rt.tabname, ref.delrule, ref.updrule")
	for n := 1; n <= indexParts; n++ {
		sb.WriteString(", l")
		writeInt(&sb, n)
		sb.WriteString(".colname")
	}
	for n := 1; n <= indexParts; n++ {
		sb.WriteString(", f")
		writeInt(&sb, n)
		sb.WriteString(".colname")
	}
	sb.WriteString(" FROM systables t")
	sb.WriteString(" JOIN sysconstraints c ON c.tabid = t.tabid AND c.constrtype = 'R'")
	sb.WriteString(" JOIN sysreferences ref ON ref.constrid = c.constrid")
	sb.WriteString(" JOIN systables rt ON rt.tabid = ref.ptabid")
	sb.WriteString(" JOIN sysindexes i ON i.tabid = c.tabid AND i.idxname = c.idxname")
	sb.WriteString(" JOIN sysconstraints pc ON pc.constrid = ref.primary")
	sb.WriteString(" JOIN sysindexes pi ON pi.tabid = pc.tabid AND pi.idxname = pc.idxname")
	for n := 1; n <= indexParts; n++ {
		sb.WriteString(" LEFT JOIN syscolumns l")
		writeInt(&sb, n)
		sb.WriteString(" ON l")
		writeInt(&sb, n)
		sb.WriteString(".tabid = i.tabid AND l")
		writeInt(&sb, n)
		sb.WriteString(".colno = i.part")
		writeInt(&sb, n)
	}
	for n := 1; n <= indexParts; n++ {
		sb.WriteString(" LEFT JOIN syscolumns f")
		writeInt(&sb, n)
		sb.WriteString(" ON f")
		writeInt(&sb, n)
		sb.WriteString(".tabid = pi.tabid AND f")
		writeInt(&sb, n)
		sb.WriteString(".colno = pi.part")
		writeInt(&sb, n)
	}
	sb.WriteString(" WHERE LOWER(t.tabname) = ")
	sb.WriteString(lowered(table))

	rows, err := r.exec.Query(ctx, datasource.Query{SQL: sb.String()})
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var fks []ForeignKey
	for rows.Next() {
		var (
			name, refTable   string
			delRule, updRule string
			local, foreign   [indexParts]sql.NullString
		)
		dest := []any{&name, &refTable, &delRule, &updRule}
		for n := range local {
			dest = append(dest, &local[n])
		}
		for n := range foreign {
			dest = append(dest, &foreign[n])
		}
		if err = rows.Scan(dest...); err != nil {
			return nil, err
		}
		fks = append(fks, ForeignKey{
			Name:       strings.TrimSpace(name),
			Columns:    partColumns(local[:]),
			RefTable:   strings.TrimSpace(refTable),
			RefColumns: partColumns(foreign[:]),
			OnDelete:   DecodeRule(strings.TrimSpace(delRule)),
			OnUpdate:   DecodeRule(strings.TrimSpace(updRule)),
		})
	}
	return fks, rows.Err()
}

// DropAllTables 不解外键依赖图，靠反复重试收敛：
// 每趟对剩余的表挨个下 DROP TABLE，失败的攒到下一趟，
// 最多 dropPasses 趟。趟数用完还有剩就报 ErrDropExhausted，
// 把剩余表名全部列出来。
func (r *Reader) DropAllTables(ctx context.Context) error {
	remaining, err := r.Tables(ctx)
	if err != nil {
		return err
	}
	var passErr *multierror.Error
	for pass := 0; pass < dropPasses && len(remaining) > 0; pass++ {
		passErr = nil
		var failed []string
		for _, tab := range remaining {
			if _, er := r.exec.Exec(ctx, datasource.Query{SQL: grammar.CompileDrop(tab)}); er != nil {
				failed = append(failed, tab)
				passErr = multierror.Append(passErr, er)
			}
		}
		remaining = failed
	}
	if len(remaining) > 0 {
		return multierror.Append(errs.NewErrDropExhausted(remaining), passErr.Errors...)
	}
	return nil
}

// Snapshot 汇总全库的表结构。
// 目录查询都是只读幂等的，按表并发发出去没问题。
func (r *Reader) Snapshot(ctx context.Context) ([]TableSchema, error) {
	tables, err := r.Tables(ctx)
	if err != nil {
		return nil, err
	}
	schemas := make([]TableSchema, len(tables))
	var eg errgroup.Group
	for i, tab := range tables {
		i, tab := i, tab
		eg.Go(func() error {
			cols, er := r.Columns(ctx, tab)
			if er != nil {
				return er
			}
			idxes, er := r.Indexes(ctx, tab)
			if er != nil {
				return er
			}
			fks, er := r.ForeignKeys(ctx, tab)
			if er != nil {
				return er
			}
			schemas[i] = TableSchema{Name: tab, Columns: cols, Indexes: idxes, ForeignKeys: fks}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	return schemas, nil
}

// partColumns 槽位为 0 或缺省时 join 不到列名，对应 NULL，跳过。
// 只有有值的槽位按槽位顺序贡献列名。
func partColumns(parts []sql.NullString) []string {
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		if !p.Valid || strings.TrimSpace(p.String) == "" {
			continue
		}
		cols = append(cols, strings.TrimSpace(p.String))
	}
	return cols
}

func lowered(table string) string {
	return literal.Quote(strings.ToLower(table))
}

func writeInt(sb *strings.Builder, n int) {
	sb.WriteByte(byte('0' + n))
}
