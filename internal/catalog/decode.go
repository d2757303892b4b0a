package catalog

import "fmt"

// syscolumns.coltype 低 8 位的类型码表
var typeNames = map[int]string{
	0:  "char",
	1:  "smallint",
	2:  "integer",
	3:  "float",
	4:  "smallfloat",
	5:  "decimal",
	6:  "serial",
	7:  "date",
	8:  "money",
	10: "datetime",
	11: "byte",
	12: "text",
	13: "varchar",
	14: "interval",
	15: "nchar",
	16: "nvarchar",
	17: "int8",
	18: "serial8",
	19: "set",
	20: "multiset",
	21: "list",
	22: "row",
	23: "collection",
	43: "lvarchar",
	45: "boolean",
	52: "bigint",
	53: "bigserial",
}

// 渲染时带长度的类型
var sizedTypes = map[string]struct{}{
	"char":     {},
	"varchar":  {},
	"nchar":    {},
	"nvarchar": {},
	"lvarchar": {},
}

// 自增类型的类型码：serial、serial8、bigserial
var serialCodes = map[int]struct{}{
	6:  {},
	18: {},
	53: {},
}

// DecodeColumnType 用 coltype mod 256 查类型码表，
// 查不到的码渲染成 type_<原始码>。变长类型追加 (<length>)。
func DecodeColumnType(code, length int) string {
	name, ok := typeNames[code%256]
	if !ok {
		return fmt.Sprintf("type_%d", code)
	}
	if _, sized := sizedTypes[name]; sized && length > 0 {
		return fmt.Sprintf("%s(%d)", name, length)
	}
	return name
}

// NotNull schema 导出层的规则：原始 coltype 的 256 位是非空标志。
// 目录查询已经把标志剥成单独一列的场合走 grammar.DecodeNullable，
// 两条规则各自独立，不要合并。
func NotNull(coltype int) bool {
	return coltype >= 256
}

// AutoIncrement 判断类型码是不是自增族
func AutoIncrement(code int) bool {
	_, ok := serialCodes[code%256]
	return ok
}

// 外键级联规则的封闭枚举
const (
	RuleCascade    = "CASCADE"
	RuleSetNull    = "SET NULL"
	RuleSetDefault = "SET DEFAULT"
	RuleRestrict   = "RESTRICT"
	RuleNoAction   = "NO ACTION"
)

// DecodeRule sysreferences 里的单字符规则码。
// 删除规则和更新规则走同一张映射，认不出的码一律按 RESTRICT。
func DecodeRule(code string) string {
	switch code {
	case "C":
		return RuleCascade
	case "A":
		return RuleNoAction
	case "N":
		return RuleSetNull
	default:
		return RuleRestrict
	}
}
