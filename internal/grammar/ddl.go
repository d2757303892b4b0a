package grammar

import (
	"fmt"
	"strings"

	"github.com/meoying/ifxbridge/internal/literal"
)

type ColumnType string

const (
	TypeString       ColumnType = "string"
	TypeText         ColumnType = "text"
	TypeMediumText   ColumnType = "mediumText"
	TypeLongText     ColumnType = "longText"
	TypeInteger      ColumnType = "integer"
	TypeBigInteger   ColumnType = "bigInteger"
	TypeSmallInteger ColumnType = "smallInteger"
	TypeBoolean      ColumnType = "boolean"
	TypeDecimal      ColumnType = "decimal"
	TypeFloat        ColumnType = "float"
	TypeDouble       ColumnType = "double"
	TypeDate         ColumnType = "date"
	TypeDateTime     ColumnType = "dateTime"
	TypeTimestamp    ColumnType = "timestamp"
	TypeTime         ColumnType = "time"
	TypeEnum         ColumnType = "enum"
	TypeJSON         ColumnType = "json"
	TypeJSONB        ColumnType = "jsonb"
	TypeBinary       ColumnType = "binary"
	TypeUUID         ColumnType = "uuid"
)

// LVARCHAR 的上限，超长一律钳到这个值
const maxLvarchar = 32739

type ColumnDef struct {
	Name          string
	Type          ColumnType
	Length        int
	Total         int
	Places        int
	AutoIncrement bool
	Nullable      bool
	Unique        bool
	Default       any
}

type ForeignKeyDef struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   string
}

// CompileCreate 建表语句里一律不内联主键和外键，
// 调用方随后用 CompileAddPrimary / CompileAddForeign 单独下发。
// 内联会跟后续的加约束命令撞车，报重复主键。
func CompileCreate(table string, cols []ColumnDef) string {
	b := newBuilder()
	b.writeString("CREATE TABLE ")
	b.identifier(table)
	b.writeString(" (")
	for i, col := range cols {
		if i > 0 {
			b.comma()
		}
		b.writeString(columnSQL(col))
	}
	b.writeByte(')')
	return b.take()
}

func CompileAddColumn(table string, col ColumnDef) string {
	return "ALTER TABLE " + ident(table) + " ADD " + columnSQL(col)
}

func CompileDropColumn(table, column string) string {
	return "ALTER TABLE " + ident(table) + " DROP " + ident(column)
}

func CompileRenameColumn(table, from, to string) string {
	return "RENAME COLUMN " + ident(table) + "." + ident(from) + " TO " + ident(to)
}

func CompileRenameTable(from, to string) string {
	return "RENAME TABLE " + ident(from) + " TO " + ident(to)
}

func CompileAddPrimary(table, name string, cols []string) string {
	return "ALTER TABLE " + ident(table) +
		" ADD CONSTRAINT PRIMARY KEY (" + joinIdents(cols) + ") CONSTRAINT " + ident(name)
}

func CompileAddUnique(table, name string, cols []string) string {
	return "ALTER TABLE " + ident(table) +
		" ADD CONSTRAINT UNIQUE (" + joinIdents(cols) + ") CONSTRAINT " + ident(name)
}

func CompileAddIndex(table, name string, cols []string) string {
	return "CREATE INDEX " + ident(name) + " ON " + ident(table) + " (" + joinIdents(cols) + ")"
}

func CompileDropIndex(name string) string {
	return "DROP INDEX " + ident(name)
}

// CompileAddForeign Informix 的级联只有 ON DELETE CASCADE 一种，
// 其他规则不写出来，走数据库默认
func CompileAddForeign(table string, fk ForeignKeyDef) string {
	b := newBuilder()
	b.writeString("ALTER TABLE ")
	b.identifier(table)
	b.writeString(" ADD CONSTRAINT FOREIGN KEY (")
	b.writeString(joinIdents(fk.Columns))
	b.writeString(") REFERENCES ")
	b.identifier(fk.RefTable)
	b.writeString(" (")
	b.writeString(joinIdents(fk.RefColumns))
	b.writeByte(')')
	if strings.EqualFold(fk.OnDelete, "CASCADE") {
		b.writeString(" ON DELETE CASCADE")
	}
	b.writeString(" CONSTRAINT ")
	b.identifier(fk.Name)
	return b.take()
}

func CompileDropForeign(table, name string) string {
	return "ALTER TABLE " + ident(table) + " DROP CONSTRAINT " + ident(name)
}

// CompileDrop Informix 没有 DROP TABLE IF EXISTS，
// 表在不在要调用方先查目录确认，这里不做存在性保护。
func CompileDrop(table string) string {
	return "DROP TABLE " + ident(table)
}

// DecodeNullable 目录查询已经把非空标志剥成单独一列时用这条规则：
// 0 表示可空。schema 导出层拿到的是原始 coltype，
// 走的是 catalog.NotNull 的 >=256 判断，两条规则各自独立，不要合并。
func DecodeNullable(flag int) bool {
	return flag == 0
}

func columnSQL(def ColumnDef) string {
	b := newBuilder()
	b.identifier(def.Name)
	b.writeByte(' ')
	b.writeString(typeSQL(def))
	if def.Default != nil {
		b.writeString(" DEFAULT ")
		b.writeString(literal.Of(def.Default).SQL())
	}
	// SERIAL / SERIAL8 自带非空
	if !def.Nullable && !def.AutoIncrement {
		b.writeString(" NOT NULL")
	}
	if def.Unique {
		b.writeString(" UNIQUE")
	}
	return b.take()
}

func typeSQL(def ColumnDef) string {
	switch def.Type {
	case TypeString:
		length := def.Length
		if length <= 0 {
			length = 255
		}
		switch {
		case length <= 255:
			return fmt.Sprintf("VARCHAR(%d)", length)
		case length <= maxLvarchar:
			return fmt.Sprintf("LVARCHAR(%d)", length)
		default:
			return fmt.Sprintf("LVARCHAR(%d)", maxLvarchar)
		}
	case TypeText, TypeMediumText, TypeLongText:
		return "TEXT"
	case TypeInteger:
		if def.AutoIncrement {
			return "SERIAL"
		}
		return "INTEGER"
	case TypeBigInteger:
		if def.AutoIncrement {
			return "SERIAL8"
		}
		return "INT8"
	case TypeSmallInteger:
		return "SMALLINT"
	case TypeBoolean:
		// 值按 't'/'f' 存，见 literal 包
		return "CHAR(1)"
	case TypeDecimal:
		return fmt.Sprintf("DECIMAL(%d,%d)", def.Total, def.Places)
	case TypeFloat, TypeDouble:
		return "FLOAT"
	case TypeDate:
		return "DATE"
	case TypeDateTime, TypeTimestamp:
		return "DATETIME YEAR TO SECOND"
	case TypeTime:
		return "DATETIME HOUR TO SECOND"
	case TypeEnum:
		// 没有原生 enum，取值校验交给上层
		return "VARCHAR(255)"
	case TypeJSON, TypeJSONB:
		// 没有原生 JSON 类型
		return "TEXT"
	case TypeBinary:
		return "BYTE"
	case TypeUUID:
		return "CHAR(36)"
	default:
		return strings.ToUpper(string(def.Type))
	}
}
