package literal

import (
	"fmt"
	"time"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDateTime
	KindRaw
)

// Value 一个待字面化的参数值。同一时刻只有一种 Kind 生效。
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
}

func Null() Value {
	return Value{kind: KindNull}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

func DateTime(t time.Time) Value {
	return Value{kind: KindDateTime, t: t}
}

// Raw 原样输出的 SQL 片段，调用方自己保证它是合法 SQL。
func Raw(expr string) Value {
	return Value{kind: KindRaw, s: expr}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Of 把普通的 Go 值归一成 Value。
// 认不出来的类型按字符串处理，交给引号转义兜底。
func Of(val any) Value {
	switch v := val.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case bool:
		return Bool(v)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Int(int64(v))
	case uint8:
		return Int(int64(v))
	case uint16:
		return Int(int64(v))
	case uint32:
		return Int(int64(v))
	case uint64:
		return Int(int64(v))
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case string:
		return String(v)
	case []byte:
		return String(string(v))
	case time.Time:
		return DateTime(v)
	case *time.Time:
		if v == nil {
			return Null()
		}
		return DateTime(*v)
	default:
		return String(fmt.Sprint(val))
	}
}
