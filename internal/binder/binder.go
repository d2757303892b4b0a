package binder

import (
	"github.com/meoying/ifxbridge/internal/literal"
	"github.com/valyala/bytebufferpool"
)

// Bind 从左到右把模板里的 ? 依次换成字面值。
// 对个数不做校验：? 多了原样留着，参数多了直接丢弃，
// 错配的语句留给数据库在执行时拒绝。
// 没有任何内部状态，同样的输入重复调用结果一致。
func Bind(sqlStr string, args []any) string {
	if len(args) == 0 {
		return sqlStr
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	pos := 0
	for _, arg := range args {
		idx := nextMarker(sqlStr, pos)
		if idx < 0 {
			break
		}
		_, _ = buf.WriteString(sqlStr[pos:idx])
		_, _ = buf.WriteString(literal.Of(arg).SQL())
		pos = idx + 1
	}
	_, _ = buf.WriteString(sqlStr[pos:])
	return buf.String()
}

// CountMarkers 统计模板里还没绑定的 ? 个数，
// 字符串字面量里的 ? 不算。
func CountMarkers(sqlStr string) int {
	cnt := 0
	pos := 0
	for {
		idx := nextMarker(sqlStr, pos)
		if idx < 0 {
			return cnt
		}
		cnt++
		pos = idx + 1
	}
}

// nextMarker 返回 from 之后第一个不在字符串字面量里的 ? 下标。
// 字面量里写两个单引号表示一个单引号，开关状态会被切换两次，正好抵消。
func nextMarker(sqlStr string, from int) int {
	inQuote := false
	for i := from; i < len(sqlStr); i++ {
		switch sqlStr[i] {
		case '\'':
			inQuote = !inQuote
		case '?':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}
