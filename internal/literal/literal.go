package literal

import (
	"strconv"
	"strings"
)

// Informix 的 DATETIME YEAR TO SECOND 接受的格式
const dateTimeLayout = "2006-01-02 15:04:05"

// SQL 返回该值的字面 SQL 文本。纯函数，只依赖 (kind, payload)。
// 布尔按 CHAR(1) 的 't'/'f' 约定输出。
func (v Value) SQL() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		if v.b {
			return "'t'"
		}
		return "'f'"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return Quote(v.s)
	case KindDateTime:
		return "'" + v.t.Format(dateTimeLayout) + "'"
	case KindRaw:
		return v.s
	default:
		return "NULL"
	}
}

// Quote 给字符串加上单引号，值里的单引号写成两个单引号。
// 必须用下标切分拼接，不能走正则替换：bcrypt 散列这类内容里
// $ 后面紧跟数字，会被替换引擎当成反向引用，值就被悄悄截断了。
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')
	for {
		idx := strings.IndexByte(s, '\'')
		if idx < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:idx])
		sb.WriteString("''")
		s = s[idx+1:]
	}
	sb.WriteByte('\'')
	return sb.String()
}
