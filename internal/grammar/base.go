package grammar

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// builder 供各个 compile 入口拼接 SQL 的公共部分
type builder struct {
	buffer *bytebufferpool.ByteBuffer
}

func newBuilder() *builder {
	return &builder{buffer: bytebufferpool.Get()}
}

func (b *builder) writeString(s string) {
	_, _ = b.buffer.WriteString(s)
}

func (b *builder) writeByte(c byte) {
	_ = b.buffer.WriteByte(c)
}

func (b *builder) comma() {
	b.writeString(", ")
}

func (b *builder) identifier(v string) {
	b.writeString(ident(v))
}

// take 取出拼好的 SQL 并把缓冲还回池里
func (b *builder) take() string {
	s := b.buffer.String()
	bytebufferpool.Put(b.buffer)
	b.buffer = nil
	return s
}

// ident Informix 是大小写不敏感的方言，标识符一律不加引号。
// 原始标识符里混进来的双引号直接剥掉，不做转义。
func ident(v string) string {
	return strings.ReplaceAll(v, `"`, "")
}
