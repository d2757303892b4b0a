package catalog

import (
	"testing"

	passert "github.com/magiconair/properties/assert"
	"github.com/stretchr/testify/assert"
)

func TestDecodeColumnType(t *testing.T) {
	testCases := []struct {
		name   string
		code   int
		length int
		want   string
	}{
		{name: "varchar with length", code: 13, length: 50, want: "varchar(50)"},
		{name: "serial8", code: 18, want: "serial8"},
		{name: "unknown code renders raw", code: 999, want: "type_999"},
		{name: "char", code: 0, length: 10, want: "char(10)"},
		{name: "not null bit masked off", code: 262, length: 4, want: "serial"},
		{name: "not null char keeps length", code: 256, length: 20, want: "char(20)"},
		{name: "integer has no length suffix", code: 2, length: 4, want: "integer"},
		{name: "lvarchar", code: 43, length: 2048, want: "lvarchar(2048)"},
		{name: "boolean", code: 45, want: "boolean"},
		{name: "bigserial", code: 53, want: "bigserial"},
		{name: "datetime ignores qualifier length", code: 10, length: 3594, want: "datetime"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			passert.Equal(t, DecodeColumnType(tc.code, tc.length), tc.want)
		})
	}
}

// schema 导出层的非空规则：原始 coltype >= 256
func TestNotNull(t *testing.T) {
	assert.False(t, NotNull(13))
	assert.True(t, NotNull(269))
	assert.True(t, NotNull(256))
	assert.False(t, NotNull(0))
}

func TestAutoIncrement(t *testing.T) {
	assert.True(t, AutoIncrement(6))
	assert.True(t, AutoIncrement(262))
	assert.True(t, AutoIncrement(18))
	assert.True(t, AutoIncrement(53))
	assert.False(t, AutoIncrement(2))
	assert.False(t, AutoIncrement(13))
}

func TestDecodeRule(t *testing.T) {
	testCases := []struct {
		name string
		code string
		want string
	}{
		{name: "cascade", code: "C", want: RuleCascade},
		{name: "no action", code: "A", want: RuleNoAction},
		{name: "set null", code: "N", want: RuleSetNull},
		{name: "unknown defaults to restrict", code: "X", want: RuleRestrict},
		{name: "empty defaults to restrict", code: "", want: RuleRestrict},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeRule(tc.code))
		})
	}
}
