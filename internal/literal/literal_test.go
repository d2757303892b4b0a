package literal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSQL(t *testing.T) {
	testCases := []struct {
		name string
		val  any
		want string
	}{
		{
			name: "null",
			val:  nil,
			want: "NULL",
		},
		{
			name: "bool true",
			val:  true,
			want: "'t'",
		},
		{
			name: "bool false",
			val:  false,
			want: "'f'",
		},
		{
			name: "int",
			val:  -42,
			want: "-42",
		},
		{
			name: "int64",
			val:  int64(9000000000),
			want: "9000000000",
		},
		{
			name: "float",
			val:  3.14,
			want: "3.14",
		},
		{
			name: "float no thousands separator",
			val:  1234567.5,
			want: "1234567.5",
		},
		{
			name: "plain string",
			val:  "abc",
			want: "'abc'",
		},
		{
			name: "string with quote",
			val:  "O'Brien",
			want: "'O''Brien'",
		},
		{
			name: "bcrypt hash material",
			val:  "$2y$10$7KO'Brien",
			want: "'$2y$10$7KO''Brien'",
		},
		{
			name: "backslash left alone",
			val:  `a\b`,
			want: `'a\b'`,
		},
		{
			name: "datetime",
			val:  time.Date(2024, 5, 1, 13, 2, 3, 0, time.UTC),
			want: "'2024-05-01 13:02:03'",
		},
		{
			name: "raw expression",
			val:  Raw("CURRENT YEAR TO SECOND"),
			want: "CURRENT YEAR TO SECOND",
		},
		{
			name: "bytes as string",
			val:  []byte("x'y"),
			want: "'x''y'",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Of(tc.val).SQL())
		})
	}
}

// 把引号包起来的内容里的 '' 还原成 '，必须逐字节等于原值
func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"'",
		"''",
		"$1$2$3",
		"a'b'c",
		"$2y$10$abcdefghijk'lmn",
		`back\slash'and$9`,
		"trailing quote'",
		"'leading quote",
	}
	for _, s := range inputs {
		quoted := Quote(s)
		require.True(t, strings.HasPrefix(quoted, "'"), quoted)
		require.True(t, strings.HasSuffix(quoted, "'"), quoted)
		body := quoted[1 : len(quoted)-1]
		assert.Equal(t, s, strings.ReplaceAll(body, "''", "'"))
	}
}

func TestOfNilPointer(t *testing.T) {
	var ts *time.Time
	assert.Equal(t, "NULL", Of(ts).SQL())
}
