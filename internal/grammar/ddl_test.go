package grammar

import (
	"testing"

	passert "github.com/magiconair/properties/assert"
	"github.com/stretchr/testify/assert"
)

func TestTypeSQL(t *testing.T) {
	testCases := []struct {
		name string
		def  ColumnDef
		want string
	}{
		{name: "string default length", def: ColumnDef{Type: TypeString}, want: "VARCHAR(255)"},
		{name: "string short", def: ColumnDef{Type: TypeString, Length: 100}, want: "VARCHAR(100)"},
		{name: "string over varchar limit", def: ColumnDef{Type: TypeString, Length: 256}, want: "LVARCHAR(256)"},
		{name: "string at lvarchar limit", def: ColumnDef{Type: TypeString, Length: 32739}, want: "LVARCHAR(32739)"},
		{name: "string clamped", def: ColumnDef{Type: TypeString, Length: 40000}, want: "LVARCHAR(32739)"},
		{name: "text", def: ColumnDef{Type: TypeText}, want: "TEXT"},
		{name: "medium text", def: ColumnDef{Type: TypeMediumText}, want: "TEXT"},
		{name: "long text", def: ColumnDef{Type: TypeLongText}, want: "TEXT"},
		{name: "integer", def: ColumnDef{Type: TypeInteger}, want: "INTEGER"},
		{name: "integer auto increment", def: ColumnDef{Type: TypeInteger, AutoIncrement: true}, want: "SERIAL"},
		{name: "big integer", def: ColumnDef{Type: TypeBigInteger}, want: "INT8"},
		{name: "big integer auto increment", def: ColumnDef{Type: TypeBigInteger, AutoIncrement: true}, want: "SERIAL8"},
		{name: "small integer", def: ColumnDef{Type: TypeSmallInteger}, want: "SMALLINT"},
		{name: "boolean", def: ColumnDef{Type: TypeBoolean}, want: "CHAR(1)"},
		{name: "decimal", def: ColumnDef{Type: TypeDecimal, Total: 8, Places: 2}, want: "DECIMAL(8,2)"},
		{name: "float", def: ColumnDef{Type: TypeFloat}, want: "FLOAT"},
		{name: "double", def: ColumnDef{Type: TypeDouble}, want: "FLOAT"},
		{name: "date", def: ColumnDef{Type: TypeDate}, want: "DATE"},
		{name: "date time", def: ColumnDef{Type: TypeDateTime}, want: "DATETIME YEAR TO SECOND"},
		{name: "timestamp", def: ColumnDef{Type: TypeTimestamp}, want: "DATETIME YEAR TO SECOND"},
		{name: "time", def: ColumnDef{Type: TypeTime}, want: "DATETIME HOUR TO SECOND"},
		{name: "enum", def: ColumnDef{Type: TypeEnum}, want: "VARCHAR(255)"},
		{name: "json", def: ColumnDef{Type: TypeJSON}, want: "TEXT"},
		{name: "jsonb", def: ColumnDef{Type: TypeJSONB}, want: "TEXT"},
		{name: "binary", def: ColumnDef{Type: TypeBinary}, want: "BYTE"},
		{name: "uuid", def: ColumnDef{Type: TypeUUID}, want: "CHAR(36)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			passert.Equal(t, typeSQL(tc.def), tc.want)
		})
	}
}

// 建表语句里绝不内联主键外键，约束都走后续的 ALTER
func TestCompileCreate(t *testing.T) {
	got := CompileCreate("users", []ColumnDef{
		{Name: "id", Type: TypeInteger, AutoIncrement: true},
		{Name: "name", Type: TypeString, Length: 64},
		{Name: "bio", Type: TypeText, Nullable: true},
		{Name: "active", Type: TypeBoolean, Default: true},
	})
	assert.Equal(t,
		"CREATE TABLE users (id SERIAL, name VARCHAR(64) NOT NULL, bio TEXT, active CHAR(1) DEFAULT 't' NOT NULL)",
		got)
	assert.NotContains(t, got, "PRIMARY KEY")
	assert.NotContains(t, got, "FOREIGN KEY")
	assert.NotContains(t, got, "CONSTRAINT")
}

func TestCompileAlter(t *testing.T) {
	testCases := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "add column",
			got:  CompileAddColumn("users", ColumnDef{Name: "age", Type: TypeInteger, Nullable: true}),
			want: "ALTER TABLE users ADD age INTEGER",
		},
		{
			name: "add column with default",
			got:  CompileAddColumn("users", ColumnDef{Name: "state", Type: TypeString, Length: 8, Default: "new"}),
			want: "ALTER TABLE users ADD state VARCHAR(8) DEFAULT 'new' NOT NULL",
		},
		{
			name: "drop column",
			got:  CompileDropColumn("users", "age"),
			want: "ALTER TABLE users DROP age",
		},
		{
			name: "rename column",
			got:  CompileRenameColumn("users", "name", "full_name"),
			want: "RENAME COLUMN users.name TO full_name",
		},
		{
			name: "rename table",
			got:  CompileRenameTable("users", "accounts"),
			want: "RENAME TABLE users TO accounts",
		},
		{
			name: "add primary",
			got:  CompileAddPrimary("users", "users_pk", []string{"id"}),
			want: "ALTER TABLE users ADD CONSTRAINT PRIMARY KEY (id) CONSTRAINT users_pk",
		},
		{
			name: "add unique",
			got:  CompileAddUnique("users", "users_email_uq", []string{"email", "tenant_id"}),
			want: "ALTER TABLE users ADD CONSTRAINT UNIQUE (email, tenant_id) CONSTRAINT users_email_uq",
		},
		{
			name: "add index",
			got:  CompileAddIndex("users", "users_name_idx", []string{"name"}),
			want: "CREATE INDEX users_name_idx ON users (name)",
		},
		{
			name: "drop index",
			got:  CompileDropIndex("users_name_idx"),
			want: "DROP INDEX users_name_idx",
		},
		{
			name: "add foreign cascade",
			got: CompileAddForeign("orders", ForeignKeyDef{
				Name:       "orders_user_fk",
				Columns:    []string{"user_id"},
				RefTable:   "users",
				RefColumns: []string{"id"},
				OnDelete:   "CASCADE",
			}),
			want: "ALTER TABLE orders ADD CONSTRAINT FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE CONSTRAINT orders_user_fk",
		},
		{
			name: "add foreign without cascade",
			got: CompileAddForeign("orders", ForeignKeyDef{
				Name:       "orders_user_fk",
				Columns:    []string{"user_id"},
				RefTable:   "users",
				RefColumns: []string{"id"},
			}),
			want: "ALTER TABLE orders ADD CONSTRAINT FOREIGN KEY (user_id) REFERENCES users (id) CONSTRAINT orders_user_fk",
		},
		{
			name: "drop foreign",
			got:  CompileDropForeign("orders", "orders_user_fk"),
			want: "ALTER TABLE orders DROP CONSTRAINT orders_user_fk",
		},
		{
			name: "drop table has no existence guard",
			got:  CompileDrop("users"),
			want: "DROP TABLE users",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestDecodeNullable(t *testing.T) {
	assert.True(t, DecodeNullable(0))
	assert.False(t, DecodeNullable(1))
	assert.False(t, DecodeNullable(256))
}
