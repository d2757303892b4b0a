package catalog

// Column 由 syscolumns 的一行解码得到
type Column struct {
	Name string
	// 原始 coltype，高位带非空标志
	TypeCode      int
	TypeName      string
	Length        int
	Nullable      bool
	AutoIncrement bool
}

// Index 复合索引最多取 8 个参与列，按槽位顺序
type Index struct {
	Name    string
	Columns []string
	Unique  bool
	Primary bool
}

type ForeignKey struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   string
	OnUpdate   string
}

// TableSchema 一张表的完整目录快照
type TableSchema struct {
	Name        string
	Columns     []Column
	Indexes     []Index
	ForeignKeys []ForeignKey
}
