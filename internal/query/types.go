package query

// Query 一条准备提交给 Informix 的语句。
// 旧版客户端驱动没法可靠地使用服务端预编译，
// 所以 SQL 必须是已经完成字面化、不含 ? 占位符的完整语句。
type Query struct {
	SQL string
}
