package consts

// gin.Context 中由认证中间件写入的键
const (
	ContextUserID   = "id"
	ContextUsername = "username"
)
