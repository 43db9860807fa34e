package consts

const (
	// PostTitleMaxRunes 帖子标题最大长度（按字符计）
	PostTitleMaxRunes = 64

	// DefaultPageSize 列表默认每页条数
	DefaultPageSize = 20

	// MaxPageSize 列表每页条数上限
	MaxPageSize = 100
)
