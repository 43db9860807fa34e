package consts

const (
	// DerivedImagePrefix 已处理图片的文件名前缀，带有该前缀的文件不会被再次处理
	DerivedImagePrefix = "resized_"

	// DerivedImageRandomLength 文件名中随机段的长度
	DerivedImageRandomLength = 10

	// DefaultImageMaxDimension 处理后图片宽高的上限 (px)
	DefaultImageMaxDimension = 700
)
