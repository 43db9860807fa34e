package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"startup-hub-server/internal/config"
	moduledto "startup-hub-server/internal/modules/post/dto"

	"github.com/gin-gonic/gin"
)

const defaultMaxUploadMB = 10

// readImage 读取表单中的 image 文件，未上传时返回 nil
func readImage(c *gin.Context) (*moduledto.RawImage, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errors.New("读取上传文件失败")
	}

	maxMB := config.Get().Image.MaxUploadMB
	if maxMB <= 0 {
		maxMB = defaultMaxUploadMB
	}
	limit := int64(maxMB) * 1024 * 1024
	if file.Size > limit {
		return nil, fmt.Errorf("文件大小不能超过 %dMB", maxMB)
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.New("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, errors.New("读取上传文件失败")
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("文件大小不能超过 %dMB", maxMB)
	}
	return &moduledto.RawImage{Filename: file.Filename, Data: data}, nil
}

// optionalForm 区分字段缺失与空值
func optionalForm(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}
