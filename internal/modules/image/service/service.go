package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"path"
	"strings"

	"startup-hub-server/internal/consts"
	platformservice "startup-hub-server/internal/platform/service"
	"startup-hub-server/internal/platform/storage"
	"startup-hub-server/internal/utils"

	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidImageFormat 扩展名不受支持或内容无法解码
	ErrInvalidImageFormat = errors.New("invalid image format")
	// ErrStorageWrite 处理后的图片写入存储失败
	ErrStorageWrite = errors.New("image storage write failed")
)

// 解码前按像素总数拦截超大图片
const maxSourcePixels = 64 * 1024 * 1024

var contentTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.BMP:  "image/bmp",
	imaging.TIFF: "image/tiff",
}

// DerivedImage 处理后的图片
type DerivedImage struct {
	Name        string
	Data        []byte
	Width       int
	Height      int
	ContentType string
}

type Service struct {
	store        storage.BlobStore
	maxDimension int
}

func New(store storage.BlobStore, maxDimension int) *Service {
	if maxDimension <= 0 {
		maxDimension = consts.DefaultImageMaxDimension
	}
	return &Service{store: store, maxDimension: maxDimension}
}

// IsDerivedName 判断文件名是否已是处理后的结果
func IsDerivedName(name string) bool {
	return strings.HasPrefix(path.Base(name), consts.DerivedImagePrefix)
}

// Derive 校正方向、等比缩放进 maxDimension 见方的区域并写入存储。
// 已带有处理前缀的文件原样返回，不会解码也不会写入。
func (s *Service) Derive(ctx context.Context, raw []byte, originalFilename string) (*DerivedImage, error) {
	if IsDerivedName(originalFilename) {
		return &DerivedImage{Name: originalFilename, Data: raw}, nil
	}

	ext := strings.ToLower(path.Ext(originalFilename))
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, invalidFormat(fmt.Sprintf("不支持的图片格式: %q", ext), err)
	}
	if ok, msg := utils.ValidateImageContent(raw, ext); !ok {
		return nil, invalidFormat(msg, nil)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, invalidFormat("图片解析失败", err)
	}
	if cfg.Width*cfg.Height > maxSourcePixels {
		return nil, invalidFormat("图片像素过大", nil)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, invalidFormat("图片解码失败", err)
	}

	b := img.Bounds()
	if b.Dx() > s.maxDimension || b.Dy() > s.maxDimension {
		img = imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(90)); err != nil {
		log.Printf("❌ 图片编码失败: %v", err)
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "图片处理失败", err)
	}

	name, err := newDerivedName(ext)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "生成文件名失败", err)
	}

	derived := &DerivedImage{
		Name:        name,
		Data:        buf.Bytes(),
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ContentType: contentTypes[format],
	}

	if err := s.store.Put(ctx, derived.Name, derived.Data, derived.ContentType); err != nil {
		log.Printf("❌ 图片写入存储失败 %s: %v", derived.Name, err)
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeStorage, "图片保存失败",
			fmt.Errorf("%w: %w", ErrStorageWrite, err))
	}
	return derived, nil
}

// Discard 删除已写入的图片，空名称直接忽略
func (s *Service) Discard(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	if err := s.store.Delete(ctx, name); err != nil {
		log.Printf("⚠️ 删除图片失败 %s: %v", name, err)
		return err
	}
	return nil
}

// URL 返回图片的访问地址，空名称返回空串
func (s *Service) URL(name string) string {
	if name == "" {
		return ""
	}
	return s.store.URL(name)
}

func invalidFormat(msg string, cause error) error {
	err := ErrInvalidImageFormat
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidImageFormat, cause)
	}
	return platformservice.WrapServiceError(platformservice.ErrorCodeValidation, msg, err)
}
