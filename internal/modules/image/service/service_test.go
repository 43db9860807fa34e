package service

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	platformservice "startup-hub-server/internal/platform/service"
	"startup-hub-server/internal/testutils"
)

var derivedNamePattern = regexp.MustCompile(`^resized_[A-Za-z0-9]{10}_[0-9]+\.(jpg|jpeg|png|gif|bmp|tif|tiff)$`)

// 测试内容：验证超出 700 的图片被等比缩放进盒子并写入存储。
func TestDerive_FitsIntoBox(t *testing.T) {
	store := testutils.NewMemoryBlobStore()
	svc := New(store, 700)

	got, err := svc.Derive(context.Background(), testutils.JPEG(t, 500, 900), "photo.JPG")
	if err != nil {
		t.Fatalf("Derive 返回错误: %v", err)
	}
	if got.Height != 700 || got.Width < 388 || got.Width > 389 {
		t.Fatalf("期望约 389x700，实际为 %dx%d", got.Width, got.Height)
	}
	w, h := testutils.DecodeSize(t, got.Data)
	if w != got.Width || h != got.Height {
		t.Fatalf("编码结果尺寸不一致: %dx%d vs %dx%d", w, h, got.Width, got.Height)
	}
	if !derivedNamePattern.MatchString(got.Name) {
		t.Fatalf("文件名格式不符: %q", got.Name)
	}
	if got.ContentType != "image/jpeg" {
		t.Fatalf("期望 image/jpeg，实际为 %q", got.ContentType)
	}
	if !store.Has(got.Name) {
		t.Fatalf("期望处理后的图片已写入存储")
	}
}

// 测试内容：验证小图不会被放大。
func TestDerive_NeverUpscales(t *testing.T) {
	svc := New(testutils.NewMemoryBlobStore(), 700)

	got, err := svc.Derive(context.Background(), testutils.PNG(t, 120, 80), "small.png")
	if err != nil {
		t.Fatalf("Derive 返回错误: %v", err)
	}
	if got.Width != 120 || got.Height != 80 {
		t.Fatalf("期望保持 120x80，实际为 %dx%d", got.Width, got.Height)
	}
}

// 测试内容：验证 EXIF 方向标记在缩放前被应用。
func TestDerive_AppliesOrientation(t *testing.T) {
	svc := New(testutils.NewMemoryBlobStore(), 700)

	// orientation 6 表示需要顺时针旋转 90°
	raw := testutils.JPEGWithOrientation(t, 80, 40, 6)
	got, err := svc.Derive(context.Background(), raw, "rotated.jpg")
	if err != nil {
		t.Fatalf("Derive 返回错误: %v", err)
	}
	if got.Width != 40 || got.Height != 80 {
		t.Fatalf("期望旋转后为 40x80，实际为 %dx%d", got.Width, got.Height)
	}
}

// 测试内容：验证已处理的文件名原样返回，不写存储。
func TestDerive_IdempotentForDerivedName(t *testing.T) {
	store := testutils.NewMemoryBlobStore()
	svc := New(store, 700)
	raw := []byte("already processed")

	got, err := svc.Derive(context.Background(), raw, "resized_AbCdEfGhIj_1700000000.jpg")
	if err != nil {
		t.Fatalf("Derive 返回错误: %v", err)
	}
	if got.Name != "resized_AbCdEfGhIj_1700000000.jpg" || !bytes.Equal(got.Data, raw) {
		t.Fatalf("期望原样返回，实际为 %+v", got)
	}
	if store.Puts() != 0 {
		t.Fatalf("期望不写入存储，实际写入 %d 次", store.Puts())
	}
}

// 测试内容：验证不支持的扩展名与损坏内容返回格式错误。
func TestDerive_InvalidFormat(t *testing.T) {
	svc := New(testutils.NewMemoryBlobStore(), 700)
	jpeg := testutils.JPEG(t, 10, 10)

	tests := []struct {
		name     string
		raw      []byte
		filename string
	}{
		{name: "unsupported_ext", raw: jpeg, filename: "a.webp"},
		{name: "no_ext", raw: jpeg, filename: "a"},
		{name: "mismatch", raw: jpeg, filename: "a.png"},
		{name: "garbage", raw: []byte("definitely not an image"), filename: "a.jpg"},
		{name: "truncated", raw: jpeg[:len(jpeg)/3], filename: "a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Derive(context.Background(), tt.raw, tt.filename)
			if !errors.Is(err, ErrInvalidImageFormat) {
				t.Fatalf("期望 ErrInvalidImageFormat，实际为 %v", err)
			}
			if !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
				t.Fatalf("期望 validation 错误码，实际为 %v", err)
			}
		})
	}
}

// 测试内容：验证存储失败时返回 ErrStorageWrite。
func TestDerive_StorageFailure(t *testing.T) {
	store := testutils.NewMemoryBlobStore()
	store.FailPut = true
	svc := New(store, 700)

	_, err := svc.Derive(context.Background(), testutils.JPEG(t, 10, 10), "a.jpg")
	if !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("期望 ErrStorageWrite，实际为 %v", err)
	}
	if !platformservice.IsCode(err, platformservice.ErrorCodeStorage) {
		t.Fatalf("期望 storage 错误码，实际为 %v", err)
	}
}

// 测试内容：验证删除已写入的图片，空名称直接忽略。
func TestDiscard(t *testing.T) {
	store := testutils.NewMemoryBlobStore()
	svc := New(store, 700)

	got, err := svc.Derive(context.Background(), testutils.PNG(t, 10, 10), "a.png")
	if err != nil {
		t.Fatalf("Derive 返回错误: %v", err)
	}
	if err := svc.Discard(context.Background(), got.Name); err != nil {
		t.Fatalf("Discard 返回错误: %v", err)
	}
	if store.Has(got.Name) {
		t.Fatalf("期望图片已被删除")
	}
	if err := svc.Discard(context.Background(), ""); err != nil {
		t.Fatalf("空名称应忽略: %v", err)
	}
}

// 测试内容：验证处理前缀的判断。
func TestIsDerivedName(t *testing.T) {
	if !IsDerivedName("resized_x.jpg") || !IsDerivedName("post_images/resized_x.jpg") {
		t.Fatalf("期望识别处理前缀")
	}
	if IsDerivedName("photo_resized_.jpg") {
		t.Fatalf("前缀只匹配文件名开头")
	}
}
