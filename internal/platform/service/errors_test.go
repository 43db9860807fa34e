package service

import (
	"errors"
	"fmt"
	"testing"
)

// 测试内容：验证业务错误可以通过包装链识别错误码与底层原因。
func TestServiceError_WrapAndMatch(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("save post: %w", WrapServiceError(ErrorCodeStorage, "图片保存失败", cause))

	serviceErr, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("期望识别为 ServiceError")
	}
	if serviceErr.Code != ErrorCodeStorage || serviceErr.Message != "图片保存失败" {
		t.Fatalf("unexpected service error: %+v", serviceErr)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 errors.Is 命中底层原因")
	}
	if !IsCode(err, ErrorCodeStorage) || IsCode(err, ErrorCodeNotFound) {
		t.Fatalf("IsCode 判断错误")
	}
	if IsCode(errors.New("plain"), ErrorCodeInternal) {
		t.Fatalf("普通错误不应匹配任何错误码")
	}
}
