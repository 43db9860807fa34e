package utils

import "testing"

// 测试内容：验证分页参数的默认值与上限。
func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{page: 0, size: 0, wantPage: 1, wantSize: 20},
		{page: -3, size: -1, wantPage: 1, wantSize: 20},
		{page: 2, size: 50, wantPage: 2, wantSize: 50},
		{page: 1, size: 1000, wantPage: 1, wantSize: 100},
	}
	for _, tt := range tests {
		page, size := NormalizePage(tt.page, tt.size)
		if page != tt.wantPage || size != tt.wantSize {
			t.Fatalf("NormalizePage(%d, %d) = (%d, %d)，期望 (%d, %d)", tt.page, tt.size, page, size, tt.wantPage, tt.wantSize)
		}
	}
}
