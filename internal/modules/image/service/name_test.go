package service

import (
	"strings"
	"sync"
	"testing"
)

// 测试内容：验证并发生成的文件名唯一且时间戳严格递增。
func TestNewDerivedName_UniqueAndMonotonic(t *testing.T) {
	const n = 200
	names := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := newDerivedName(".PNG")
			if err != nil {
				t.Errorf("newDerivedName 返回错误: %v", err)
				return
			}
			names <- name
		}()
	}
	wg.Wait()
	close(names)

	seen := map[string]bool{}
	for name := range names {
		if seen[name] {
			t.Fatalf("文件名重复: %s", name)
		}
		seen[name] = true
		if !strings.HasSuffix(name, ".png") {
			t.Fatalf("扩展名应为小写: %s", name)
		}
	}

	a, b := nextStamp(), nextStamp()
	if b <= a {
		t.Fatalf("期望时间戳严格递增: %d, %d", a, b)
	}
}
