package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"startup-hub-server/internal/consts"
)

const nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var lastStamp atomic.Int64

// nextStamp 返回进程内严格递增的纳秒时间戳
func nextStamp() int64 {
	for {
		prev := lastStamp.Load()
		now := time.Now().UnixNano()
		if now <= prev {
			now = prev + 1
		}
		if lastStamp.CompareAndSwap(prev, now) {
			return now
		}
	}
}

func randomString(n int) (string, error) {
	limit := big.NewInt(int64(len(nameAlphabet)))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(nameAlphabet[idx.Int64()])
	}
	return sb.String(), nil
}

// newDerivedName 生成 resized_<随机串>_<时间戳><扩展名>
func newDerivedName(ext string) (string, error) {
	random, err := randomString(consts.DerivedImageRandomLength)
	if err != nil {
		return "", err
	}
	return consts.DerivedImagePrefix + random + "_" + strconv.FormatInt(nextStamp(), 10) + strings.ToLower(ext), nil
}
