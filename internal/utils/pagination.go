package utils

import "startup-hub-server/internal/consts"

// NormalizePage 页码最小为 1，每页条数默认 DefaultPageSize，上限 MaxPageSize
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}
	return page, pageSize
}
