package utils

import (
	"bytes"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9[:punct:]]+$`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	if n := utf8.RuneCountInString(username); n < 3 || n > 64 {
		return false, "用户名长度需在3到64个字符之间"
	}
	// 允许英文大小写、数字和下划线
	if !usernamePattern.MatchString(username) {
		return false, "用户名只能包含英文大小写、数字和下划线"
	}
	if digitsPattern.MatchString(username) {
		return false, "用户名不能为纯数字"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "密码最少8位"
	}
	if !passwordPattern.MatchString(password) {
		return false, "密码只能包含英文大小写、数字和符号"
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return false, "密码必须包含至少一个字母和一个数字"
	}
	return true, ""
}

var allowedImageTypes = map[string]map[string]bool{
	"image/jpeg":     {".jpg": true, ".jpeg": true},
	"image/png":      {".png": true},
	"image/gif":      {".gif": true},
	"image/bmp":      {".bmp": true},
	"image/x-ms-bmp": {".bmp": true},
	"image/tiff":     {".tif": true, ".tiff": true},
}

var (
	tiffLittleEndian = []byte("II*\x00")
	tiffBigEndian    = []byte("MM\x00*")
)

// DetectImageContentType sniffs the first bytes of data.
// http.DetectContentType does not know TIFF, so its magic numbers are checked here.
func DetectImageContentType(data []byte) string {
	if bytes.HasPrefix(data, tiffLittleEndian) || bytes.HasPrefix(data, tiffBigEndian) {
		return "image/tiff"
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}

// ValidateImageContent checks if the file content matches the extension.
func ValidateImageContent(data []byte, ext string) (bool, string) {
	if len(data) == 0 {
		return false, "文件内容为空"
	}
	ext = strings.ToLower(ext)
	contentType := DetectImageContentType(data)
	if exts, ok := allowedImageTypes[contentType]; ok && exts[ext] {
		return true, ""
	}
	return false, "文件真实类型(" + contentType + ")与扩展名(" + ext + ")不匹配或不支持"
}
