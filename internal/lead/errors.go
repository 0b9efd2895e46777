package lead

import "errors"

var (
	// ErrInvalidUserID 表示传入的用户ID格式非法
	ErrInvalidUserID = errors.New("用户ID格式无效")
	// ErrUserNotFound 表示用户不存在
	ErrUserNotFound = errors.New("用户不存在")
)
