package user

import "errors"

// user模块的业务错误，由handler层映射为HTTP状态码。
var (
	// ErrInvalidUserID 表示传入的用户标识不是合法的UUID。
	ErrInvalidUserID = errors.New("用户ID格式不正确")

	// ErrUserNotFound 表示用户不存在。
	ErrUserNotFound = errors.New("用户不存在")

	// ErrEmailTaken 表示注册时邮箱已被占用。
	ErrEmailTaken = errors.New("邮箱已被注册")

	// ErrInvalidCredentials 表示登录凭证不匹配。
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
)
