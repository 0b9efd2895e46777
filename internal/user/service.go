package user

import (
	"fmt"
	"unicode"

	"github.com/Shinkhal/QuickEats/internal/notify"
	"github.com/Shinkhal/QuickEats/pkg/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput 是注册服务的输入参数。
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Gender   string
}

// Register 创建一个新用户并签发JWT。
// 邮箱查重、密码强度检查在这里完成，格式校验由handler层的绑定规则负责。
func Register(input RegisterInput) (string, error) {
	// 1. 邮箱查重
	existing, err := FindByEmail(input.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	// 2. 密码强度检查
	if !isStrongPassword(input.Password) {
		return "", fmt.Errorf("%w: 密码至少8位，且包含大小写字母、数字和符号", ErrInvalidCredentials)
	}

	// 3. 生成主键和密码哈希
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("无法生成用户ID: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("无法哈希密码: %w", err)
	}

	newUser := User{
		ID:       id.String(),
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Age:      input.Age,
		Gender:   input.Gender,
		Role:     RoleUser,
	}
	if err := Create(&newUser); err != nil {
		return "", err
	}

	// 4. 欢迎邮件是fire-and-forget的，失败不影响注册结果
	notify.SendWelcomeEmailAsync(newUser.Name, newUser.Email)

	// 5. 签发token
	return token.GenerateToken(newUser.ID, newUser.Role)
}

// Login 校验登录凭证并签发JWT。
// 未注册的邮箱返回 ErrUserNotFound，密码不匹配返回 ErrInvalidCredentials。
func Login(email, password string) (string, error) {
	u, err := FindByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return token.GenerateToken(u.ID, u.Role)
}

// isStrongPassword 要求密码至少8位，并同时包含大写、小写、数字和符号。
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
