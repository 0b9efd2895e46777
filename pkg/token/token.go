package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// secretKey 是用于签发和校验JWT的HS256密钥。
// 它在应用启动时通过 Configure 设置，之后只读。
var secretKey []byte

// tokenTTL 是签发的JWT的有效期。
var tokenTTL = 48 * time.Hour

// Identity 是从一个已验证的JWT中提取出的身份信息。
// 它是鉴权中间件与各业务模块之间的契约。
type Identity struct {
	UserID string
	Role   string
}

// Configure 设置JWT密钥和有效期。
// 如果配置中没有提供密钥，则生成一个密码学安全的随机密钥，
// 此时已签发的token在进程重启后将全部失效。
func Configure(secret string, ttl time.Duration) {
	if secret != "" {
		secretKey = []byte(secret)
	} else {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic("无法生成安全的JWT密钥: " + err.Error())
		}
		secretKey = key
		fmt.Printf("警告: 未配置JWT密钥，已生成临时密钥 (指纹: %s)。\n",
			base64.RawURLEncoding.EncodeToString(key[:6]))
	}
	// 零值表示沿用默认有效期；非零值（包括负值）原样生效
	if ttl != 0 {
		tokenTTL = ttl
	}
}

// GenerateToken 为指定的用户签发一个JWT。
// claims中只包含用户ID(sub)和角色(role)，不携带其他个人信息。
func GenerateToken(userID, role string) (string, error) {
	if len(secretKey) == 0 {
		return "", errors.New("JWT密钥尚未初始化")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("无法签名JWT: %w", err)
	}
	return signed, nil
}

// ValidateToken 校验一个JWT字符串，并返回其中携带的身份信息。
// 任何解析、签名或过期错误都会导致校验失败。
func ValidateToken(tokenString string) (*Identity, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		// 只接受HMAC族的签名方法
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名方法: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("无效的token")
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, errors.New("token中缺少用户标识")
	}

	return &Identity{UserID: sub, Role: role}, nil
}
