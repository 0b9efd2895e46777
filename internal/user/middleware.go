package user

import (
	"net/http"
	"strings"

	"github.com/Shinkhal/QuickEats/pkg/token"
	"github.com/gin-gonic/gin"
)

// Gin上下文中的身份键
const (
	UserIDKey = "userID"
	RoleKey   = "userRole"
)

// bearerToken 从Authorization头中提取Bearer token。
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// authenticate 校验请求携带的JWT，并把已验证的用户ID和角色放入Gin上下文。
// 失败时以401中断请求并返回false；调用方在返回false时必须直接return。
func authenticate(c *gin.Context) bool {
	raw := bearerToken(c)
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "缺少或格式错误的Authorization头",
		})
		return false
	}

	identity, err := token.ValidateToken(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "登录状态无效，请重新登录",
		})
		return false
	}

	c.Set(UserIDKey, identity.UserID)
	c.Set(RoleKey, identity.Role)
	return true
}

// RequireAuth 要求请求携带有效的JWT。
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireAdmin 在鉴权的基础上额外要求admin角色，非管理员以403中断。
// 角色检查必须发生在c.Next()之前，否则被保护的handler会先于检查执行。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		if c.GetString(RoleKey) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "没有管理员权限",
			})
			return
		}
		c.Next()
	}
}

// CurrentUserID 从Gin上下文中取出已验证的用户ID。
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
