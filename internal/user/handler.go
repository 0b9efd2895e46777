package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerRequest 定义了注册接口的请求体结构
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Age      int    `json:"age" binding:"required,min=1"`
	Gender   string `json:"gender" binding:"required,oneof=Male Female Other"`
}

// loginRequest 定义了登录接口的请求体结构
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser 处理 POST /api/user/register
func RegisterUser(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误: " + err.Error()})
		return
	}

	jwt, err := Register(RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Age:      body.Age,
		Gender:   body.Gender,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "邮箱已被注册"})
		case errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请设置一个更强的密码"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "注册失败"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": jwt})
}

// LoginUser 处理 POST /api/user/login
func LoginUser(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误: " + err.Error()})
		return
	}

	jwt, err := Login(body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户不存在"})
		case errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "邮箱或密码错误"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "登录失败"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": jwt})
}
