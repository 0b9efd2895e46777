package api

import (
	"github.com/Shinkhal/QuickEats/internal/cart"
	"github.com/Shinkhal/QuickEats/internal/food"
	"github.com/Shinkhal/QuickEats/internal/lead"
	"github.com/Shinkhal/QuickEats/internal/order"
	"github.com/Shinkhal/QuickEats/internal/query"
	"github.com/Shinkhal/QuickEats/internal/session"
	"github.com/Shinkhal/QuickEats/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 用户相关的路由组 /api/user
		userRoutes := api.Group("/user")
		{
			userRoutes.POST("/register", user.RegisterUser)
			userRoutes.POST("/login", user.LoginUser)
		}

		// 菜品相关的路由组 /api/food
		foodRoutes := api.Group("/food")
		{
			foodRoutes.GET("/list", food.ListFood)
			foodRoutes.POST("/add", user.RequireAdmin(), food.AddFood)
			foodRoutes.POST("/remove", user.RequireAdmin(), food.RemoveFood)
		}

		// 购物车相关的路由组 /api/cart
		// 所有操作都需要登录，并顺带记录会话活动时间戳
		cartRoutes := api.Group("/cart", user.RequireAuth(), session.TrackMiddleware(user.UserIDKey))
		{
			cartRoutes.POST("/add", cart.AddToCart)
			cartRoutes.POST("/remove", cart.RemoveFromCart)
			cartRoutes.POST("/get", cart.GetCart)
		}

		// 订单相关的路由组 /api/order
		orderRoutes := api.Group("/order")
		{
			orderRoutes.POST("/place", user.RequireAuth(), session.TrackMiddleware(user.UserIDKey), order.PlaceOrder)
			orderRoutes.POST("/verify", user.RequireAuth(), order.VerifyOrder)
			orderRoutes.POST("/userorders", user.RequireAuth(), order.UserOrders)
			orderRoutes.GET("/list", user.RequireAdmin(), order.ListOrders)
			orderRoutes.POST("/status", user.RequireAdmin(), order.UpdateOrderStatus)
		}

		// 咨询相关的路由组 /api/query
		queryRoutes := api.Group("/query")
		{
			queryRoutes.POST("/submit", query.SubmitQuery)
			queryRoutes.GET("/list", user.RequireAdmin(), query.GetQueries)
			queryRoutes.POST("/resolve", user.RequireAdmin(), query.ResolveQuery)
		}

		// 线索评分相关的路由组 /api/lead（仅管理员）
		leadRoutes := api.Group("/lead", user.RequireAdmin())
		{
			leadRoutes.GET("/leads", lead.GetLeads)
			leadRoutes.POST("/generate-lead", lead.GenerateLead)
			leadRoutes.POST("/update-all-leads", lead.UpdateAllLeads)
		}
	}
}
