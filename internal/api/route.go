package api

import (
	"Agora/internal/api/middleware"
	"Agora/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/bounty", group.PostHandler.GetBounty)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.EditPost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.GET("/:post_id/history", group.PostHandler.GetHistory)
				authGroup.POST("/:post_id/subscribe", group.PostHandler.Subscribe)
				authGroup.DELETE("/:post_id/subscribe", group.PostHandler.Unsubscribe)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		{
			notificationGroup.Use(middleware.AuthMiddleware())
			{
				notificationGroup.GET("", group.NotificationHandler.ListNotifications)
				notificationGroup.GET("/unread/count", group.NotificationHandler.UnreadCount)
				notificationGroup.PUT("/read", group.NotificationHandler.MarkRead)
			}
		}

		activityGroup := apiGroup.Group("/activities")
		{
			activityGroup.GET("/recent", group.ActivityHandler.RecentActivities)
		}
	}

	return r
}
