package handler

import (
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Page    *PageHandler
	Console *ConsoleHandler
}

func RegisterRoutes(root *gin.RouterGroup, deps RouterDeps) {
	root.GET("/", deps.Page.Index)

	api := root.Group("/api")
	api.GET("/drafts", deps.Console.Drafts)
	api.PUT("/code", deps.Console.SetCode)
	api.GET("/history", deps.Console.History)
	api.GET("/status", deps.Console.Status)

	actions := api.Group("/actions")
	actions.POST("/admin/register", deps.Console.RegisterAdmin)
	actions.POST("/category", deps.Console.CreateCategory)
	actions.POST("/set", deps.Console.CreateSet)
	actions.POST("/card", deps.Console.CreateCard)
	actions.POST("/game/start", deps.Console.StartGame)
	actions.POST("/game/qr", deps.Console.GenerateQR)
}
