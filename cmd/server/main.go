package main

// @title           Inventario API
// @version         1.0
// @description     API for managing books and their authors.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"inventario/internal/config"
	"inventario/internal/db"
	"inventario/internal/handler"
	"inventario/internal/middleware"
	"inventario/internal/repository"
	"inventario/internal/resolver"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	e := gin.New()
	e.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	client := db.ConnectWithRetry(cfg)
	database := client.Database(cfg.MongoDB)

	authorRepo := repository.NewMongoAuthorRepository(database)
	bookRepo := repository.NewMongoBookRepository(database)
	res := resolver.New(authorRepo)

	healthHandler := handler.NewHealthHandler(client, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	root := e.Group("")
	{
		handler.NewAuthorHandler(authorRepo).RegisterRoutes(root)
		handler.NewBookHandler(bookRepo, res).RegisterRoutes(root)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	e.NoRoute(func(c *gin.Context) {
		c.String(http.StatusOK, "endpoint not found")
	})

	e.Run(":" + cfg.Port)
}
