package router

import (
	"fmt"
	"strings"

	"github.com/checkout-next/internal/cache"
	"github.com/checkout-next/internal/config"
	checkouthandlers "github.com/checkout-next/internal/http/handlers/checkout"
	"github.com/checkout-next/internal/logger"
	"github.com/checkout-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := checkouthandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ck"
	}
	orderRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:orders", redisPrefix),
		WindowSeconds: cfg.Checkout.OrderRateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.OrderRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		carts := apiV1.Group("/carts/:cart_key")
		{
			carts.GET("/checkout", handler.GetCheckoutView)
			carts.POST("/items", handler.AddItem)
			carts.DELETE("/items/:product_id", handler.RemoveItem)
			carts.POST("/items/:product_id/edit", handler.BeginQuantityEdit)
			carts.PUT("/items/:product_id/quantity", handler.SaveQuantityEdit)
			carts.PUT("/items/:product_id/delivery-option", handler.SelectDeliveryOption)
			carts.POST("/orders", RateLimitMiddleware(cache.Client(), orderRule, KeyByIP), handler.PlaceOrder)
		}

		apiV1.GET("/orders", handler.ListOrders)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
