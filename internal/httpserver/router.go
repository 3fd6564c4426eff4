package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires all routes. Product and category reads/writes plus login
// are public; user, cart and order routes require a bearer token.
func buildRouter(logger *slog.Logger, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), cors.Default())

	h := &handlers{deps: deps}

	router.GET("/health", healthHandler)

	router.POST("/auth/login", h.login)

	products := router.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:productId", h.getProduct)
		products.POST("", h.createProduct)
		products.PUT("/:productId", h.updateProduct)
		products.DELETE("/:productId", h.deleteProduct)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/tree", h.categoryTree)
		categories.GET("/:categoryId", h.getCategory)
		categories.POST("", h.createCategory)
		categories.PUT("/:categoryId", h.updateCategory)
		categories.DELETE("/:categoryId", h.deleteCategory)
	}

	protected := router.Group("", authRequired(deps.AuthSvc))
	{
		protected.POST("/auth/logout", h.logout)
		protected.GET("/auth/me", h.me)

		protected.GET("/users", h.listUsers)
		protected.GET("/users/:userId", h.getUser)
		protected.POST("/users", h.createUser)
		protected.PUT("/users/:userId", h.updateUser)
		protected.DELETE("/users/:userId", h.deleteUser)

		protected.GET("/carts/users/:userId", h.getCart)
		protected.POST("/carts/users/:userId/items", h.addCartItem)
		protected.PATCH("/carts/users/:userId/items/:productId", h.updateCartItem)
		protected.DELETE("/carts/users/:userId/items/:productId", h.removeCartItem)
		protected.DELETE("/carts/users/:userId/items", h.clearCart)

		protected.GET("/orders", h.listOrders)
		protected.GET("/orders/:orderId", h.getOrder)
		protected.POST("/orders", h.createOrder)
		protected.PATCH("/orders/:orderId/status", h.updateOrderStatus)
	}

	return router
}

type handlers struct {
	deps Deps
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
