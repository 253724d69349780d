package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopeasy_back_end/internal/handlers"
	"shopeasy_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")

	// Catalogue (public)
	api.GET("/products", h.GetProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/categories", h.GetCategories)

	// Auth
	auth := api.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
	auth.POST("/reset", h.ResetPassword)
	auth.POST("/strength", h.PasswordStrength)
	auth.POST("/logout", middleware.AuthRequired(), h.Logout)

	// Panier (authentifié)
	cart := api.Group("/cart", middleware.AuthRequired())
	cart.GET("", h.GetCart)
	cart.GET("/ws", h.CartWebSocket)
	cart.POST("/add", h.AddToCart)
	cart.POST("/checkout", h.Checkout)
	cart.PATCH("/:productId", h.UpdateCartQuantity)
	cart.DELETE("/:productId", h.RemoveFromCart)
	cart.DELETE("", h.ClearCart)
}
