package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hitaishi/buildmart-api/internal/config"
	"github.com/hitaishi/buildmart-api/internal/handlers"
)

// Setup builds the gin engine and mounts every API route group.
func Setup(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", cfg.BaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Stored images are served straight off disk.
	router.Static("/uploads", cfg.UploadsDir)

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		// Core catalog
		api.GET("/products", h.GetProducts)
		api.GET("/product/:id", h.GetProduct)
		api.POST("/products", h.CreateProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		// Cart
		api.POST("/cart/create", h.CreateCart)
		api.POST("/cart/add", h.AddToCart)
		api.GET("/cart/:cart_key", h.GetCart)
		api.POST("/cart/update", h.UpdateCartItem)
		api.POST("/cart/remove", h.RemoveCartItem)

		// Orders
		api.POST("/checkout", h.Checkout)
		api.GET("/orders/:email", h.GetOrdersByEmail)
		api.GET("/order/:orderId", h.GetOrderDetails)
		api.GET("/all-orders", h.GetAllOrders)

		// Profiles and sessions
		api.POST("/seller-profile", h.RegisterSeller)
		api.GET("/seller-profile", h.GetSellers)
		api.POST("/buyer-profile", h.RegisterBuyer)
		api.GET("/buyer-profile", h.GetBuyers)
		api.POST("/login", h.Login)
		api.GET("/me", h.Me)
		api.POST("/logout", h.Logout)

		// Contact and newsletter
		api.POST("/contact_us", h.SubmitContact)
		api.GET("/contact_us", h.GetContacts)
		api.GET("/contact_us/:email", h.GetContactsByEmail)
		api.POST("/subscribe", h.Subscribe)

		// Plan submissions
		api.POST("/bm_plans", h.SubmitPlan)
		api.GET("/bm_plans", h.GetPlans)
		api.GET("/bm_plans/:email", h.GetPlansByEmail)

		// Specials
		api.POST("/specials", h.CreateSpecial)
		api.GET("/specials", h.GetSpecials)

		// Extended catalog
		api.POST("/product_uploads", h.CreateExtendedProduct)
		api.GET("/product_uploads", h.ListExtendedProducts)
		api.GET("/product_uploads/category/:category", h.GetExtendedProductsByCategory)
		api.GET("/product_uploads/:id", h.GetExtendedProduct)
		api.PUT("/product_uploads/:id", h.UpdateExtendedProduct)
		api.DELETE("/product_uploads/:id", h.DeleteExtendedProduct)
	}

	return router
}
