package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jewelcms/internal/authz"
	"jewelcms/internal/handlers"
	"jewelcms/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	leadHandler *handlers.LeadHandler,
	productHandler *handlers.ProductHandler,
	catalogHandler *handlers.CatalogHandler,
	wishlistHandler *handlers.WishlistHandler,
	customerHandler *handlers.CustomerHandler,
	settingsHandler *handlers.SettingsHandler,
	reportHandler *handlers.ReportHandler,
	eventsHandler *handlers.EventsHandler,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/api/admin/auth/login", authHandler.Login)
	r.POST("/api/leads", leadHandler.Capture) // storefront capture, no auth

	// ---- protected admin API
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.ReadOnlyGuard())

	admin.GET("/me", authHandler.Me)
	admin.GET("/events", eventsHandler.Subscribe)

	leads := admin.Group("/leads")
	{
		leads.GET("", leadHandler.List)
		leads.GET("/stats", leadHandler.Stats)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PUT("/:id", leadHandler.Update)
		leads.POST("/:id/notes", leadHandler.AddNote)
	}

	products := admin.Group("/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.POST("/bulk-upload", productHandler.BulkUpload)
		products.GET("/:id", productHandler.GetByID)
		products.PUT("/:id", productHandler.Update)
		products.PUT("/:id/status", productHandler.UpdateStatus)
		products.DELETE("/:id", productHandler.Delete)
		products.POST("/:id/images", productHandler.UploadImage)
		products.PUT("/:id/images/reorder", productHandler.ReorderImages)
		products.DELETE("/:id/images/:imageId", productHandler.DeleteImage)
	}

	brands := admin.Group("/brands")
	{
		brands.GET("", catalogHandler.ListBrands)
		brands.POST("", catalogHandler.CreateBrand)
		brands.PUT("/:id", catalogHandler.UpdateBrand)
		brands.DELETE("/:id", catalogHandler.DeleteBrand)
	}

	categories := admin.Group("/categories")
	{
		categories.GET("", catalogHandler.ListCategories)
		categories.POST("", catalogHandler.CreateCategory)
		categories.PUT("/:id", catalogHandler.UpdateCategory)
		categories.DELETE("/:id", catalogHandler.DeleteCategory)
		categories.POST("/:id/subcategories", catalogHandler.CreateSubcategory)
		categories.PUT("/:id/subcategories/:subId", catalogHandler.UpdateSubcategory)
		categories.DELETE("/:id/subcategories/:subId", catalogHandler.DeleteSubcategory)
	}

	tags := admin.Group("/tags")
	{
		tags.GET("", catalogHandler.ListTags)
		tags.POST("", catalogHandler.CreateTag)
		tags.PUT("/:id", catalogHandler.UpdateTag)
		tags.DELETE("/:id", catalogHandler.DeleteTag)
	}

	wishlists := admin.Group("/wishlists")
	{
		wishlists.GET("", wishlistHandler.List)
		wishlists.POST("/:id/share-token", wishlistHandler.RegenerateShareToken)
		wishlists.DELETE("/:id", wishlistHandler.Delete)
	}

	customers := admin.Group("/customers")
	{
		customers.GET("", customerHandler.List)
		customers.GET("/stats", customerHandler.Stats)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id/active", customerHandler.SetActive)
	}

	settings := admin.Group("/settings", middleware.RequireRoles(authz.RoleManager, authz.RoleAdmin))
	{
		settings.GET("", settingsHandler.GetAll)
		settings.PUT("", settingsHandler.Put)
	}

	reports := admin.Group("/reports")
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/leads/pdf", reportHandler.ExportLeadsPDF)
	}

	return r
}
