package routes

import (
	"github.com/arminsheibak/Online-Food-API/configs"
	"github.com/arminsheibak/Online-Food-API/controllers"
	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/middlewares"
	"github.com/arminsheibak/Online-Food-API/pkg/mailer"
	"github.com/arminsheibak/Online-Food-API/repository"
	"github.com/arminsheibak/Online-Food-API/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(categoryRepo, menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	profileSvc := services.NewProfileService(userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, mailer.LogMailer{}, cfg)
	categoryCtrl := controllers.NewCategoryController(catalogSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)
	crewOrAdmin := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleDeliveryCrew, entity.RoleAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog: public read, admin write
	r.GET("/categories", categoryCtrl.List)
	r.GET("/categories/:id", categoryCtrl.Detail)
	r.POST("/categories", adminOnly, categoryCtrl.Create)
	r.PUT("/categories/:id", adminOnly, categoryCtrl.Update)
	r.PATCH("/categories/:id", adminOnly, categoryCtrl.Update)
	r.DELETE("/categories/:id", adminOnly, categoryCtrl.Delete)

	r.GET("/menu-items", menuCtrl.List)
	r.GET("/menu-items/:id", menuCtrl.Detail)
	r.POST("/menu-items", adminOnly, menuCtrl.Create)
	r.PUT("/menu-items/:id", adminOnly, menuCtrl.Update)
	r.PATCH("/menu-items/:id", adminOnly, menuCtrl.Update)
	r.DELETE("/menu-items/:id", adminOnly, menuCtrl.Delete)

	// Carts: anonymous; the random id is the capability
	r.POST("/carts", cartCtrl.Create)
	r.GET("/carts/:id", cartCtrl.Get)
	r.DELETE("/carts/:id", cartCtrl.Delete)
	r.GET("/carts/:id/items", cartCtrl.Get)
	r.POST("/carts/:id/items", cartCtrl.AddItem)
	r.PATCH("/carts/:id/items/:itemId", cartCtrl.UpdateItem)
	r.DELETE("/carts/:id/items/:itemId", cartCtrl.RemoveItem)

	// Profiles
	profile := r.Group("/profiles", auth)
	{
		profile.GET("/me", profileCtrl.Me)
		profile.PUT("/me", profileCtrl.UpdateMe)
	}

	// Orders
	o := r.Group("/orders", auth)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Detail)
	}
	r.PATCH("/orders/:id", crewOrAdmin, orderCtrl.Patch)
	r.DELETE("/orders/:id", adminOnly, orderCtrl.Delete)

	// Admin profile management
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/profiles/:userId", profileCtrl.AdminGet)
		admin.PUT("/profiles/:userId", profileCtrl.AdminUpdate)
	}
}
