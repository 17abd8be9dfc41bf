package routes

import (
	"shopper-backend/controllers"
	"shopper-backend/middleware"
	"shopper-backend/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Auth      *services.AuthService
	Cart      *services.CartService
	Products  *services.ProductService
	Uploads   *services.UploadService
	DB        controllers.Pinger
	Metrics   *middleware.Metrics
	UploadDir string
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authCtrl := controllers.NewAuthController(deps.Auth)
	cartCtrl := controllers.NewCartController(deps.Cart)
	productCtrl := controllers.NewProductController(deps.Products)
	uploadCtrl := controllers.NewUploadController(deps.Uploads)
	healthCtrl := controllers.NewHealthController(deps.DB)

	router.GET("/", healthCtrl.Root)
	router.GET("/health", healthCtrl.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", deps.Metrics.Handler())
	}

	router.POST("/upload", uploadCtrl.Upload)
	router.Static("/images", deps.UploadDir)

	router.POST("/addproduct", productCtrl.AddProduct)
	router.POST("/removeproduct", productCtrl.RemoveProduct)
	router.GET("/allproducts", productCtrl.AllProducts)
	router.GET("/newcollections", productCtrl.NewCollections)
	router.GET("/popularinwomen", productCtrl.PopularInWomen)
	router.POST("/relatedproducts", productCtrl.RelatedProducts)

	router.POST("/signup", authCtrl.Signup)
	router.POST("/login", authCtrl.Login)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(deps.Auth))
	{
		auth.GET("/profile", authCtrl.Profile)
		auth.POST("/addtocart", cartCtrl.AddToCart)
		auth.POST("/removefromcart", cartCtrl.RemoveFromCart)
		auth.POST("/getcart", cartCtrl.GetCart)
	}
}
