package config

import (
	"os"
	"time"

	"LogoForge/internal/api/handlers"
	"LogoForge/internal/api/routes"
	"LogoForge/internal/middleware"
	"LogoForge/internal/utils"
	"LogoForge/internal/utils/generator"
	"LogoForge/internal/utils/storage"
	"LogoForge/pkg/brandkit"
	"LogoForge/pkg/checkout"
	"LogoForge/pkg/generation"
	"LogoForge/pkg/jwt"
	"LogoForge/pkg/logo"
	"LogoForge/pkg/payment"
	"LogoForge/pkg/product"
	"LogoForge/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	generatorClient := generator.NewClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	purchaseRepository := checkout.NewPurchaseRepository(db)
	logoRepository := logo.NewLogoRepository(db)
	brandKitRepository := brandkit.NewBrandKitRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	productService := product.NewProductService()
	paymentGateway := payment.NewPaymentGateway()
	generationGateway := generation.NewGenerationGateway(generatorClient)
	checkoutService := checkout.NewCheckoutService(
		purchaseRepository,
		userRepository,
		logoRepository,
		brandKitRepository,
		productService,
		paymentGateway,
	)
	logoService := logo.NewLogoService(logoRepository, generationGateway)
	brandKitService := brandkit.NewBrandKitService(brandKitRepository, logoRepository, generationGateway)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, validator)
	logoHandler := handlers.NewLogoHandler(logoService, validator)
	brandKitHandler := handlers.NewBrandKitHandler(brandKitService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ProductHandler:  productHandler,
		CheckoutHandler: checkoutHandler,
		LogoHandler:     logoHandler,
		BrandKitHandler: brandKitHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
