package routes

import (
	"LogoForge/internal/api/handlers"
	"LogoForge/internal/middleware"
	"LogoForge/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ProductHandler  handlers.ProductHandler
	CheckoutHandler handlers.CheckoutHandler
	LogoHandler     handlers.LogoHandler
	BrandKitHandler handlers.BrandKitHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Products()
	c.Checkout()
	c.Logos()
	c.BrandKits()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	{
		products.Get("", c.ProductHandler.GetProducts)
		products.Get("/:id", c.ProductHandler.GetProduct)
	}
}

func (c *Config) Checkout() {
	checkout := c.App.Group("/api/v1/checkout", c.Middleware.AuthMiddleware(c.JWTService))
	{
		checkout.Post("", c.CheckoutHandler.CreateCheckout)
		checkout.Get("/verify", c.CheckoutHandler.VerifyPayment)
	}

	purchases := c.App.Group("/api/v1/purchases", c.Middleware.AuthMiddleware(c.JWTService))
	{
		purchases.Get("/dashboard", c.CheckoutHandler.GetDashboardStats)
		purchases.Get("", c.CheckoutHandler.GetPurchases)
		purchases.Get("/completed", c.CheckoutHandler.GetCompletedPurchases)
	}
}

func (c *Config) Logos() {
	logos := c.App.Group("/api/v1/logos", c.Middleware.AuthMiddleware(c.JWTService))
	{
		logos.Post("/preview", c.LogoHandler.Preview)
		logos.Post("/generate", c.LogoHandler.Generate)
		logos.Get("", c.LogoHandler.GetLogos)
		logos.Get("/:id", c.LogoHandler.GetLogo)
		logos.Post("/:id/regenerate", c.LogoHandler.Regenerate)
	}
}

func (c *Config) BrandKits() {
	brandKits := c.App.Group("/api/v1/brand-kits", c.Middleware.AuthMiddleware(c.JWTService))
	{
		brandKits.Post("", c.BrandKitHandler.Generate)
		brandKits.Get("", c.BrandKitHandler.GetBrandKits)
		brandKits.Get("/:id", c.BrandKitHandler.GetBrandKit)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/payment", c.CheckoutHandler.PaymentWebhook)
}
