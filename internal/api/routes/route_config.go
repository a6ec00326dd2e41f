package routes

import (
	"Fridgify-Backend/internal/api/handlers"
	"Fridgify-Backend/internal/middleware"
	"Fridgify-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FridgeHandler       handlers.FridgeHandler
	ProductHandler      handlers.ProductHandler
	CartHandler         handlers.CartHandler
	StatisticHandler    handlers.StatisticHandler
	QRHandler           handlers.QRHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

// Paths match what the mobile app and chat bot already call.
func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Fridges()
	c.Products()
	c.Cart()
	c.Statistics()
	c.QR()
	c.GuestRoute()
}

func (c *Config) User() {
	c.App.Post("/registration", c.UserHandler.Register)
	c.App.Post("/auth", c.UserHandler.Login)
	c.App.Post("/refresh", c.UserHandler.Refresh)
	c.App.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
}

func (c *Config) Fridges() {
	c.App.Post("/newfridge", c.FridgeHandler.CreateFridge)
	c.App.Get("/fridges/:user_id", c.FridgeHandler.GetFridges)
	c.App.Delete("/fridges/:user_id/:fridge_id", c.FridgeHandler.DeleteFridge)
}

func (c *Config) Products() {
	c.App.Post("/new-product", c.ProductHandler.CreateProduct)
	c.App.Get("/fridge/:fridge_id", c.ProductHandler.GetProductsByFridge)
	c.App.Delete("/product/:product_id", c.ProductHandler.DeleteProduct)
	c.App.Post("/notify-expiring/:user_id", c.NotificationHandler.NotifyExpiring)
}

func (c *Config) Cart() {
	c.App.Post("/shopping/:user_id", c.CartHandler.AddCartItem)
	c.App.Get("/shopping/:user_id", c.CartHandler.GetCartItems)
	c.App.Delete("/shopping/:user_id/:item_id", c.CartHandler.RemoveCartItem)
}

func (c *Config) Statistics() {
	c.App.Get("/top-products/:user_id", c.StatisticHandler.GetTopProducts)
	c.App.Post("/update-product/:user_id", c.StatisticHandler.UpdateStatistic)
}

func (c *Config) QR() {
	c.App.Post("/qr", c.QRHandler.GenerateQR)
	c.App.Post("/qr/upload", c.QRHandler.UploadQR)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
