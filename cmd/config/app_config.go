package config

import (
	"os"
	"time"

	"Fridgify-Backend/internal/api/handlers"
	"Fridgify-Backend/internal/api/routes"
	"Fridgify-Backend/internal/middleware"
	"Fridgify-Backend/internal/utils"
	"Fridgify-Backend/internal/utils/storage"
	"Fridgify-Backend/pkg/cart"
	"Fridgify-Backend/pkg/fridge"
	"Fridgify-Backend/pkg/jwt"
	"Fridgify-Backend/pkg/notification"
	"Fridgify-Backend/pkg/product"
	"Fridgify-Backend/pkg/qr"
	"Fridgify-Backend/pkg/statistic"
	"Fridgify-Backend/pkg/user"

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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	productRepository := product.NewProductRepository(db)
	cartRepository := cart.NewCartRepository(db)
	statisticRepository := statistic.NewStatisticRepository(db)

	// Service
	jwtService := jwt.NewJWTService(
		utils.GetConfig("JWT_SECRET"),
		utils.GetConfig("JWT_REFRESH_SECRET"),
	)
	userService := user.NewUserService(userRepository, jwtService)
	fridgeService := fridge.NewFridgeService(fridgeRepository)
	productService := product.NewProductService(productRepository)
	cartService := cart.NewCartService(cartRepository)
	statisticService := statistic.NewStatisticService(statisticRepository)
	qrService := qr.NewQRService(s3)
	notificationService := notification.NewNotificationService(productRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	statisticHandler := handlers.NewStatisticHandler(statisticService, validator)
	qrHandler := handlers.NewQRHandler(qrService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FridgeHandler:       fridgeHandler,
		ProductHandler:      productHandler,
		CartHandler:         cartHandler,
		StatisticHandler:    statisticHandler,
		QRHandler:           qrHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
