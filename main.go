package main

import (
	"log"

	"github.com/hotelhub/booking-service/config"
	"github.com/hotelhub/booking-service/internal/handler"
	"github.com/hotelhub/booking-service/internal/metrics"
	"github.com/hotelhub/booking-service/internal/middleware"
	"github.com/hotelhub/booking-service/internal/repository"
	"github.com/hotelhub/booking-service/internal/service"
	"github.com/hotelhub/booking-service/pkg/cache"
	"github.com/hotelhub/booking-service/pkg/database"
	"github.com/hotelhub/booking-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	hints := cache.NewAvailabilityCache(rdb)

	// Repositories
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	hotelSvc := service.NewHotelService(hotelRepo, publisher)
	roomSvc := service.NewRoomService(roomRepo, hotelRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, publisher, hints)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(metrics.Middleware)
	e.Use(middleware.Identity)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "booking-service"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewHotelHandler(hotelSvc).RegisterRoutes(e)
	handler.NewRoomHandler(roomSvc, bookingSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
