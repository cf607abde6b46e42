package main

import (
	"context"
	"log"
	"time"

	"github.com/bhanu75/Event-booking/config"
	"github.com/bhanu75/Event-booking/internal/clock"
	"github.com/bhanu75/Event-booking/internal/handler"
	"github.com/bhanu75/Event-booking/internal/middleware"
	"github.com/bhanu75/Event-booking/internal/notify"
	"github.com/bhanu75/Event-booking/internal/repository"
	"github.com/bhanu75/Event-booking/internal/service"
	"github.com/bhanu75/Event-booking/pkg/database"
	"github.com/bhanu75/Event-booking/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	// Record store: Postgres when configured, in-memory otherwise.
	var (
		userRepo    repository.UserRepository
		eventRepo   repository.EventRepository
		bookingRepo repository.BookingRepository
	)
	if cfg.DatabaseURL != "" {
		db := database.NewPostgresDB(cfg.DatabaseURL)
		userRepo = repository.NewPostgresUserRepository(db)
		eventRepo = repository.NewPostgresEventRepository(db)
		bookingRepo = repository.NewPostgresBookingRepository(db)
		log.Println("using postgres record store")
	} else {
		userRepo = repository.NewMemoryUserRepository()
		eventRepo = repository.NewMemoryEventRepository()
		bookingRepo = repository.NewMemoryBookingRepository()
		log.Println("using in-memory record store")
	}

	// Notification sink: RabbitMQ when configured, log-backed email otherwise.
	var sink notify.Sink = notify.NewEmailSink()
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer pub.Close()
		sink = notify.NewAMQPSink(pub)
	}

	dispatcher := notify.NewDispatcher(sink, cfg.NotifyWorkers, cfg.NotifyQueueSize)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := dispatcher.Shutdown(ctx); err != nil {
			log.Printf("dispatcher shutdown: %v", err)
		}
	}()

	// Services
	clk := clock.NewSystem()
	locks := service.NewEventLocks()
	userSvc := service.NewUserService(userRepo, clk)
	eventSvc := service.NewEventService(eventRepo, bookingRepo, locks, clk, dispatcher)
	bookingSvc := service.NewBookingService(bookingRepo, eventRepo, userRepo, locks, clk, dispatcher)
	querySvc := service.NewQueryService(bookingRepo, eventRepo, userRepo)

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

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "event-booking"})
	})

	handler.NewUserHandler(userSvc).RegisterRoutes(e)
	handler.NewEventHandler(eventSvc, querySvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc, querySvc).RegisterRoutes(e)

	log.Printf("Event Booking starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
