package main

import (
	"fitbook/internal/bookings/events"
	bookinghandler "fitbook/internal/bookings/handler"
	bookingrepo "fitbook/internal/bookings/repository"
	bookingservice "fitbook/internal/bookings/service"
	"fitbook/internal/bookings/validator"
	classhandler "fitbook/internal/classes/handler"
	classrepo "fitbook/internal/classes/repository"
	classservice "fitbook/internal/classes/service"
	"fitbook/pkg/app"
	"fitbook/pkg/config"
)

const ServiceName = "fitbook-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting fitness booking API")

	classService, bookingService, publisher := initServices(cfg)
	defer publisher.Close()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		classhandler.NewHealthHandler(cfg),
		classhandler.NewClassHandler(classService, cfg),
		bookinghandler.NewBookingHandler(bookingService, cfg),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) (classservice.ClassService, bookingservice.BookingService, events.Publisher) {
	classRepo := classrepo.NewMongoClassRepository(cfg)
	classService := classservice.NewClassService(classRepo, cfg)

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize booking event publisher", "error", err)
	}

	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := bookingrepo.NewMongoBookingRepository(cfg)
	bookingService := bookingservice.NewBookingService(
		bookingRepo,
		classRepo,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)
	return classService, bookingService, publisher
}
