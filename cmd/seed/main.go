package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	bookingerrors "fitbook/internal/bookings/errors"
	bookingrepo "fitbook/internal/bookings/repository"
	classrepo "fitbook/internal/classes/repository"
	"fitbook/pkg/config"
	"fitbook/pkg/model"
)

const JobName = "seed"

var classNames = map[model.ClassType][]string{
	model.ClassTypeYoga:    {"Morning Yoga", "Power Yoga", "Relaxation Yoga", "Yoga for Beginners"},
	model.ClassTypeZumba:   {"Zumba Dance", "Zumba Fitness", "High Energy Zumba"},
	model.ClassTypeHIIT:    {"HIIT Workout", "Intense HIIT", "HIIT for Weight Loss"},
	model.ClassTypePilates: {"Core Pilates", "Pilates for Flexibility", "Power Pilates"},
	model.ClassTypeCycling: {"Cycling Class", "Spin Session", "Endurance Cycling"},
}

var instructors = []string{
	"John Smith", "Jane Doe", "Alice Johnson", "Bob Williams",
	"Eva Brown", "Michael Davis", "Sophia Wilson", "Ethan Taylor",
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer",
	"Michael", "Linda", "William", "Elizabeth", "David", "Barbara",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis",
	"Miller", "Wilson", "Moore", "Taylor", "Anderson", "Thomas",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Seeding database", "database", cfg.MongoDatabaseName)

	classes := classrepo.NewMongoClassRepository(cfg)
	bookings := bookingrepo.NewMongoBookingRepository(cfg)

	if err := bookings.DeleteAll(ctx); err != nil {
		cfg.Log.Fatal("Failed to clear bookings", "error", err)
	}
	if err := classes.DeleteAll(ctx); err != nil {
		cfg.Log.Fatal("Failed to clear classes", "error", err)
	}

	seeded, err := seedClasses(ctx, classes)
	if err != nil {
		cfg.Log.Fatal("Failed to seed classes", "error", err)
	}
	fmt.Printf("Created %d fitness classes\n", len(seeded))

	bookingCount, err := seedBookings(ctx, classes, bookings, seeded)
	if err != nil {
		cfg.Log.Fatal("Failed to seed bookings", "error", err)
	}
	fmt.Printf("Created %d bookings\n", bookingCount)

	fmt.Println("Successfully seeded database!")
}

// seedClasses creates 3 to 5 classes per day for the next 14 days, at
// random times between 06:00 and 20:45 on quarter-hour boundaries.
func seedClasses(ctx context.Context, classes classrepo.ClassRepository) ([]*model.FitnessClass, error) {
	types := model.ClassTypes()
	minutes := []int{0, 15, 30, 45}
	now := time.Now().UTC()

	var seeded []*model.FitnessClass
	for day := 1; day <= 14; day++ {
		perDay := 3 + rand.Intn(3)
		for i := 0; i < perDay; i++ {
			classType := types[rand.Intn(len(types))]
			names := classNames[classType]

			base := now.AddDate(0, 0, day)
			start := time.Date(
				base.Year(), base.Month(), base.Day(),
				6+rand.Intn(15), minutes[rand.Intn(len(minutes))], 0, 0,
				time.UTC,
			)

			totalSlots := 10 + rand.Intn(21)
			class := &model.FitnessClass{
				Name:           names[rand.Intn(len(names))],
				ClassType:      classType,
				StartTime:      start,
				Instructor:     instructors[rand.Intn(len(instructors))],
				TotalSlots:     totalSlots,
				AvailableSlots: totalSlots,
			}

			if err := classes.Create(ctx, class); err != nil {
				return nil, err
			}
			seeded = append(seeded, class)
		}
	}

	return seeded, nil
}

// seedBookings adds up to 15 random bookings per class. Duplicate
// client/class pairs are skipped rather than retried, mirroring how real
// traffic would land.
func seedBookings(
	ctx context.Context,
	classes classrepo.ClassRepository,
	bookings bookingrepo.BookingRepository,
	seeded []*model.FitnessClass,
) (int, error) {
	count := 0

	for _, class := range seeded {
		attempts := rand.Intn(min(16, class.TotalSlots+1))
		for i := 0; i < attempts; i++ {
			if !class.HasAvailableSlots() {
				break
			}

			first := firstNames[rand.Intn(len(firstNames))]
			last := lastNames[rand.Intn(len(lastNames))]

			booking := &model.Booking{
				ClassID:     class.ID,
				ClientName:  first + " " + last,
				ClientEmail: fmt.Sprintf("%s.%s@%s",
					strings.ToLower(first),
					strings.ToLower(last),
					emailDomains[rand.Intn(len(emailDomains))],
				),
			}

			if err := bookings.Create(ctx, booking); err != nil {
				if errors.Is(err, bookingerrors.ErrDuplicate) {
					continue
				}
				return count, err
			}

			if err := classes.DecrementSlot(ctx, class.ID); err != nil {
				return count, err
			}
			class.AvailableSlots--
			count++
		}
	}

	return count, nil
}
