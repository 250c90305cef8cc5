package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingerrors "fitbook/internal/bookings/errors"
	"fitbook/internal/bookings/events"
	bookingrepo "fitbook/internal/bookings/repository"
	"fitbook/internal/bookings/validator"
	classerrors "fitbook/internal/classes/errors"
	classrepo "fitbook/internal/classes/repository"
	"fitbook/pkg/config"
	apperrors "fitbook/pkg/errors"
	"fitbook/pkg/model"
	"fitbook/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Booking, error)
}

type bookingService struct {
	bookings  bookingrepo.BookingRepository
	classes   classrepo.ClassRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	bookings bookingrepo.BookingRepository,
	classes classrepo.ClassRepository,
	v *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		bookings:  bookings,
		classes:   classes,
		validator: v,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create books a slot in a class. The checks and the slot decrement run in
// one transaction, so a rejected request leaves both collections untouched
// and concurrent requests for the last slot cannot both succeed.
//
// Check order matters for error reporting: a client rebooking a class they
// already hold gets DUPLICATE_BOOKING even when the class is also full.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	req.ClientName = sanitizer.NormalizeName(req.ClientName)
	req.ClientEmail = sanitizer.NormalizeEmail(req.ClientEmail)

	if err := s.validator.Validate(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, apperrors.Validation("Booking request failed validation", validationErrs.Details())
		}
		return nil, apperrors.Internal("Failed to validate booking request", err)
	}

	booking := &model.Booking{
		ClassID:     req.ClassID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	}

	err := s.bookings.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		class, err := s.classes.FindByID(sessCtx, req.ClassID)
		if err != nil {
			if errors.Is(err, classerrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Class", req.ClassID)
			}
			return apperrors.Internal("Failed to load class", err)
		}

		if !class.IsUpcoming(time.Now().UTC()) {
			return apperrors.ClassAlreadyStarted()
		}

		exists, err := s.bookings.ExistsByClassAndEmail(sessCtx, req.ClassID, req.ClientEmail)
		if err != nil {
			return apperrors.Internal("Failed to check for existing booking", err)
		}
		if exists {
			return apperrors.DuplicateBooking()
		}

		if err := s.classes.DecrementSlot(sessCtx, req.ClassID); err != nil {
			if errors.Is(err, classerrors.ErrNoSlots) {
				return apperrors.NoAvailableSlots()
			}
			return apperrors.Internal("Failed to reserve slot", err)
		}

		if err := s.bookings.Create(sessCtx, booking); err != nil {
			if errors.Is(err, bookingerrors.ErrDuplicate) {
				return apperrors.DuplicateBooking()
			}
			return apperrors.Internal("Failed to create booking", err)
		}

		class.AvailableSlots--
		booking.Class = class
		return nil
	})
	if err != nil {
		s.cfg.Log.Warn("Booking rejected",
			"class_id", req.ClassID,
			"client_email", req.ClientEmail,
			"error", err,
		)
		return nil, err
	}

	s.cfg.Log.Info("Booking created",
		"booking_id", booking.ID,
		"class_id", booking.ClassID,
		"client_email", booking.ClientEmail,
	)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.publisher.BookingCreated(ctx, booking)
	}()

	return booking, nil
}

func (s *bookingService) ListByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("Email parameter is required").
			WithDetails(map[string]any{"field": "email"})
	}

	bookings, err := s.bookings.FindByEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "client_email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	if err := s.attachClassDetails(ctx, bookings); err != nil {
		s.cfg.Log.Error("Failed to load class details", "client_email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	s.cfg.Log.Info("Retrieved bookings", "client_email", email, "count", len(bookings))
	return bookings, nil
}

// attachClassDetails resolves the classes the bookings reference and embeds
// them, so list responses carry the same class snapshot create responses do.
func (s *bookingService) attachClassDetails(ctx context.Context, bookings []*model.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, booking := range bookings {
		if _, ok := seen[booking.ClassID]; ok {
			continue
		}
		seen[booking.ClassID] = struct{}{}
		ids = append(ids, booking.ClassID)
	}

	classes, err := s.classes.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[int64]*model.FitnessClass, len(classes))
	for _, class := range classes {
		byID[class.ID] = class
	}
	for _, booking := range bookings {
		booking.Class = byID[booking.ClassID]
	}
	return nil
}
