package model

import "time"

// Booking is a confirmed reservation of one slot. Immutable once created;
// (ClassID, ClientEmail) is unique across the ledger.
type Booking struct {
	ID          int64     `json:"id" bson:"_id"`
	ClassID     int64     `json:"fitness_class" bson:"class_id"`
	ClientName  string    `json:"client_name" bson:"client_name"`
	ClientEmail string    `json:"client_email" bson:"client_email"`
	BookingTime time.Time `json:"booking_time" bson:"booking_time"`

	// Class carries the session snapshot in responses; never persisted.
	Class *FitnessClass `json:"class_details,omitempty" bson:"-"`
}

// BookingRequest is the body of POST /book/.
type BookingRequest struct {
	ClassID     int64  `json:"class_id" validate:"required,min=1"`
	ClientName  string `json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email,max=254"`
}
