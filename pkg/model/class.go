package model

import "time"

type ClassType string

const (
	ClassTypeYoga    ClassType = "YOGA"
	ClassTypeZumba   ClassType = "ZUMBA"
	ClassTypeHIIT    ClassType = "HIIT"
	ClassTypePilates ClassType = "PILATES"
	ClassTypeCycling ClassType = "CYCLING"
)

func ClassTypes() []ClassType {
	return []ClassType{
		ClassTypeYoga,
		ClassTypeZumba,
		ClassTypeHIIT,
		ClassTypePilates,
		ClassTypeCycling,
	}
}

// FitnessClass is one scheduled session with a fixed capacity.
// Invariant: 0 <= AvailableSlots <= TotalSlots, enforced by the atomic
// decrement in the repository and by the collection validator.
type FitnessClass struct {
	ID             int64     `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	ClassType      ClassType `json:"class_type" bson:"class_type" validate:"required,oneof=YOGA ZUMBA HIIT PILATES CYCLING"`
	StartTime      time.Time `json:"datetime" bson:"datetime" validate:"required"`
	Instructor     string    `json:"instructor" bson:"instructor" validate:"required,min=2,max=100"`
	TotalSlots     int       `json:"total_slots" bson:"total_slots" validate:"min=0"`
	AvailableSlots int       `json:"available_slots" bson:"available_slots" validate:"min=0,ltefield=TotalSlots"`
	CreatedAt      time.Time `json:"-" bson:"created_at"`
	UpdatedAt      time.Time `json:"-" bson:"updated_at"`
}

// IsUpcoming reports whether the class starts strictly after now.
func (c *FitnessClass) IsUpcoming(now time.Time) bool {
	return c.StartTime.After(now)
}

func (c *FitnessClass) HasAvailableSlots() bool {
	return c.AvailableSlots > 0
}

// TimezoneShiftRequest is the body of POST /timezone/.
type TimezoneShiftRequest struct {
	Timezone string `json:"timezone"`
}
