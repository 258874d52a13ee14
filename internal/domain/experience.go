package domain

import "time"

const (
	MaxTitleLen               = 32
	MaxDescriptionLen         = 256
	MaxLocationLen            = 64
	MaxCancellationFeePercent = 100
	MaxSlotsPerExperience     = 10
)

// Experience is a bookable offering published by an organiser. The
// address is derived from (organiser, title) and is immutable, as is
// the organiser; only SlotCount changes after creation.
type Experience struct {
	Address                string    `json:"address"`
	Organiser              string    `json:"organiser"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	Location               *string   `json:"location,omitempty"`
	PriceLamports          int64     `json:"price_lamports"`
	CancellationFeePercent int64     `json:"cancellation_fee_percent"`
	SlotCount              int       `json:"slot_count"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type ExperienceDetails struct {
	Experience Experience `json:"experience"`
	Slots      []TimeSlot `json:"slots"`
}

type CreateExperienceInput struct {
	Organiser              string
	Title                  string
	Description            string
	Location               *string
	PriceLamports          int64
	CancellationFeePercent int64
}
