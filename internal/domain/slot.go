package domain

import "time"

// TimeSlot is one bookable interval of an experience. Times are epoch
// seconds; intervals are half-open [StartTime, EndTime) and pairwise
// disjoint within one experience.
type TimeSlot struct {
	Address    string    `json:"address"`
	Experience string    `json:"experience"`
	StartTime  int64     `json:"start_time"`
	EndTime    int64     `json:"end_time"`
	Price      int64     `json:"price"`
	IsBooked   bool      `json:"is_booked"`
	CreatedAt  time.Time `json:"created_at"`
}

// Overlaps reports whether the half-open intervals of s and other
// intersect.
func (s *TimeSlot) Overlaps(start, end int64) bool {
	return start < s.EndTime && end > s.StartTime
}

type AddSlotInput struct {
	Experience string
	Organiser  string
	StartTime  int64
	EndTime    int64
	Price      int64
}
