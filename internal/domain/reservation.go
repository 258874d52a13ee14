package domain

import (
	"math/bits"
	"time"
)

// CancelNoticePeriod is the minimum notice, in seconds, required
// between cancellation and the slot's start. The boundary is
// inclusive: cancelling exactly this long before the start succeeds.
const CancelNoticePeriod int64 = 24 * 60 * 60

// Reservation records a user's claim on a time slot together with the
// proof-of-booking token minted for it. Price is the amount actually
// paid at booking time; cancellation fees are always computed from it,
// never from a slot's current price.
type Reservation struct {
	Address    string    `json:"address"`
	Experience string    `json:"experience"`
	User       string    `json:"user"`
	TimeSlot   int64     `json:"time_slot"`
	NFTMint    string    `json:"nft_mint"`
	StartTime  int64     `json:"start_time"`
	EndTime    int64     `json:"end_time"`
	Price      int64     `json:"price"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CancellationFee returns floor(price * feePercent / 100) using a
// 128-bit intermediate so large prices cannot overflow.
func CancellationFee(price, feePercent int64) int64 {
	hi, lo := bits.Mul64(uint64(price), uint64(feePercent))
	quo, _ := bits.Div64(hi, lo, 100)
	return int64(quo)
}
