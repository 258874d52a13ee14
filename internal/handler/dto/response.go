package dto

import (
	"time"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

type ExperienceResponse struct {
	Address                string  `json:"address"`
	Organiser              string  `json:"organiser"`
	Title                  string  `json:"title"`
	Description            string  `json:"description"`
	Location               *string `json:"location,omitempty"`
	PriceLamports          int64   `json:"price_lamports"`
	CancellationFeePercent int64   `json:"cancellation_fee_percent"`
	SlotCount              int     `json:"slot_count"`
	CreatedAt              string  `json:"created_at"`
}

type ExperienceDetailsResponse struct {
	Experience ExperienceResponse `json:"experience"`
	Slots      []SlotResponse     `json:"slots"`
}

type SlotResponse struct {
	Address   string `json:"address"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
	Price     int64  `json:"price"`
	IsBooked  bool   `json:"is_booked"`
}

type ReservationResponse struct {
	Address    string `json:"address"`
	Experience string `json:"experience"`
	User       string `json:"user"`
	NFTMint    string `json:"nft_mint"`
	StartTime  int64  `json:"start_time"`
	EndTime    int64  `json:"end_time"`
	Price      int64  `json:"price"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

type AccountResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	Balance        int64  `json:"balance"`
	CreatedAt      string `json:"created_at"`
}

type AttributeResponse struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type TokenResponse struct {
	ID         string              `json:"id"`
	Owner      string              `json:"owner"`
	Name       string              `json:"name,omitempty"`
	Symbol     string              `json:"symbol,omitempty"`
	URI        string              `json:"uri,omitempty"`
	Attributes []AttributeResponse `json:"attributes,omitempty"`
	CreatedAt  string              `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToExperienceResponse(e *domain.Experience) ExperienceResponse {
	return ExperienceResponse{
		Address:                e.Address,
		Organiser:              e.Organiser,
		Title:                  e.Title,
		Description:            e.Description,
		Location:               e.Location,
		PriceLamports:          e.PriceLamports,
		CancellationFeePercent: e.CancellationFeePercent,
		SlotCount:              e.SlotCount,
		CreatedAt:              e.CreatedAt.Format(time.RFC3339),
	}
}

func ToExperienceDetailsResponse(d *domain.ExperienceDetails) ExperienceDetailsResponse {
	slots := make([]SlotResponse, 0, len(d.Slots))
	for _, s := range d.Slots {
		slots = append(slots, ToSlotResponse(&s))
	}

	return ExperienceDetailsResponse{
		Experience: ToExperienceResponse(&d.Experience),
		Slots:      slots,
	}
}

func ToSlotResponse(s *domain.TimeSlot) SlotResponse {
	return SlotResponse{
		Address:   s.Address,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Price:     s.Price,
		IsBooked:  s.IsBooked,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		Address:    r.Address,
		Experience: r.Experience,
		User:       r.User,
		NFTMint:    r.NFTMint,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Price:      r.Price,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		Username:       a.Username,
		TelegramChatID: a.TelegramChatID,
		Balance:        a.Balance,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

func ToTokenResponse(t *domain.Token) TokenResponse {
	resp := TokenResponse{
		ID:        t.ID,
		Owner:     t.Owner,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}

	if t.Metadata != nil {
		resp.Name = t.Metadata.Name
		resp.Symbol = t.Metadata.Symbol
		resp.URI = t.Metadata.URI
		for _, a := range t.Metadata.Attributes {
			resp.Attributes = append(resp.Attributes, AttributeResponse{
				TraitType: a.TraitType,
				Value:     a.Value,
			})
		}
	}

	return resp
}
