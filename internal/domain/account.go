package domain

import "time"

// Account is a principal on the value ledger: an organiser receiving
// payments or a user paying for reservations. Balance is in lamports
// and never goes negative.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	Balance        int64     `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateAccountInput struct {
	Username       string
	TelegramChatID *int64
}
