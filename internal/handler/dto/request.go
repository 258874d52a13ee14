package dto

type CreateExperienceRequest struct {
	Title                  string  `json:"title" binding:"required"`
	Description            string  `json:"description"`
	Location               *string `json:"location"`
	PriceLamports          int64   `json:"price_lamports" binding:"required,gt=0"`
	CancellationFeePercent int64   `json:"cancellation_fee_percent" binding:"min=0,max=100"`
}

type AddSlotRequest struct {
	StartTime int64 `json:"start_time" binding:"required,gt=0"`
	EndTime   int64 `json:"end_time" binding:"required,gt=0"`
	Price     int64 `json:"price" binding:"required,gt=0"`
}

type BookRequest struct {
	StartTime int64 `json:"start_time" binding:"required,gt=0"`
}

type RebookRequest struct {
	NewStartTime int64 `json:"new_start_time" binding:"required,gt=0"`
}

type CreateAccountRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
