package domain

// Observable events emitted after an operation commits. They are flat
// records for external indexers and UIs; emission is best-effort and
// never part of the transactional contract.

type ExperienceCreated struct {
	Organiser  string  `json:"organiser"`
	Experience string  `json:"experience"`
	Title      string  `json:"title"`
}

type ReservationCreated struct {
	User        string  `json:"user"`
	Reservation string  `json:"reservation"`
	NFTMint     string  `json:"nft_mint"`
	StartTime   int64   `json:"start_time"`
}

type ReservationCancelled struct {
	User            string  `json:"user"`
	Reservation     string  `json:"reservation"`
	CancellationFee int64   `json:"cancellation_fee"`
}

type ReservationUpdated struct {
	User         string  `json:"user"`
	Reservation  string  `json:"reservation"`
	NewStartTime int64   `json:"new_start_time"`
}
