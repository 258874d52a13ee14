package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/handler/dto"
	"github.com/JkrishnaD/BookAndMint/internal/middleware"
)

type ExperienceSvc interface {
	Create(ctx context.Context, input domain.CreateExperienceInput) (*domain.Experience, error)
	AddSlot(ctx context.Context, input domain.AddSlotInput) (*domain.TimeSlot, error)
	GetDetails(ctx context.Context, address string) (*domain.ExperienceDetails, error)
	List(ctx context.Context) ([]*domain.Experience, error)
}

type ReservationSvc interface {
	Book(ctx context.Context, experience string, startTime int64, user string) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservation, user string) error
	Update(ctx context.Context, reservation, user string, newStartTime int64) error
	Get(ctx context.Context, address string) (*domain.Reservation, error)
	ListByUser(ctx context.Context, user string) ([]*domain.Reservation, error)
}

type AccountSvc interface {
	Create(ctx context.Context, input domain.CreateAccountInput) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Deposit(ctx context.Context, id string, amount int64) error
	ListTokens(ctx context.Context, owner string) ([]*domain.Token, error)
}

type Handler struct {
	experienceService  ExperienceSvc
	reservationService ReservationSvc
	accountService     AccountSvc
}

func NewHandler(experienceService ExperienceSvc, reservationService ReservationSvc, accountService AccountSvc) *Handler {
	return &Handler{
		experienceService:  experienceService,
		reservationService: reservationService,
		accountService:     accountService,
	}
}

// actor returns the authenticated principal or fails the request.
func (h *Handler) actor(c *ginext.Context) (string, bool) {
	actor := middleware.ActorFrom(c)
	if actor == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing " + middleware.ActorHeader + " header"})
		return "", false
	}
	return actor, true
}

// Experiences

func (h *Handler) CreateExperience(c *ginext.Context) {
	organiser, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateExperienceInput{
		Organiser:              organiser,
		Title:                  req.Title,
		Description:            req.Description,
		Location:               req.Location,
		PriceLamports:          req.PriceLamports,
		CancellationFeePercent: req.CancellationFeePercent,
	}

	exp, err := h.experienceService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExperienceResponse(exp))
}

func (h *Handler) GetExperience(c *ginext.Context) {
	details, err := h.experienceService.GetDetails(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceDetailsResponse(details))
}

func (h *Handler) ListExperiences(c *ginext.Context) {
	experiences, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		resp = append(resp, dto.ToExperienceResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddSlot(c *ginext.Context) {
	organiser, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.experienceService.AddSlot(c.Request.Context(), domain.AddSlotInput{
		Experience: c.Param("address"),
		Organiser:  organiser,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Price:      req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

// Reservations

func (h *Handler) BookSlot(c *ginext.Context) {
	user, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.Book(c.Request.Context(), c.Param("address"), req.StartTime, user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	user, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), c.Param("address"), user); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) RebookReservation(c *ginext.Context) {
	user, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.RebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.Update(c.Request.Context(), c.Param("address"), user, req.NewStartTime); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rebooked"})
}

func (h *Handler) GetReservation(c *ginext.Context) {
	reservation, err := h.reservationService.Get(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// Accounts

func (h *Handler) CreateAccount(c *ginext.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), domain.CreateAccountInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *Handler) GetAccount(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *Handler) ListAccounts(c *ginext.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, dto.ToAccountResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Deposit(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.accountService.Deposit(c.Request.Context(), id, req.Amount); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deposited"})
}

func (h *Handler) GetAccountReservations(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	reservations, err := h.reservationService.ListByUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAccountTokens(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	tokens, err := h.accountService.ListTokens(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TokenResponse, 0, len(tokens))
	for _, tk := range tokens {
		resp = append(resp, dto.ToTokenResponse(tk))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrExperienceNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrInvalidReservation),
		errors.Is(err, domain.ErrTooLateToCancel),
		errors.Is(err, domain.ErrOverlap),
		errors.Is(err, domain.ErrCapacity),
		errors.Is(err, domain.ErrSlotExists),
		errors.Is(err, domain.ErrExperienceExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
