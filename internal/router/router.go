package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateExperience(c *ginext.Context)
	GetExperience(c *ginext.Context)
	ListExperiences(c *ginext.Context)
	AddSlot(c *ginext.Context)
	BookSlot(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	RebookReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	CreateAccount(c *ginext.Context)
	GetAccount(c *ginext.Context)
	ListAccounts(c *ginext.Context)
	Deposit(c *ginext.Context)
	GetAccountReservations(c *ginext.Context)
	GetAccountTokens(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Experiences
		api.POST("/experiences", h.CreateExperience)
		api.GET("/experiences", h.ListExperiences)
		api.GET("/experiences/:address", h.GetExperience)
		api.POST("/experiences/:address/slots", h.AddSlot)

		// Reservations
		api.POST("/experiences/:address/book", h.BookSlot)
		api.GET("/reservations/:address", h.GetReservation)
		api.POST("/reservations/:address/cancel", h.CancelReservation)
		api.POST("/reservations/:address/rebook", h.RebookReservation)

		// Accounts
		api.POST("/accounts", h.CreateAccount)
		api.GET("/accounts", h.ListAccounts)
		api.GET("/accounts/:id", h.GetAccount)
		api.POST("/accounts/:id/deposit", h.Deposit)
		api.GET("/accounts/:id/reservations", h.GetAccountReservations)
		api.GET("/accounts/:id/tokens", h.GetAccountTokens)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
