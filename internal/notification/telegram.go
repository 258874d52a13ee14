package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/service/ports"
)

// TelegramNotifier delivers booking events to users over Telegram.
// Delivery is best effort: failures are logged and never surface back
// into the operation that emitted the event.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	accounts ports.AccountRepo
	logger   logger.Logger
}

func NewTelegramNotifier(token string, accounts ports.AccountRepo, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, accounts: accounts, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, accounts: accounts, logger: logger}, nil
}

func (n *TelegramNotifier) ExperienceCreated(ctx context.Context, ev domain.ExperienceCreated) {
	text := fmt.Sprintf(
		"*Experience published!*\n\n"+"Title: %s\n"+"Address: %s",
		ev.Title, ev.Experience,
	)
	n.sendTo(ctx, ev.Organiser, text)
}

func (n *TelegramNotifier) ReservationCreated(ctx context.Context, ev domain.ReservationCreated) {
	text := fmt.Sprintf(
		"*Slot booked!*\n\n"+"Starts at (UTC): %s\n"+"Proof-of-booking token: %s",
		time.Unix(ev.StartTime, 0).UTC().Format("02.01.2006 15:04"),
		ev.NFTMint,
	)
	n.sendTo(ctx, ev.User, text)
}

func (n *TelegramNotifier) ReservationCancelled(ctx context.Context, ev domain.ReservationCancelled) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\n"+"Cancellation fee charged: %d lamports",
		ev.CancellationFee,
	)
	n.sendTo(ctx, ev.User, text)
}

func (n *TelegramNotifier) ReservationUpdated(ctx context.Context, ev domain.ReservationUpdated) {
	text := fmt.Sprintf(
		"*Reservation moved*\n\n"+"New start time (UTC): %s",
		time.Unix(ev.NewStartTime, 0).UTC().Format("02.01.2006 15:04"),
	)
	n.sendTo(ctx, ev.User, text)
}

// CancellationDeadline warns the user that the free-cancellation
// window on the reservation is about to close.
func (n *TelegramNotifier) CancellationDeadline(ctx context.Context, rv *domain.Reservation) {
	deadline := rv.StartTime - domain.CancelNoticePeriod
	text := fmt.Sprintf(
		"*Cancellation deadline approaching*\n\n"+"Reservation: %s\n"+"Cancel before (UTC): %s to avoid losing the booking window.",
		rv.Address,
		time.Unix(deadline, 0).UTC().Format("02.01.2006 15:04"),
	)
	n.sendTo(ctx, rv.User, text)
}

func (n *TelegramNotifier) sendTo(ctx context.Context, accountID string, text string) {
	account, err := n.accounts.GetByID(ctx, accountID)
	if err != nil {
		n.logger.Debug("notification skipped (account lookup failed)",
			logger.String("account_id", accountID),
			logger.String("error", err.Error()),
		)
		return
	}
	n.send(ctx, account.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
