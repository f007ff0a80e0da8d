package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
)

// BotAPI is the subset of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type GameService interface {
	RoundSize() int
	Start(ctx context.Context, chatID int64) (entities.SessionState, error)
	Answer(ctx context.Context, chatID int64, round, choiceIndex int) (entities.AnswerOutcome, entities.SessionState, error)
	Continue(ctx context.Context, chatID int64) (entities.SessionState, error)
	State(ctx context.Context, chatID int64) (entities.SessionState, error)
}
