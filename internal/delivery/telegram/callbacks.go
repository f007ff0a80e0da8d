package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
	"github.com/ozdilmelih/FlagGame/internal/quiz"
	"github.com/ozdilmelih/FlagGame/internal/service"
	"github.com/ozdilmelih/FlagGame/internal/storage"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		h.notify(cb, "")
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionAnswer:
		h.handleAnswerCallback(ctx, cb, data)
	case actionContinue:
		h.handleContinueCallback(ctx, cb)
	case actionPlay:
		// Remove the user's "clock" first, the new round arrives as a new message.
		h.notify(cb, "")
		_ = h.withErrorHandling(h.handlePlay())(ctx, chatID)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		h.notify(cb, "")
	}
}

func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	chatID := cb.Message.Chat.ID

	round, index, err := data.answerParams()
	if err != nil {
		h.logger.Warn("invalid answer callback", zap.Error(err))
		h.notify(cb, "")
		return
	}

	outcome, state, err := h.game.Answer(ctx, chatID, round, index)
	if err != nil {
		h.notifyGameError(cb, err)
		return
	}

	var text string
	var kb tgbotapi.InlineKeyboardMarkup

	switch outcome.Kind {
	case entities.OutcomeIncorrect:
		h.notify(cb, noticeWrong)
		text, kb = h.renderWrongAnswer(outcome.Country), buildContinueKeyboard()
	default:
		h.notify(cb, noticeCorrect)
		text, kb = h.renderState(state)
	}

	_ = h.send(newHTMLEdit(chatID, cb.Message.MessageID, text, kb))
}

func (h *Handler) handleContinueCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID

	state, err := h.game.Continue(ctx, chatID)
	if err != nil {
		h.notifyGameError(cb, err)
		return
	}

	h.notify(cb, "")
	text, kb := h.renderState(state)
	_ = h.send(newHTMLEdit(chatID, cb.Message.MessageID, text, kb))
}

// notifyGameError turns a game service error into a toast. Taps on old keyboards
// are expected; anything else means the handler drove the engine wrongly.
func (h *Handler) notifyGameError(cb *tgbotapi.CallbackQuery, err error) {
	chatID := cb.Message.Chat.ID

	switch {
	case errors.Is(err, service.ErrStaleRound):
		h.logger.Warn("stale round tapped", zap.Int64("chat_id", chatID), zap.Error(err))
		h.notify(cb, noticeStaleRound)
	case errors.Is(err, quiz.ErrInvalidState):
		h.logger.Warn("tap in wrong phase", zap.Int64("chat_id", chatID), zap.Error(err))
		h.notify(cb, noticeAnswered)
	case errors.Is(err, storage.ErrSessionNotFound):
		h.notify(cb, noticeNoGame)
	default:
		h.logger.Error("game callback failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.notify(cb, noticeInternalErr)
	}
}
