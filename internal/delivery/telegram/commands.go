package telegram

import (
	"context"
	"errors"

	"github.com/ozdilmelih/FlagGame/internal/storage"
)

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildPlayKeyboard(btnPlay)
		return h.send(msg)
	}
}

// handlePlay starts a new game and sends its first round as a new message.
func (h *Handler) handlePlay() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.game.Start(ctx, chatID)
		if err != nil {
			return err
		}

		text, kb := h.renderState(state)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleScore() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.game.State(ctx, chatID)
		if errors.Is(err, storage.ErrSessionNotFound) {
			return h.send(newHTMLMessage(chatID, msgNoGame))
		}
		if err != nil {
			return err
		}

		return h.send(newHTMLMessage(chatID, h.renderScore(state)))
	}
}
