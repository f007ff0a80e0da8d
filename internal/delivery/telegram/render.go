package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ozdilmelih/FlagGame/internal/color"
	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
)

// Palette holds the badge emoji derived from the configured hex colors.
type Palette struct {
	Badge string
	Wrong string
}

// NewPalette maps hex colors to the closest square emoji.
func NewPalette(badgeHex, wrongHex string) Palette {
	return Palette{
		Badge: color.Square(color.ParseHex(badgeHex)),
		Wrong: color.Square(color.ParseHex(wrongHex)),
	}
}

// renderState renders whatever screen matches the session phase.
func (h *Handler) renderState(state entities.SessionState) (string, tgbotapi.InlineKeyboardMarkup) {
	switch state.Phase {
	case entities.PhaseAwaitingAnswer:
		return h.renderRound(state), buildRoundKeyboard(state.Round, state.Choices)
	case entities.PhaseGameOver:
		return h.renderGameOver(state.Score), buildPlayKeyboard(btnPlayAgain)
	default:
		return msgNoGame, buildPlayKeyboard(btnPlay)
	}
}

// renderRound renders the prompt of the current round.
func (h *Handler) renderRound(state entities.SessionState) string {
	return fmt.Sprintf(
		"Choose the flag of\n<b>%s</b>\n\n%s Remaining 🏳: %d\n%s Result: %d",
		esc(state.Choices.Correct().Name),
		h.palette.Badge,
		state.RemainingFlags(h.game.RoundSize()),
		h.palette.Badge,
		state.Score,
	)
}

// renderWrongAnswer renders the screen shown after a wrong pick.
func (h *Handler) renderWrongAnswer(correct entities.Country) string {
	return fmt.Sprintf(
		"%s The correct answer was:\n\n%s <b>%s</b>",
		h.palette.Wrong,
		correct.Flag(),
		esc(correct.Name),
	)
}

// renderGameOver renders the final score.
func (h *Handler) renderGameOver(score int) string {
	return fmt.Sprintf(
		"%s Your score is: <b>%d</b>\n\nTap the button to play again.",
		h.palette.Wrong,
		score,
	)
}

// renderScore renders the /score reply.
func (h *Handler) renderScore(state entities.SessionState) string {
	if state.Phase == entities.PhaseGameOver {
		return h.renderGameOver(state.Score)
	}
	return fmt.Sprintf(
		"%s Result: %d\n%s Remaining 🏳: %d",
		h.palette.Badge,
		state.Score,
		h.palette.Badge,
		state.RemainingFlags(h.game.RoundSize()),
	)
}
