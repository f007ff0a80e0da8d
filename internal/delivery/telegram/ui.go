package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
)

// buildRoundKeyboard builds one flag button per row for the current round.
func buildRoundKeyboard(round int, choices entities.RoundChoices) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(choices.Options))
	for i, c := range choices.Options {
		button := tgbotapi.NewInlineKeyboardButtonData(c.Flag(), buildAnswerCallback(round, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildContinueKeyboard builds keyboard for the wrong answer screen.
func buildContinueKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnContinue, buildContinueCallback()),
		),
	)
}

// buildPlayKeyboard builds keyboard with a single start button.
func buildPlayKeyboard(label string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildPlayCallback()),
		),
	)
}
