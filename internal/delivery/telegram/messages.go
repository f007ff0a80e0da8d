// messages.go contains message templates for Telegram.

package telegram

const (
	msgWelcome = "👋 <b>Flag Quiz</b>\n\n" +
		"I name a country, you pick its flag out of three.\n" +
		"Every flag is asked at most once per game. Ready?"
	msgHelp = "/play - start a new game\n" +
		"/score - show the current score\n" +
		"/help - show this message"
	msgUnknownCommand = "Unknown command.\n\n" + msgHelp
	msgInternalError  = "Something went wrong. Please try again later."
	msgNoGame         = "There is no game in progress. Send /play to start one."
)

// Callback notices shown as a toast.
const (
	noticeCorrect     = "✅ Correct!"
	noticeWrong       = "❌ Wrong!"
	noticeStaleRound  = "This round is already over."
	noticeAnswered    = "You have already answered."
	noticeNoGame      = "No game in progress. Send /play."
	noticeInternalErr = "Something went wrong."
)

// Button labels.
const (
	btnPlay      = "▶️ Play"
	btnPlayAgain = "🔄 Play again"
	btnContinue  = "➡️ Continue"
)
