package entities

// Phase is the state of a quiz session.
type Phase int

const (
	PhaseUnknown Phase = iota
	PhaseAwaitingAnswer
	PhaseShowingWrongAnswer
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseShowingWrongAnswer:
		return "showing_wrong_answer"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RoundChoices holds the options shown in one round and the index of the right one.
type RoundChoices struct {
	Options      []Country
	CorrectIndex int
}

// Correct returns the country the player is asked about.
func (rc RoundChoices) Correct() Country {
	return rc.Options[rc.CorrectIndex]
}

// SessionState is an immutable snapshot of a quiz session.
// Slices are copies, so callers may keep and diff snapshots freely.
type SessionState struct {
	Score          int          // number of correct answers
	RemainingCount int          // countries not yet resolved, decremented per answer
	Pool           []Country    // countries still available for rounds
	Round          int          // 1-based round number, counted across all sessions of an engine
	Choices        RoundChoices // current round; empty when the game is over
	Phase          Phase
}

// RemainingFlags is the counter shown to the player: flags left beyond the current round.
func (s SessionState) RemainingFlags(roundSize int) int {
	n := s.RemainingCount - roundSize
	if n < 0 {
		return 0
	}
	return n
}

// OutcomeKind tags an AnswerOutcome.
type OutcomeKind int

const (
	OutcomeCorrect OutcomeKind = iota + 1
	OutcomeIncorrect
	OutcomeGameOver
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// AnswerOutcome is the result of a single answer.
//
// OutcomeIncorrect carries the country that was asked about in Country.
// OutcomeGameOver is only returned when a correct answer ends the game;
// FinalScore is set for it.
type AnswerOutcome struct {
	Kind       OutcomeKind
	Country    Country
	FinalScore int
}
