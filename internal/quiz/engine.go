// Package quiz implements the flag quiz state machine.
//
// An Engine owns the pool of countries, the current round, the score and the
// transitions between phases:
//
//	AwaitingAnswer     --answer(correct)-->   AwaitingAnswer | GameOver
//	AwaitingAnswer     --answer(incorrect)--> ShowingWrongAnswer
//	ShowingWrongAnswer --acknowledge-->       AwaitingAnswer | GameOver
//	GameOver           --reset-->             AwaitingAnswer
//
// An Engine is not safe for concurrent use; callers serialize access.
package quiz

import (
	"fmt"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
)

// DefaultRoundSize is the number of flags shown per round.
const DefaultRoundSize = 3

// Rand is the random source used for shuffling and picking the correct answer.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0,n).
	Intn(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRoundSize sets how many countries are offered per round. Values below 2 are ignored.
func WithRoundSize(n int) Option {
	return func(e *Engine) {
		if n >= 2 {
			e.roundSize = n
		}
	}
}

// Engine is a single quiz session.
type Engine struct {
	rnd       Rand
	roundSize int

	pool      []entities.Country
	choices   []entities.Country
	correct   int
	score     int
	remaining int
	round     int // never reset, see NewSession
	phase     entities.Phase
}

// NewEngine creates an engine without an active session. Call NewSession before answering.
func NewEngine(rnd Rand, opts ...Option) *Engine {
	e := &Engine{
		rnd:       rnd,
		roundSize: DefaultRoundSize,
		phase:     entities.PhaseUnknown,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RoundSize returns the number of countries offered per round.
func (e *Engine) RoundSize() int {
	return e.roundSize
}

// NewSession shuffles countries into a fresh pool and draws the first round.
// Any previous session state is discarded except the round counter, which keeps
// growing so rounds of an earlier session never match the current one.
func (e *Engine) NewSession(countries []entities.Country) (entities.SessionState, error) {
	if len(countries) < e.roundSize {
		return entities.SessionState{}, fmt.Errorf("%w: got %d, need %d",
			ErrInsufficientEntities, len(countries), e.roundSize)
	}

	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		if _, ok := seen[c.Name]; ok {
			return entities.SessionState{}, fmt.Errorf("%w: %q", ErrDuplicateEntity, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	pool := make([]entities.Country, len(countries))
	copy(pool, countries)
	e.shuffle(pool)

	e.pool = pool
	e.score = 0
	e.remaining = len(countries)
	e.drawRound()

	return e.State(), nil
}

// Reset starts a new session, exactly like NewSession.
func (e *Engine) Reset(countries []entities.Country) (entities.SessionState, error) {
	return e.NewSession(countries)
}

// Answer resolves the current round with the player's choice.
func (e *Engine) Answer(choiceIndex int) (entities.AnswerOutcome, error) {
	if e.phase != entities.PhaseAwaitingAnswer {
		return entities.AnswerOutcome{}, fmt.Errorf("answer in phase %s: %w", e.phase, ErrInvalidState)
	}
	if choiceIndex < 0 || choiceIndex >= len(e.choices) {
		return entities.AnswerOutcome{}, fmt.Errorf("answer %d of %d: %w", choiceIndex, len(e.choices), ErrOutOfRange)
	}

	asked := e.choices[e.correct]
	isCorrect := choiceIndex == e.correct

	e.resolveRound(asked)

	if !isCorrect {
		e.phase = entities.PhaseShowingWrongAnswer
		return entities.AnswerOutcome{Kind: entities.OutcomeIncorrect, Country: asked}, nil
	}

	e.score++
	if e.drawRound() {
		return entities.AnswerOutcome{Kind: entities.OutcomeCorrect, Country: asked}, nil
	}

	return entities.AnswerOutcome{
		Kind:       entities.OutcomeGameOver,
		Country:    asked,
		FinalScore: e.score,
	}, nil
}

// AcknowledgeWrongAnswer moves on after the player has seen the right answer.
func (e *Engine) AcknowledgeWrongAnswer() error {
	if e.phase != entities.PhaseShowingWrongAnswer {
		return fmt.Errorf("acknowledge in phase %s: %w", e.phase, ErrInvalidState)
	}

	e.drawRound()
	return nil
}

// State returns a snapshot of the session.
func (e *Engine) State() entities.SessionState {
	s := entities.SessionState{
		Score:          e.score,
		RemainingCount: e.remaining,
		Pool:           append([]entities.Country(nil), e.pool...),
		Round:          e.round,
		Phase:          e.phase,
	}
	if e.phase != entities.PhaseGameOver && len(e.choices) > 0 {
		s.Choices = entities.RoundChoices{
			Options:      append([]entities.Country(nil), e.choices...),
			CorrectIndex: e.correct,
		}
	}
	return s
}

// resolveRound removes the asked country from the pool, whether it was guessed or not,
// and reshuffles what is left.
func (e *Engine) resolveRound(asked entities.Country) {
	for i, c := range e.pool {
		if c.Name == asked.Name {
			e.pool = append(e.pool[:i], e.pool[i+1:]...)
			break
		}
	}
	e.remaining--
	e.shuffle(e.pool)
}

// drawRound offers the head of the pool and picks the correct index.
// It reports false and ends the game when the pool is too small.
func (e *Engine) drawRound() bool {
	if len(e.pool) < e.roundSize {
		e.choices = nil
		e.correct = 0
		e.phase = entities.PhaseGameOver
		return false
	}

	e.choices = append(e.choices[:0], e.pool[:e.roundSize]...)
	e.correct = e.rnd.Intn(e.roundSize)
	e.round++
	e.phase = entities.PhaseAwaitingAnswer
	return true
}

// shuffle is a Fisher–Yates shuffle driven by e.rnd.
func (e *Engine) shuffle(s []entities.Country) {
	for i := len(s) - 1; i > 0; i-- {
		j := e.rnd.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
