package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
	"github.com/ozdilmelih/FlagGame/internal/quiz"
)

// ErrStaleRound is returned when an answer refers to a round that is no longer current,
// e.g. a tap on the keyboard of an earlier message.
var ErrStaleRound = errors.New("answer for a round that is no longer current")

// GameService runs one flag quiz per chat.
type GameService struct {
	countries CountryRepository
	sessions  SessionStore
	logger    *zap.Logger
	newRand   func() quiz.Rand
	roundSize int
}

// GameOption configures a GameService.
type GameOption func(*GameService)

// WithRandSource replaces the random source factory used for new engines.
func WithRandSource(newRand func() quiz.Rand) GameOption {
	return func(s *GameService) {
		s.newRand = newRand
	}
}

// WithRoundSize sets the number of flags per round.
func WithRoundSize(n int) GameOption {
	return func(s *GameService) {
		s.roundSize = n
	}
}

func NewGameService(
	countries CountryRepository,
	sessions SessionStore,
	logger *zap.Logger,
	opts ...GameOption,
) *GameService {
	s := &GameService{
		countries: countries,
		sessions:  sessions,
		logger:    logger,
		newRand:   NewSeededRand,
		roundSize: quiz.DefaultRoundSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RoundSize returns the number of flags offered per round.
func (s *GameService) RoundSize() int {
	return s.roundSize
}

// Start begins a new game for the chat, discarding any game in progress.
func (s *GameService) Start(ctx context.Context, chatID int64) (entities.SessionState, error) {
	countries, err := s.countries.GetAll(ctx)
	if err != nil {
		return entities.SessionState{}, fmt.Errorf("get countries: %w", err)
	}

	var state entities.SessionState
	err = s.sessions.WithOrCreateSession(chatID, s.newEngine, func(e *quiz.Engine) error {
		state, err = e.Reset(countries)
		return err
	})
	if err != nil {
		return entities.SessionState{}, fmt.Errorf("start session: %w", err)
	}

	s.logger.Debug("game started",
		zap.Int64("chat_id", chatID),
		zap.Int("countries", len(countries)),
	)

	return state, nil
}

// Answer resolves the chat's current round. round must match the round the
// player saw, otherwise ErrStaleRound is returned and nothing changes.
func (s *GameService) Answer(
	_ context.Context, chatID int64, round, choiceIndex int,
) (entities.AnswerOutcome, entities.SessionState, error) {
	var (
		outcome entities.AnswerOutcome
		state   entities.SessionState
	)

	err := s.sessions.WithSession(chatID, func(e *quiz.Engine) error {
		if current := e.State().Round; current != round {
			return fmt.Errorf("%w: got %d, current %d", ErrStaleRound, round, current)
		}

		var err error
		outcome, err = e.Answer(choiceIndex)
		if err != nil {
			return err
		}
		state = e.State()
		return nil
	})
	if err != nil {
		return entities.AnswerOutcome{}, entities.SessionState{}, err
	}

	s.logger.Debug("answer resolved",
		zap.Int64("chat_id", chatID),
		zap.Int("round", round),
		zap.Stringer("outcome", outcome.Kind),
		zap.Int("score", state.Score),
	)

	return outcome, state, nil
}

// Continue moves past a wrong answer to the next round or to game over.
func (s *GameService) Continue(_ context.Context, chatID int64) (entities.SessionState, error) {
	var state entities.SessionState

	err := s.sessions.WithSession(chatID, func(e *quiz.Engine) error {
		if err := e.AcknowledgeWrongAnswer(); err != nil {
			return err
		}
		state = e.State()
		return nil
	})
	if err != nil {
		return entities.SessionState{}, err
	}

	return state, nil
}

// State returns the chat's current session snapshot.
func (s *GameService) State(_ context.Context, chatID int64) (entities.SessionState, error) {
	var state entities.SessionState

	err := s.sessions.WithSession(chatID, func(e *quiz.Engine) error {
		state = e.State()
		return nil
	})
	if err != nil {
		return entities.SessionState{}, err
	}

	return state, nil
}

func (s *GameService) newEngine() *quiz.Engine {
	return quiz.NewEngine(s.newRand(), quiz.WithRoundSize(s.roundSize))
}
