package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionAnswer   = "answer"
	actionContinue = "continue"
	actionPlay     = "play"
)

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// answerParams extracts the round number and choice index of an answer callback.
func (cd callbackData) answerParams() (round, index int, err error) {
	if cd.Action != actionAnswer || len(cd.Params) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", errBadCallback, cd.Raw)
	}

	round, err = strconv.Atoi(cd.Params[0])
	if err != nil || round < 1 {
		return 0, 0, fmt.Errorf("%w: bad round in %q", errBadCallback, cd.Raw)
	}

	index, err = strconv.Atoi(cd.Params[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad index in %q", errBadCallback, cd.Raw)
	}

	return round, index, nil
}

// buildAnswerCallback builds callback data for picking a flag in a round.
func buildAnswerCallback(round, index int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{strconv.Itoa(round), strconv.Itoa(index)},
	}.encode()
}

// buildContinueCallback builds callback data for dismissing the wrong answer screen.
func buildContinueCallback() string {
	return actionContinue
}

// buildPlayCallback builds callback data for starting a new game.
func buildPlayCallback() string {
	return actionPlay
}
