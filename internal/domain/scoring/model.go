package scoring

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrUnknownActionType = crerr.New("unknown action type")
	ErrUnknownMode       = crerr.New("unknown mode")
)

// Mode partitions all tournament data. Each mode has its own tournament id sequence.
type Mode string

const (
	ModeSingles Mode = "singles"
	ModeDoubles Mode = "doubles"
)

// ParseMode accepts an empty value as singles.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeSingles:
		return ModeSingles, nil
	case ModeDoubles:
		return ModeDoubles, nil
	default:
		return "", crerr.Wrapf(ErrUnknownMode, "mode=%q", raw)
	}
}

func (m Mode) Valid() bool {
	return m == ModeSingles || m == ModeDoubles
}

func (m Mode) String() string {
	return string(m)
}

type ActionType string

const (
	NoResult     ActionType = "No Result"
	Scratch      ActionType = "Scratch"
	BallIn       ActionType = "Ball In"
	EightBallIn  ActionType = "8 Ball In"
	OppBallIn    ActionType = "Opp Ball In"
	TwoBallIn    ActionType = "2 Ball In"
	ThreeBallIn  ActionType = "3 Ball In"
	FourPlusIn   ActionType = "4+ Ball In"
	OppEightBall ActionType = "Opp. 8 Ball In"
)

// actionTable is the only place point values are defined.
var actionTable = []struct {
	action   ActionType
	value    float64
	negative bool
}{
	{action: NoResult, value: 0, negative: true},
	{action: Scratch, value: -0.5, negative: true},
	{action: BallIn, value: 1},
	{action: EightBallIn, value: 3},
	{action: OppBallIn, value: -1, negative: true},
	{action: TwoBallIn, value: 2.25},
	{action: ThreeBallIn, value: 3.5},
	{action: FourPlusIn, value: 4.75},
	{action: OppEightBall, value: -2, negative: true},
}

var (
	valueByAction    = make(map[ActionType]float64, len(actionTable))
	negativeByAction = make(map[ActionType]bool, len(actionTable))
)

func init() {
	for _, row := range actionTable {
		valueByAction[row.action] = row.value
		negativeByAction[row.action] = row.negative
	}
}

// ActionTypes lists every action type in table order.
func ActionTypes() []ActionType {
	out := make([]ActionType, 0, len(actionTable))
	for _, row := range actionTable {
		out = append(out, row.action)
	}
	return out
}

func ParseActionType(raw string) (ActionType, error) {
	candidate := ActionType(strings.TrimSpace(raw))
	if _, ok := valueByAction[candidate]; !ok {
		return "", crerr.Wrapf(ErrUnknownActionType, "action=%q", raw)
	}
	return candidate, nil
}

func (a ActionType) Valid() bool {
	_, ok := valueByAction[a]
	return ok
}

// Value returns the point value of one occurrence. Unknown types are worth nothing.
func (a ActionType) Value() float64 {
	return valueByAction[a]
}

// IsNegative reports whether doing less of this action is better.
func (a ActionType) IsNegative() bool {
	return negativeByAction[a]
}

func Points(action ActionType, count int64) float64 {
	return action.Value() * float64(count)
}

// TournamentRange is an inclusive tournament id window for one mode.
type TournamentRange struct {
	From int64
	To   int64
}

func (r TournamentRange) Contains(tournamentID int64) bool {
	return r.From <= tournamentID && tournamentID <= r.To
}

func (r TournamentRange) Valid() bool {
	return r.From >= 0 && r.From <= r.To
}
