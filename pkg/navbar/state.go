package navbar

import (
	"github.com/pkg/errors"
)

var ErrInvalidState = errors.New("invalid state")

// State is the visibility of the dropdown panel.
type State int

const (
	Collapsed State = iota
	Expanded
)

func (s State) Toggle() State {
	if s == Expanded {
		return Collapsed
	}

	return Expanded
}

func (s State) IsExpanded() bool {
	return s == Expanded
}

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}

	return "collapsed"
}

func ParseState(raw string) (State, error) {
	switch raw {
	case "collapsed":
		return Collapsed, nil
	case "expanded":
		return Expanded, nil
	default:
		return Collapsed, errors.Wrapf(ErrInvalidState, "unexpected value '%s'", raw)
	}
}
