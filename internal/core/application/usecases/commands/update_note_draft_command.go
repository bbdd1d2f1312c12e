package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

const MaxNoteLength = 2000

var ErrUpdateNoteDraftCommandIsNotConstructed = errors.New(
	"UpdateNoteDraftCommand must be created via NewUpdateNoteDraftCommand constructor",
)

// UpdateNoteDraftCommand replaces the draft of the active note edit. It has
// no remote effect.
type UpdateNoteDraftCommand struct { //nolint:recvcheck //using for validation
	text string

	guard guard.ConstructorGuard
}

// NewUpdateNoteDraftCommand accepts any text up to MaxNoteLength runes,
// including the empty string, which clears the note on commit.
func NewUpdateNoteDraftCommand(text string) (UpdateNoteDraftCommand, error) {
	if n := len([]rune(text)); n > MaxNoteLength {
		return UpdateNoteDraftCommand{}, errs.NewValueIsOutOfRangeError("text", n, 0, MaxNoteLength)
	}
	return UpdateNoteDraftCommand{text: text, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateNoteDraftCommand) Validate() error {
	return c.guard.Validate(ErrUpdateNoteDraftCommandIsNotConstructed)
}

func (c UpdateNoteDraftCommand) Text() string {
	return c.text
}
