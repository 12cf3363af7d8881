package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedEvent aborts a run on an event the processor does not model.
	ErrUnsupportedEvent = errors.New("unsupported event")
	// ErrMissingInput means the event source has nothing to process.
	ErrMissingInput = errors.New("missing input")
	// ErrMalformedEvent rejects a payload that does not match its event kind.
	ErrMalformedEvent = errors.New("malformed event")
	// ErrOutOfOrder rejects a log that is not strictly ordered.
	ErrOutOfOrder = errors.New("event out of order")
)

// EventError pins an error to the event that caused it.
type EventError struct {
	Position Position
	Kind     Kind
	Err      error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("%s at height %d tx %s log %d: %v",
		e.Kind, e.Position.Height, e.Position.TxHash.Hex(), e.Position.LogIndex, e.Err)
}

func (e *EventError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err is a data error that retrying cannot fix.
func IsFatal(err error) bool {
	return errors.Is(err, ErrUnsupportedEvent) ||
		errors.Is(err, ErrMalformedEvent) ||
		errors.Is(err, ErrOutOfOrder)
}
