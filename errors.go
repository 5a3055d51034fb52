package lazyseq

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned when an operation needs to force the producer but
// the producer has no more values. Infinite producers never trigger it.
var ErrExhausted = errors.New("lazyseq: producer exhausted")

// IndexError reports an invalid index or slice argument. Negative indices are
// always invalid: the total length of a lazy sequence is unknown, so there is
// no end to count back from.
type IndexError struct {
	Index    int
	Sequence string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("lazyseq: invalid index %d for %s", e.Index, e.Sequence)
}

// NotFoundError reports a Find for a value the sequence does not contain.
type NotFoundError struct {
	Value    any
	Sequence string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lazyseq: %v is not in %s", e.Value, e.Sequence)
}
