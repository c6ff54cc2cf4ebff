package recordtable

import (
	"io"
	"iter"
	"slices"
)

// WriteIter renders the records produced by seq. Every column width depends
// on every record, so the sequence is collected before anything is written.
// A nil seq is [ErrNilCollection]; a sequence that yields nothing is
// [ErrEmptyCollection].
func WriteIter[T any](w io.Writer, seq iter.Seq[T]) error {
	if seq == nil {
		return ErrNilCollection
	}
	if w == nil {
		return ErrNilWriter
	}
	items := slices.Collect(seq)
	if len(items) == 0 {
		return ErrEmptyCollection
	}
	return WriteTable(w, items)
}

// WriteChan renders the records received from ch until it is closed.
// It is a thin wrapper around [WriteIter]; a nil channel is [ErrNilCollection].
func WriteChan[T any](w io.Writer, ch <-chan T) error {
	if ch == nil {
		return ErrNilCollection
	}
	return WriteIter(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
