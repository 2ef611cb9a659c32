package tokenizer

import "github.com/pkg/errors"

var (
	// ErrUnknownToken is returned when a strict vocabulary meets a symbol it
	// was not built with.
	ErrUnknownToken = errors.New("unknown token")
	// ErrDecodeLookup is returned when an id has no inverse entry.
	ErrDecodeLookup = errors.New("id not in vocabulary")
	// ErrPersistence wraps every failure to load a persisted vocabulary.
	ErrPersistence = errors.New("invalid vocabulary file")
	// ErrMissingField is returned when a record lacks a required text field.
	ErrMissingField = errors.New("missing record field")
	// ErrVocabFrozen is returned when counting after the vocabulary was built.
	ErrVocabFrozen = errors.New("vocabulary already built")
)
