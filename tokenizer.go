package tokenizer

import (
	"strings"

	"github.com/pkg/errors"
)

// Tokenizer is the capability set shared by every tokenizer variant.
type Tokenizer interface {
	PadTokenID() int
	UnkTokenID() int
	BosTokenID() int
	EosTokenID() int
	VocabSize() int
	Decode(ids []int) (string, error)
}

var (
	_ Tokenizer = (*CharTokenizer)(nil)
	_ Tokenizer = (*FileTokenizer)(nil)
	_ Tokenizer = (*ListOpsTokenizer)(nil)
	_ Tokenizer = (*ByteTokenizer)(nil)
	_ Tokenizer = (*ImageTokenizer)(nil)
)

// Field names used by the benchmark records.
const (
	FieldSource = "Source"
	FieldTarget = "Target"
	FieldText1  = "text1"
	FieldText2  = "text2"
)

// Record is one raw example as produced by the data pipeline.
type Record map[string]any

// Text returns the string field name.
func (r Record) Text(name string) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", errors.Wrapf(ErrMissingField, "%q", name)
	}
	str, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrMissingField, "%q is %T, not a string", name, v)
	}
	return str, nil
}

// Label returns the target field untouched, nil when absent.
func (r Record) Label() any {
	return r[FieldTarget]
}

// vocabTokenizer carries the accessors of every tokenizer backed by a Vocab.
type vocabTokenizer struct {
	vocab *Vocab
}

func (t vocabTokenizer) PadTokenID() int { return t.vocab.SpecialID(Pad) }
func (t vocabTokenizer) UnkTokenID() int { return t.vocab.SpecialID(Unk) }
func (t vocabTokenizer) BosTokenID() int { return t.vocab.SpecialID(Bos) }
func (t vocabTokenizer) EosTokenID() int { return t.vocab.SpecialID(Eos) }
func (t vocabTokenizer) VocabSize() int  { return t.vocab.Len() }

// Vocab exposes the underlying read-only vocabulary.
func (t vocabTokenizer) Vocab() *Vocab { return t.vocab }

func (t vocabTokenizer) symbols(ids []int) ([]string, error) {
	ret := make([]string, len(ids))
	for i, id := range ids {
		tk, err := t.vocab.Token(id)
		if err != nil {
			return nil, err
		}
		ret[i] = tk
	}
	return ret, nil
}

func decodeBatch(batch [][]int, decode func([]int) (string, error)) ([]string, error) {
	ret := make([]string, len(batch))
	for i, ids := range batch {
		str, err := decode(ids)
		if err != nil {
			return nil, errors.Wrapf(err, "sentence %d", i)
		}
		ret[i] = str
	}
	return ret, nil
}

func joinSymbols(symbols []string) string {
	return strings.Join(symbols, " ")
}
