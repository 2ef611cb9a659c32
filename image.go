package tokenizer

import (
	"strconv"
	"strings"
)

// IgnoreID is reported for every special token of ImageTokenizer; consumers
// treat it as "ignore this position".
const IgnoreID = -100

// NoVocabSize is the vocabulary size of a continuous-valued ImageTokenizer.
const NoVocabSize = 0

// ImageTokenizer stands in for inputs that are not tokenized at all, such
// as pixel grids. Values pass through unchanged.
type ImageTokenizer struct {
	vocabSize int
}

// NewImageTokenizer takes the number of discrete pixel values, or
// NoVocabSize for continuous inputs.
func NewImageTokenizer(vocabSize int) *ImageTokenizer {
	if vocabSize < 0 {
		vocabSize = NoVocabSize
	}
	return &ImageTokenizer{vocabSize: vocabSize}
}

func (t *ImageTokenizer) PadTokenID() int { return IgnoreID }
func (t *ImageTokenizer) UnkTokenID() int { return IgnoreID }
func (t *ImageTokenizer) BosTokenID() int { return IgnoreID }
func (t *ImageTokenizer) EosTokenID() int { return IgnoreID }
func (t *ImageTokenizer) VocabSize() int  { return t.vocabSize }

// HasVocab reports whether inputs are discrete.
func (t *ImageTokenizer) HasVocab() bool {
	return t.vocabSize != NoVocabSize
}

// Encode returns a copy of values.
func (t *ImageTokenizer) Encode(values []int) []int {
	ret := make([]int, len(values))
	copy(ret, values)
	return ret
}

// Decode prints the values separated by spaces.
func (t *ImageTokenizer) Decode(ids []int) (string, error) {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(id)
	}
	return strings.Join(strs, " "), nil
}
