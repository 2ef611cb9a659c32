package tokenizer

import "strings"

// CharTokenizer maps every character of an in-memory corpus to an id.
// Characters are numbered by code point, the special tokens follow.
type CharTokenizer struct {
	vocabTokenizer
}

// NewCharTokenizer infers the vocabulary from corpus.
func NewCharTokenizer(corpus string) (*CharTokenizer, error) {
	return NewCharTokenizerWithSpecials(corpus, DefaultSpecialTokens())
}

func NewCharTokenizerWithSpecials(corpus string, specials SpecialTokens) (*CharTokenizer, error) {
	vocab, err := newVocab(withSpecials(newCharset(corpus).sorted(), specials), specials)
	if err != nil {
		return nil, err
	}
	return &CharTokenizer{vocabTokenizer{vocab}}, nil
}

// Encode maps each character of s, unknown characters become the unk id.
func (t *CharTokenizer) Encode(s string, addSpecial bool) []int {
	ids := make([]int, 0, len(s)+2)
	if addSpecial {
		ids = append(ids, t.BosTokenID())
	}
	unk := t.UnkTokenID()
	for _, ch := range s {
		ids = append(ids, t.vocab.IDOr(string(ch), unk))
	}
	if addSpecial {
		ids = append(ids, t.EosTokenID())
	}
	return ids
}

func (t *CharTokenizer) EncodeBatch(batch []string, addSpecial bool) [][]int {
	ret := make([][]int, len(batch))
	for i, s := range batch {
		ret[i] = t.Encode(s, addSpecial)
	}
	return ret
}

// Decode concatenates the characters of ids, special tokens are skipped.
func (t *CharTokenizer) Decode(ids []int) (string, error) {
	return t.DecodeTokens(ids, false)
}

// DecodeTokens concatenates the characters of ids, keeping the special
// symbols when withSpecial is set.
func (t *CharTokenizer) DecodeTokens(ids []int, withSpecial bool) (string, error) {
	var sb strings.Builder
	sb.Grow(len(ids))
	for _, id := range ids {
		tk, err := t.vocab.Token(id)
		if err != nil {
			return "", err
		}
		if !withSpecial && t.vocab.IsSpecial(id) {
			continue
		}
		sb.WriteString(tk)
	}
	return sb.String(), nil
}

func (t *CharTokenizer) DecodeBatch(batch [][]int, withSpecial bool) ([]string, error) {
	return decodeBatch(batch, func(ids []int) (string, error) {
		return t.DecodeTokens(ids, withSpecial)
	})
}
