package tokenizer

import "github.com/pkg/errors"

// Vocab is a dense bijection between surface tokens and ids 0..Len()-1.
// It is never modified once built.
type Vocab struct {
	id2words   []string
	words2id   map[string]int
	specials   SpecialTokens
	specialIDs [numSpecials]int
}

// newVocab assigns ids by position in words, which must contain every
// special symbol exactly once.
func newVocab(words []string, specials SpecialTokens) (*Vocab, error) {
	if err := specials.valid(); err != nil {
		return nil, err
	}
	v := &Vocab{
		id2words: make([]string, len(words)),
		words2id: make(map[string]int, len(words)),
		specials: specials,
	}
	for i, word := range words {
		if _, ok := v.words2id[word]; ok {
			return nil, errors.Errorf("duplicate token %q", word)
		}
		v.id2words[i] = word
		v.words2id[word] = i
	}
	for _, s := range specialOrder {
		id, ok := v.words2id[specials[s]]
		if !ok {
			return nil, errors.Errorf("special token %s (%q) not in vocabulary", s, specials[s])
		}
		v.specialIDs[s] = id
	}
	return v, nil
}

// vocabFromMapping rebuilds a vocabulary from an explicit token -> id table.
// The ids must cover 0..len(tokens)-1 without gaps.
func vocabFromMapping(tokens map[string]int, specials SpecialTokens) (*Vocab, error) {
	words := make([]string, len(tokens))
	filled := make([]bool, len(tokens))
	for word, id := range tokens {
		if id < 0 || id >= len(tokens) {
			return nil, errors.Errorf("id %d of %q outside 0..%d", id, word, len(tokens)-1)
		}
		if filled[id] {
			return nil, errors.Errorf("id %d assigned to both %q and %q", id, words[id], word)
		}
		words[id] = word
		filled[id] = true
	}
	return newVocab(words, specials)
}

// withSpecials appends the special symbols after content in registry order,
// dropping any content token that collides with a special symbol.
func withSpecials(content []string, specials SpecialTokens) []string {
	words := make([]string, 0, len(content)+numSpecials)
	for _, word := range content {
		if _, ok := specials.Lookup(word); ok {
			continue
		}
		words = append(words, word)
	}
	for _, s := range specialOrder {
		words = append(words, specials[s])
	}
	return words
}

func (v *Vocab) Len() int {
	return len(v.id2words)
}

// Tokens returns the tokens ordered by id.
func (v *Vocab) Tokens() []string {
	ret := make([]string, len(v.id2words))
	copy(ret, v.id2words)
	return ret
}

// Mapping returns a copy of the token -> id table.
func (v *Vocab) Mapping() map[string]int {
	ret := make(map[string]int, len(v.words2id))
	for k, id := range v.words2id {
		ret[k] = id
	}
	return ret
}

func (v *Vocab) ID(word string) (int, bool) {
	id, ok := v.words2id[word]
	return id, ok
}

// IDOr returns the id of word or fallback when word is unknown.
func (v *Vocab) IDOr(word string, fallback int) int {
	if id, ok := v.words2id[word]; ok {
		return id
	}
	return fallback
}

func (v *Vocab) Token(id int) (string, error) {
	if id < 0 || id >= len(v.id2words) {
		return "", errors.Wrapf(ErrDecodeLookup, "id %d", id)
	}
	return v.id2words[id], nil
}

func (v *Vocab) SpecialID(s Special) int {
	return v.specialIDs[s]
}

func (v *Vocab) IsSpecial(id int) bool {
	for _, sid := range v.specialIDs {
		if sid == id {
			return true
		}
	}
	return false
}

func (v *Vocab) Specials() SpecialTokens {
	return v.specials
}

// ContentLen is the number of non-special tokens.
func (v *Vocab) ContentLen() int {
	return len(v.id2words) - numSpecials
}
