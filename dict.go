package tokenizer

import "sort"

// charset collects the distinct characters of a corpus.
type charset map[rune]struct{}

func newCharset(corpus ...string) charset {
	cs := make(charset)
	for _, str := range corpus {
		for _, ch := range str {
			cs[ch] = struct{}{}
		}
	}
	return cs
}

// sorted returns the characters ordered by code point.
func (cs charset) sorted() []string {
	chars := make([]rune, 0, len(cs))
	for ch := range cs {
		chars = append(chars, ch)
	}
	sort.Slice(chars, func(i, j int) bool {
		return chars[i] < chars[j]
	})
	ret := make([]string, len(chars))
	for i, ch := range chars {
		ret[i] = string(ch)
	}
	return ret
}
