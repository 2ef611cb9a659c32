package tokenizer

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

func sortCounts(counts []Count) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Freq > counts[j].Freq
	})
}

// fmtShow renders a symbol for logs, escaping unprintable characters.
func fmtShow(str string) string {
	var sb strings.Builder
	for _, ch := range str {
		if unicode.IsLetter(ch) ||
			unicode.IsNumber(ch) ||
			unicode.IsPunct(ch) ||
			unicode.IsSymbol(ch) {
			sb.WriteRune(ch)
			continue
		}
		fmt.Fprintf(&sb, "\\u%x", ch)
	}
	return sb.String()
}

func fmtCounts(counts []Count, n int) string {
	if n > len(counts) {
		n = len(counts)
	}
	logs := make([]string, n)
	for i, c := range counts[:n] {
		logs[i] = fmt.Sprintf("(%s, %d)", fmtShow(c.Symbol), c.Freq)
	}
	return strings.Join(logs, " ")
}
