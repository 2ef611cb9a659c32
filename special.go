package tokenizer

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Special is one of the reserved logical tokens.
type Special int

const (
	Unk Special = iota
	Pad
	Bos
	Eos

	numSpecials = 4
)

// specialOrder is the registry order used whenever special ids are assigned.
var specialOrder = [numSpecials]Special{Unk, Pad, Bos, Eos}

var specialNames = [numSpecials]string{"unk", "pad", "bos", "eos"}

func (s Special) String() string {
	if s < 0 || int(s) >= numSpecials {
		return "special(" + strconv.Itoa(int(s)) + ")"
	}
	return specialNames[s]
}

// ParseSpecial resolves a logical name. Both "pad" and "<pad>" are accepted.
func ParseSpecial(name string) (Special, bool) {
	name = strings.TrimSuffix(strings.TrimPrefix(name, "<"), ">")
	for i, n := range specialNames {
		if n == name {
			return Special(i), true
		}
	}
	return 0, false
}

// SpecialTokens binds every logical special token to its surface symbol.
type SpecialTokens [numSpecials]string

// DefaultSpecialTokens returns the <unk>, <pad>, <bos>, <eos> symbol set.
func DefaultSpecialTokens() SpecialTokens {
	return SpecialTokens{"<unk>", "<pad>", "<bos>", "<eos>"}
}

func (st SpecialTokens) Symbol(s Special) string {
	return st[s]
}

// Lookup returns the logical token whose surface symbol is sym.
func (st SpecialTokens) Lookup(sym string) (Special, bool) {
	for _, s := range specialOrder {
		if st[s] == sym {
			return s, true
		}
	}
	return 0, false
}

// Names returns the logical name -> symbol table, as persisted.
func (st SpecialTokens) Names() map[string]string {
	ret := make(map[string]string, numSpecials)
	for _, s := range specialOrder {
		ret[s.String()] = st[s]
	}
	return ret
}

func (st SpecialTokens) valid() error {
	seen := make(map[string]struct{}, numSpecials)
	for _, s := range specialOrder {
		if st[s] == "" {
			return errors.Errorf("empty symbol for special token %s", s)
		}
		if _, ok := seen[st[s]]; ok {
			return errors.Errorf("duplicate special symbol %q", st[s])
		}
		seen[st[s]] = struct{}{}
	}
	return nil
}
