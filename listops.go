package tokenizer

import (
	"strings"

	"github.com/lwch/logging"
	"github.com/pkg/errors"
)

// ListOpsTokenizer encodes whitespace separated symbolic sequences, such as
// bracketed operator expressions, with a vocabulary trained beforehand and
// loaded from disk.
type ListOpsTokenizer struct {
	vocabTokenizer
}

func NewListOpsTokenizer(vocab *Vocab) *ListOpsTokenizer {
	return &ListOpsTokenizer{vocabTokenizer{vocab}}
}

// LoadListOpsTokenizer reads a vocabulary written by SaveVocab.
func LoadListOpsTokenizer(path string) (*ListOpsTokenizer, error) {
	vocab, err := LoadVocab(path)
	if err != nil {
		return nil, err
	}
	return NewListOpsTokenizer(vocab), nil
}

// TrainListOps numbers the symbols of field over records in first-seen
// order and appends the special tokens.
func TrainListOps(records []Record, field string, specials SpecialTokens) (*Vocab, error) {
	seen := make(map[string]struct{})
	var content []string
	for i, rec := range records {
		str, err := rec.Text(field)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		for _, sym := range strings.Fields(str) {
			if _, ok := seen[sym]; ok {
				continue
			}
			seen[sym] = struct{}{}
			content = append(content, sym)
		}
	}
	vocab, err := newVocab(withSpecials(content, specials), specials)
	if err != nil {
		return nil, err
	}
	logging.Info("trained vocab of %d symbols from %d records", vocab.Len(), len(records))
	return vocab, nil
}

// Encode maps the Source field of rec, unknown symbols become the unk id.
// The result is truncated to maxLength and not padded.
func (t *ListOpsTokenizer) Encode(maxLength int, rec Record) (*Encoding, error) {
	str, err := rec.Text(FieldSource)
	if err != nil {
		return nil, err
	}
	symbols := strings.Fields(str)
	unk := t.UnkTokenID()
	ids := make([]int, len(symbols))
	for i, sym := range symbols {
		ids[i] = t.vocab.IDOr(sym, unk)
	}
	return newEncoding(truncate(ids, maxLength), rec.Label()), nil
}

func (t *ListOpsTokenizer) Pad(maxLength int, e *Encoding) *Encoding {
	return e.Pad(maxLength, t.PadTokenID())
}

// Decode returns the symbols of ids joined by spaces.
func (t *ListOpsTokenizer) Decode(ids []int) (string, error) {
	symbols, err := t.symbols(ids)
	if err != nil {
		return "", err
	}
	return joinSymbols(symbols), nil
}

func (t *ListOpsTokenizer) DecodeBatch(batch [][]int) ([]string, error) {
	return decodeBatch(batch, t.Decode)
}
