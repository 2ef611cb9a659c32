package tokenizer

// Encoding is the model-ready form of one record. PadMask is 1 on padding
// positions and 0 on real tokens.
type Encoding struct {
	InputIDs []int `json:"input_ids"`
	Labels   any   `json:"labels"`
	PadMask  []int `json:"pad_mask"`
}

func newEncoding(ids []int, labels any) *Encoding {
	return &Encoding{
		InputIDs: ids,
		Labels:   labels,
		PadMask:  make([]int, len(ids)),
	}
}

// Len is the current sequence length including padding.
func (e *Encoding) Len() int {
	return len(e.InputIDs)
}

// Pad right-pads the sequence with padID up to maxLength. Longer sequences
// are left untouched.
func (e *Encoding) Pad(maxLength, padID int) *Encoding {
	e.InputIDs, e.PadMask = pad(e.InputIDs, e.PadMask, maxLength, padID)
	return e
}

// PairEncoding holds two independently truncated and padded sequences of a
// two-text record. The two lengths may differ.
type PairEncoding struct {
	InputIDs [2][]int `json:"input_ids"`
	Labels   any      `json:"labels"`
	PadMask  [2][]int `json:"pad_mask"`
}

// PadTo pads the first sequence to a and the second to b.
func (e *PairEncoding) PadTo(a, b, padID int) *PairEncoding {
	e.InputIDs[0], e.PadMask[0] = pad(e.InputIDs[0], e.PadMask[0], a, padID)
	e.InputIDs[1], e.PadMask[1] = pad(e.InputIDs[1], e.PadMask[1], b, padID)
	return e
}

func pad(ids, mask []int, maxLength, padID int) ([]int, []int) {
	n := maxLength - len(ids)
	for i := 0; i < n; i++ {
		ids = append(ids, padID)
		mask = append(mask, 1)
	}
	return ids, mask
}

// truncate cuts ids to at most n entries, n below zero counting as zero.
func truncate(ids []int, n int) []int {
	if n < 0 {
		n = 0
	}
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}

// RecordEncoder is implemented by tokenizers that turn a whole record into
// an Encoding.
type RecordEncoder interface {
	Tokenizer
	Encode(maxLength int, rec Record) (*Encoding, error)
	Pad(maxLength int, e *Encoding) *Encoding
}

// PairEncoder is implemented by tokenizers that encode two-text records.
type PairEncoder interface {
	Tokenizer
	EncodePair(maxLength int, rec Record) (*PairEncoding, error)
	PadPair(maxLength int, e *PairEncoding) *PairEncoding
}

var (
	_ RecordEncoder = (*ListOpsTokenizer)(nil)
	_ RecordEncoder = (*ByteTokenizer)(nil)
	_ PairEncoder   = (*ByteTokenizer)(nil)
)
