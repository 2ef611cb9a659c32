package tokenizer

import "github.com/pkg/errors"

// NumBytes is the size of the content vocabulary of ByteTokenizer.
const NumBytes = 256

// Byte level special ids, right after the byte values.
const (
	BytePadID = NumBytes + iota
	ByteUnkID
	ByteBosID
	ByteEosID
)

// ByteOptions selects the markers framing every sequence.
type ByteOptions struct {
	UseBos bool
	UseEos bool
}

// DefaultByteOptions appends eos only.
func DefaultByteOptions() ByteOptions {
	return ByteOptions{UseEos: true}
}

// ByteTokenizer encodes the UTF-8 bytes of a text, one id per byte. It
// needs no corpus.
type ByteTokenizer struct {
	opts     ByteOptions
	specials SpecialTokens
}

func NewByteTokenizer(opts ByteOptions) *ByteTokenizer {
	return &ByteTokenizer{
		opts:     opts,
		specials: DefaultSpecialTokens(),
	}
}

func (t *ByteTokenizer) PadTokenID() int { return BytePadID }
func (t *ByteTokenizer) UnkTokenID() int { return ByteUnkID }
func (t *ByteTokenizer) BosTokenID() int { return ByteBosID }
func (t *ByteTokenizer) EosTokenID() int { return ByteEosID }
func (t *ByteTokenizer) VocabSize() int  { return NumBytes + numSpecials }

func (t *ByteTokenizer) markers() int {
	var n int
	if t.opts.UseBos {
		n++
	}
	if t.opts.UseEos {
		n++
	}
	return n
}

// encodeText truncates the bytes of str so that the result including the
// enabled markers fits maxLength.
func (t *ByteTokenizer) encodeText(maxLength int, str string) []int {
	data := []byte(str)
	n := maxLength - t.markers()
	if n < 0 {
		n = 0
	}
	if len(data) > n {
		data = data[:n]
	}
	ids := make([]int, 0, len(data)+2)
	if t.opts.UseBos {
		ids = append(ids, ByteBosID)
	}
	for _, b := range data {
		ids = append(ids, int(b))
	}
	if t.opts.UseEos {
		ids = append(ids, ByteEosID)
	}
	return ids
}

// Encode encodes the Source field of rec.
func (t *ByteTokenizer) Encode(maxLength int, rec Record) (*Encoding, error) {
	str, err := rec.Text(FieldSource)
	if err != nil {
		return nil, err
	}
	return newEncoding(t.encodeText(maxLength, str), rec.Label()), nil
}

// EncodePair encodes text1 and text2 of rec independently, each bounded by
// maxLength.
func (t *ByteTokenizer) EncodePair(maxLength int, rec Record) (*PairEncoding, error) {
	var ret PairEncoding
	for i, field := range [2]string{FieldText1, FieldText2} {
		str, err := rec.Text(field)
		if err != nil {
			return nil, err
		}
		ret.InputIDs[i] = t.encodeText(maxLength, str)
		ret.PadMask[i] = make([]int, len(ret.InputIDs[i]))
	}
	ret.Labels = rec.Label()
	return &ret, nil
}

func (t *ByteTokenizer) Pad(maxLength int, e *Encoding) *Encoding {
	return e.Pad(maxLength, BytePadID)
}

// PadPair pads both sequences of e to maxLength.
func (t *ByteTokenizer) PadPair(maxLength int, e *PairEncoding) *PairEncoding {
	return e.PadTo(maxLength, maxLength, BytePadID)
}

// Decode renders every byte as the character of the same code point and
// every special id as its symbol, joined by spaces. Multi-byte UTF-8
// sequences do not survive this.
func (t *ByteTokenizer) Decode(ids []int) (string, error) {
	symbols := make([]string, len(ids))
	for i, id := range ids {
		switch {
		case id >= 0 && id < NumBytes:
			symbols[i] = string(rune(id))
		case id >= BytePadID && id <= ByteEosID:
			symbols[i] = t.specials.Symbol(byteSpecials[id-NumBytes])
		default:
			return "", errors.Wrapf(ErrDecodeLookup, "id %d", id)
		}
	}
	return joinSymbols(symbols), nil
}

func (t *ByteTokenizer) DecodeBatch(batch [][]int) ([]string, error) {
	return decodeBatch(batch, t.Decode)
}

// byteSpecials lists the special tokens in byte-level id order.
var byteSpecials = [numSpecials]Special{Pad, Unk, Bos, Eos}
