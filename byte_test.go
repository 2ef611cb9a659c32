package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteVocabSize(t *testing.T) {
	for _, opts := range []ByteOptions{{}, {UseBos: true, UseEos: true}} {
		tk := NewByteTokenizer(opts)
		assert.Equal(t, 260, tk.VocabSize())
		assert.Equal(t, 256, tk.PadTokenID())
		assert.Equal(t, 259, tk.EosTokenID())
	}
}

func TestByteEncode(t *testing.T) {
	cases := []struct {
		name      string
		opts      ByteOptions
		maxLength int
		text      string
		expect    []int
	}{
		{"eos fits", DefaultByteOptions(), 5, "Hi", []int{72, 105, 259}},
		{"eos truncates", DefaultByteOptions(), 5, "Hello world", []int{72, 101, 108, 108, 259}},
		{"both markers", ByteOptions{UseBos: true, UseEos: true}, 4, "Hello", []int{258, 72, 101, 259}},
		{"no markers", ByteOptions{}, 3, "Hello", []int{72, 101, 108}},
		{"multi byte", ByteOptions{}, 8, "é", []int{195, 169}},
		{"budget below markers", ByteOptions{UseBos: true, UseEos: true}, 1, "Hello", []int{258, 259}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tk := NewByteTokenizer(c.opts)
			enc, err := tk.Encode(c.maxLength, Record{FieldSource: c.text, FieldTarget: 1})
			require.NoError(t, err)
			assert.Equal(t, c.expect, enc.InputIDs)
			assert.Equal(t, make([]int, len(c.expect)), enc.PadMask)
			assert.Equal(t, 1, enc.Labels)
		})
	}

	_, err := NewByteTokenizer(DefaultByteOptions()).Encode(5, Record{FieldText1: "x"})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestByteEncodePair(t *testing.T) {
	tk := NewByteTokenizer(DefaultByteOptions())
	enc, err := tk.EncodePair(3, Record{FieldText1: "abc", FieldText2: "a", FieldTarget: 0})
	require.NoError(t, err)
	assert.Equal(t, [2][]int{{97, 98, 259}, {97, 259}}, enc.InputIDs)
	assert.Equal(t, [2][]int{{0, 0, 0}, {0, 0}}, enc.PadMask)
	assert.Equal(t, 0, enc.Labels)
	assert.NotEqual(t, len(enc.InputIDs[0]), len(enc.InputIDs[1]))

	tk.PadPair(3, enc)
	assert.Equal(t, [2][]int{{97, 98, 259}, {97, 259, 256}}, enc.InputIDs)
	assert.Equal(t, [2][]int{{0, 0, 0}, {0, 0, 1}}, enc.PadMask)

	enc.PadTo(4, 3, tk.PadTokenID())
	assert.Equal(t, [2][]int{{97, 98, 259, 256}, {97, 259, 256}}, enc.InputIDs)
	assert.Equal(t, [2][]int{{0, 0, 0, 1}, {0, 0, 1}}, enc.PadMask)

	_, err = tk.EncodePair(3, Record{FieldText1: "abc"})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestBytePad(t *testing.T) {
	tk := NewByteTokenizer(DefaultByteOptions())
	enc, err := tk.Encode(8, Record{FieldSource: "ab"})
	require.NoError(t, err)
	tk.Pad(5, enc)
	assert.Equal(t, []int{97, 98, 259, 256, 256}, enc.InputIDs)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, enc.PadMask)
}

func TestByteDecode(t *testing.T) {
	tk := NewByteTokenizer(DefaultByteOptions())
	str, err := tk.Decode([]int{258, 72, 105, 259, 256, 257})
	require.NoError(t, err)
	assert.Equal(t, "<bos> H i <eos> <pad> <unk>", str)

	// each byte is decoded on its own
	str, err = tk.Decode([]int{195, 169})
	require.NoError(t, err)
	assert.Equal(t, "Ã ©", str)

	_, err = tk.Decode([]int{260})
	assert.ErrorIs(t, err, ErrDecodeLookup)
	_, err = tk.Decode([]int{-1})
	assert.ErrorIs(t, err, ErrDecodeLookup)

	strs, err := tk.DecodeBatch([][]int{{97}, {98, 259}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b <eos>"}, strs)
}
