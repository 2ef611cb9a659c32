package tokenizer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabSaveLoad(t *testing.T) {
	tk := newListOps(t)
	path := filepath.Join(t.TempDir(), "tok_list_ops.json")
	require.NoError(t, SaveVocab(path, tk.Vocab()))

	loaded, err := LoadListOpsTokenizer(path)
	require.NoError(t, err)
	assert.Equal(t, tk.Vocab().Tokens(), loaded.Vocab().Tokens())
	assert.Equal(t, tk.Vocab().Specials(), loaded.Vocab().Specials())

	for _, rec := range listOpsTrain {
		want, err := tk.Encode(8, rec)
		require.NoError(t, err)
		got, err := loaded.Encode(8, rec)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestVocabFileLayout(t *testing.T) {
	vocab, err := TrainListOps([]Record{{FieldSource: "a"}}, FieldSource, DefaultSpecialTokens())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = vocab.WriteTo(&buf)
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc, 2)
	assert.Equal(t, map[string]any{"a": 0.0, "<unk>": 1.0, "<pad>": 2.0, "<bos>": 3.0, "<eos>": 4.0}, doc["tokens"])
	assert.Equal(t, map[string]any{"unk": "<unk>", "pad": "<pad>", "bos": "<bos>", "eos": "<eos>"}, doc["special_tokens"])
}

func TestReadVocabLegacyNames(t *testing.T) {
	doc := `{"special_tokens": {"<unk>": "<unk>", "<pad>": "<pad>", "<bos>": "<bos>", "<eos>": "<eos>"},
		"tokens": {"a": 0, "<unk>": 1, "<pad>": 2, "<bos>": 3, "<eos>": 4}}`
	vocab, err := ReadVocab(bytes.NewBufferString(doc))
	require.NoError(t, err)
	tk := NewListOpsTokenizer(vocab)
	assert.Equal(t, 2, tk.PadTokenID())
	assert.Equal(t, 5, tk.VocabSize())
}

func TestReadVocabErrors(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"tokens":`,
		"missing tokens":  `{"special_tokens": {"unk": "<unk>", "pad": "<pad>", "bos": "<bos>", "eos": "<eos>"}}`,
		"missing special": `{"tokens": {"<unk>": 0, "<pad>": 1, "<bos>": 2, "<eos>": 3}}`,
		"unknown name": `{"tokens": {"<unk>": 0, "<pad>": 1, "<bos>": 2, "<eos>": 3},
			"special_tokens": {"unk": "<unk>", "pad": "<pad>", "bos": "<bos>", "sep": "<eos>"}}`,
		"incomplete specials": `{"tokens": {"<unk>": 0, "<pad>": 1, "<bos>": 2},
			"special_tokens": {"unk": "<unk>", "pad": "<pad>", "bos": "<bos>"}}`,
		"special not in tokens": `{"tokens": {"<unk>": 0, "<pad>": 1, "<bos>": 2, "x": 3},
			"special_tokens": {"unk": "<unk>", "pad": "<pad>", "bos": "<bos>", "eos": "<eos>"}}`,
		"gap in ids": `{"tokens": {"<unk>": 0, "<pad>": 1, "<bos>": 2, "<eos>": 7},
			"special_tokens": {"unk": "<unk>", "pad": "<pad>", "bos": "<bos>", "eos": "<eos>"}}`,
		"duplicate id": `{"tokens": {"<unk>": 0, "<pad>": 1, "<bos>": 2, "<eos>": 3, "a": 3},
			"special_tokens": {"unk": "<unk>", "pad": "<pad>", "bos": "<bos>", "eos": "<eos>"}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadVocab(bytes.NewBufferString(doc))
			assert.ErrorIs(t, err, ErrPersistence)
		})
	}
}

func TestLoadVocabMissingFile(t *testing.T) {
	_, err := LoadVocab(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrPersistence)

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, err = LoadListOpsTokenizer(path)
	assert.ErrorIs(t, err, ErrPersistence)
}
