package main

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenizer "github.com/lwch/seqtokenizer"
	"github.com/lwch/seqtokenizer/config"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1,2", "3", "4 5"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids)

	_, err = parseIDs([]string{"x"})
	assert.Error(t, err)
}

func TestEncodeRecords(t *testing.T) {
	cfg := config.TokenizerConfig{Kind: config.KindByte, MaxLength: 4, Pad: true}
	tk := tokenizer.NewByteTokenizer(tokenizer.DefaultByteOptions())

	in := strings.NewReader(`{"Source": "Hi", "Target": 1}
{"Source": "Hello", "Target": 0}
`)
	var out []*tokenizer.Encoding
	n, err := encodeRecords(cfg, tk, in, func(v any) error {
		out = append(out, v.(*tokenizer.Encoding))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{72, 105, 259, 256}, out[0].InputIDs)
	assert.Equal(t, []int{0, 0, 0, 1}, out[0].PadMask)
	assert.Equal(t, "1", fmt.Sprint(out[0].Labels))
	assert.Equal(t, []int{72, 101, 108, 259}, out[1].InputIDs)
}

func TestEncodeRecordsPair(t *testing.T) {
	cfg := config.TokenizerConfig{Kind: config.KindByte, MaxLength: 3, Pair: true}
	tk := tokenizer.NewByteTokenizer(tokenizer.DefaultByteOptions())

	var out []*tokenizer.PairEncoding
	_, err := encodeRecords(cfg, tk, strings.NewReader(`{"text1": "ab", "text2": "a", "Target": 2}`), func(v any) error {
		out = append(out, v.(*tokenizer.PairEncoding))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, [2][]int{{97, 98, 259}, {97, 259}}, out[0].InputIDs)

	_, err = encodeRecords(cfg, tokenizer.NewImageTokenizer(0), strings.NewReader(`{}`), func(any) error { return nil })
	assert.Error(t, err)
}

func TestEncodeRecordsBadInput(t *testing.T) {
	cfg := config.TokenizerConfig{Kind: config.KindByte, MaxLength: 3}
	tk := tokenizer.NewByteTokenizer(tokenizer.DefaultByteOptions())
	_, err := encodeRecords(cfg, tk, strings.NewReader("{\"Source\": \"a\"}\n{\"text1\": \"b\"}\n"), func(any) error { return nil })
	assert.ErrorIs(t, err, tokenizer.ErrMissingField)
	assert.Contains(t, err.Error(), "record 1")
}

func TestTrainListOpsCmd(t *testing.T) {
	dir := t.TempDir()
	records := filepath.Join(dir, "train.jsonl")
	require.NoError(t, os.WriteFile(records, []byte(`{"Source": "( MAX 1 2 )", "Target": 2}
{"Source": "( MIN 3 )", "Target": 3}
`), 0o644))
	out := filepath.Join(dir, "vocab.json")

	cmd := NewCLI()
	cmd.SetArgs([]string{"train-listops", records, out})
	cmd.SetOut(new(bytes.Buffer))
	require.NoError(t, cmd.Execute())

	tk, err := tokenizer.LoadListOpsTokenizer(out)
	require.NoError(t, err)
	assert.Equal(t, 11, tk.VocabSize())
	str, err := tk.Decode([]int{0, 5, 6, 4})
	require.NoError(t, err)
	assert.Equal(t, "( MIN 3 )", str)
}

func TestReadRecordsLines(t *testing.T) {
	in := strings.NewReader("{\"Source\": \"a\", \"Target\": 7}\n\n  \n{\"Source\": \"b\"}\r\n\n")
	var recs []tokenizer.Record
	err := readRecords(in, func(n int, rec tokenizer.Record) error {
		assert.Equal(t, len(recs), n)
		recs = append(recs, rec)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "7", fmt.Sprint(recs[0][tokenizer.FieldTarget]))
	assert.Equal(t, "b", recs[1][tokenizer.FieldSource])

	err = readRecords(strings.NewReader("{\"Source\": \"a\"}\n\n{bad\n"), func(int, tokenizer.Record) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1 (line 3)")
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ids.bin")
	require.NoError(t, writeOutput(path, func(w *bufio.Writer) error {
		_, err := w.WriteString("ids")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ids", string(data))

	assert.Error(t, writeOutput(filepath.Join(dir, "missing", "ids.bin"), func(*bufio.Writer) error { return nil }))
	assert.Error(t, writeOutput(path, func(*bufio.Writer) error { return os.ErrInvalid }))
}

func TestCountAndEncodeFileCmd(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(corpus, []byte("the cat\nthe dog\n"), 0o644))
	countCfg := filepath.Join(dir, "count.yaml")
	require.NoError(t, os.WriteFile(countCfg, []byte("tokenizer:\n  kind: file\n  corpus: ["+corpus+"]\n"), 0o644))
	vocab := filepath.Join(dir, "vocab.json")

	cmd := NewCLI()
	cmd.SetArgs([]string{"count", "-c", countCfg, vocab})
	require.NoError(t, cmd.Execute())

	v, err := tokenizer.LoadVocab(vocab)
	require.NoError(t, err)
	assert.Equal(t, []string{"<unk>", "<pad>", "<bos>", "<eos>", "the", "cat", "dog"}, v.Tokens())

	encodeCfg := filepath.Join(dir, "encode.yaml")
	require.NoError(t, os.WriteFile(encodeCfg, []byte("tokenizer:\n  kind: file\n  vocabPath: "+vocab+"\n"), 0o644))
	out := filepath.Join(dir, "ids.bin")
	cmd = NewCLI()
	cmd.SetArgs([]string{"encode-file", "-c", encodeCfg, corpus, out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	ids := make([]int32, len(data)/4)
	require.NoError(t, binary.Read(bytes.NewReader(data), binary.LittleEndian, ids))
	assert.Equal(t, []int32{4, 5, 3, 4, 6, 3}, ids)

	cmd = NewCLI()
	cmd.SetArgs([]string{"count", "-c", encodeCfg})
	assert.Error(t, cmd.Execute())
}
