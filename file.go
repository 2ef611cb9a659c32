package tokenizer

import (
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lwch/logging"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const progressLines = 500_000

// FileOptions configures a FileTokenizer.
type FileOptions struct {
	// MinFreq drops symbols seen less often than this.
	MinFreq int
	// MaxSize caps the number of content symbols, 0 means unlimited.
	MaxSize   int
	LowerCase bool
	// Delimiter splits a line into symbols. nil splits on whitespace,
	// an empty string splits into characters.
	Delimiter *string
	Specials  SpecialTokens
}

// DefaultFileOptions lower-cases and splits on whitespace.
func DefaultFileOptions() FileOptions {
	return FileOptions{
		LowerCase: true,
		Specials:  DefaultSpecialTokens(),
	}
}

// EncodeOptions controls the special tokens added around every line.
type EncodeOptions struct {
	AddBos bool
	AddEos bool
	// Verbose logs progress while streaming large files.
	Verbose bool
}

// FileTokenizer is a word or symbol level tokenizer whose vocabulary is
// counted from corpus files. Use it in two phases: Count*, then Build.
// Encoding requires every symbol to be part of the built vocabulary.
type FileTokenizer struct {
	vocabTokenizer
	opts    FileOptions
	lower   cases.Caser
	counter *Counter
	built   bool
}

func NewFileTokenizer(opts FileOptions) (*FileTokenizer, error) {
	if opts.Specials == (SpecialTokens{}) {
		opts.Specials = DefaultSpecialTokens()
	}
	if opts.MinFreq < 0 || opts.MaxSize < 0 {
		return nil, errors.Errorf("invalid options: min_freq=%d, max_size=%d", opts.MinFreq, opts.MaxSize)
	}
	vocab, err := newVocab(opts.Specials[:], opts.Specials)
	if err != nil {
		return nil, err
	}
	return &FileTokenizer{
		vocabTokenizer: vocabTokenizer{vocab},
		opts:           opts,
		lower:          cases.Lower(language.Und),
		counter:        NewCounter(),
	}, nil
}

// NewFileTokenizerFromVocab wraps an already built vocabulary, typically one
// saved after counting. The result is frozen and ready to encode.
func NewFileTokenizerFromVocab(vocab *Vocab, opts FileOptions) (*FileTokenizer, error) {
	opts.Specials = vocab.Specials()
	tk, err := NewFileTokenizer(opts)
	if err != nil {
		return nil, err
	}
	tk.vocab = vocab
	tk.built = true
	return tk, nil
}

// LoadFileTokenizer reads a vocabulary written by SaveVocab.
func LoadFileTokenizer(path string, opts FileOptions) (*FileTokenizer, error) {
	vocab, err := LoadVocab(path)
	if err != nil {
		return nil, err
	}
	return NewFileTokenizerFromVocab(vocab, opts)
}

// Counter exposes the frequency table gathered so far.
func (t *FileTokenizer) Counter() *Counter {
	return t.counter
}

func (t *FileTokenizer) Built() bool {
	return t.built
}

// Tokenize splits one line into symbols, optionally framed by the bos and
// eos symbols.
func (t *FileTokenizer) Tokenize(line string, addBos, addEos bool) []string {
	line = strings.TrimSpace(line)
	if t.opts.LowerCase {
		line = t.lower.String(line)
	}
	var symbols []string
	switch {
	case t.opts.Delimiter == nil:
		symbols = strings.Fields(line)
	case *t.opts.Delimiter == "":
		symbols = make([]string, 0, len(line))
		for _, ch := range line {
			symbols = append(symbols, string(ch))
		}
	default:
		symbols = strings.Split(line, *t.opts.Delimiter)
	}
	if addBos {
		symbols = append([]string{t.opts.Specials.Symbol(Bos)}, symbols...)
	}
	if addEos {
		symbols = append(symbols, t.opts.Specials.Symbol(Eos))
	}
	return symbols
}

// Count tokenizes line and adds its symbols to the frequency table.
func (t *FileTokenizer) Count(line string, addBos, addEos bool) ([]string, error) {
	if t.built {
		return nil, ErrVocabFrozen
	}
	symbols := t.Tokenize(line, addBos, addEos)
	t.counter.Add(symbols...)
	return symbols, nil
}

// CountReader counts every line of r and returns the tokenized lines.
func (t *FileTokenizer) CountReader(r io.Reader, addBos, addEos bool) ([][]string, error) {
	if t.built {
		return nil, ErrVocabFrozen
	}
	var sents [][]string
	err := readLines(r, func(_ int, line string) error {
		symbols, err := t.Count(line, addBos, addEos)
		if err != nil {
			return err
		}
		sents = append(sents, symbols)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sents, nil
}

func (t *FileTokenizer) CountFile(path string, addBos, addEos bool) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "count file")
	}
	defer f.Close()
	sents, err := t.CountReader(f, addBos, addEos)
	if err != nil {
		return nil, errors.Wrapf(err, "count file %s", path)
	}
	logging.Info("counted %s: %d lines, %d unique symbols so far", path, len(sents), t.counter.Len())
	return sents, nil
}

// CountFiles counts the files one after the other without keeping the
// tokenized lines.
func (t *FileTokenizer) CountFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := t.CountFile(path, false, false); err != nil {
			return err
		}
	}
	return nil
}

// Build freezes the vocabulary: special tokens first, then content symbols
// by descending frequency.
func (t *FileTokenizer) Build() error {
	if t.built {
		return ErrVocabFrozen
	}
	logging.Info("building vocab with min_freq=%d, max_size=%d", t.opts.MinFreq, t.opts.MaxSize)
	words := make([]string, 0, numSpecials+t.counter.Len())
	for _, s := range specialOrder {
		words = append(words, t.opts.Specials.Symbol(s))
	}
	counts := t.counter.MostCommon(t.opts.MaxSize)
	for _, c := range counts {
		if c.Freq < t.opts.MinFreq {
			break
		}
		if _, ok := t.opts.Specials.Lookup(c.Symbol); ok {
			continue
		}
		words = append(words, c.Symbol)
	}
	vocab, err := newVocab(words, t.opts.Specials)
	if err != nil {
		return err
	}
	t.vocab = vocab
	t.built = true
	logging.Info("final vocab size %d from %d unique tokens, top: %s",
		vocab.Len(), t.counter.Len(), fmtCounts(counts, 10))
	return nil
}

// Encode maps the symbols of line to ids. A symbol outside the vocabulary
// yields ErrUnknownToken.
func (t *FileTokenizer) Encode(line string, addBos, addEos bool) ([]int, error) {
	symbols := t.Tokenize(line, addBos, addEos)
	ids := make([]int, len(symbols))
	for i, sym := range symbols {
		id, ok := t.vocab.ID(sym)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownToken, "%q", sym)
		}
		ids[i] = id
	}
	return ids, nil
}

func (t *FileTokenizer) EncodeBatch(lines []string, addBos, addEos bool) ([][]int, error) {
	ret := make([][]int, len(lines))
	for i, line := range lines {
		ids, err := t.Encode(line, addBos, addEos)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i)
		}
		ret[i] = ids
	}
	return ret, nil
}

// EncodeReader encodes r line by line into one concatenated sequence.
// Any failing line aborts the whole call.
func (t *FileTokenizer) EncodeReader(r io.Reader, opts EncodeOptions) ([]int32, error) {
	var encoded []int32
	err := readLines(r, func(n int, line string) error {
		if opts.Verbose && n > 0 && n%progressLines == 0 {
			logging.Info("    line %d", n)
		}
		ids, err := t.Encode(line, opts.AddBos, opts.AddEos)
		if err != nil {
			return errors.Wrapf(err, "line %d", n+1)
		}
		for _, id := range ids {
			encoded = append(encoded, int32(id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return encoded, nil
}

func (t *FileTokenizer) EncodeFile(path string, opts EncodeOptions) ([]int32, error) {
	if opts.Verbose {
		logging.Info("encoding file %s ...", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "encode file")
	}
	defer f.Close()
	encoded, err := t.EncodeReader(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "encode file %s", path)
	}
	return encoded, nil
}

// Symbols maps ids back to their symbols.
func (t *FileTokenizer) Symbols(ids []int) ([]string, error) {
	return t.symbols(ids)
}

// Decode returns the symbols of ids joined by spaces.
func (t *FileTokenizer) Decode(ids []int) (string, error) {
	symbols, err := t.symbols(ids)
	if err != nil {
		return "", err
	}
	return joinSymbols(symbols), nil
}

// DecodeCodes is used for corpora stored as decimal character codes: every
// content symbol is turned back into its character while special symbols
// are kept as is.
func (t *FileTokenizer) DecodeCodes(ids []int) (string, error) {
	symbols, err := t.symbols(ids)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, sym := range symbols {
		if t.vocab.IsSpecial(ids[i]) {
			sb.WriteString(sym)
			continue
		}
		code, err := strconv.Atoi(sym)
		if err != nil {
			return "", errors.Wrapf(err, "symbol %q is not a character code", sym)
		}
		if !utf8.ValidRune(rune(code)) || int(rune(code)) != code {
			return "", errors.Errorf("symbol %q is not a valid character code", sym)
		}
		sb.WriteRune(rune(code))
	}
	return sb.String(), nil
}

func (t *FileTokenizer) DecodeBatch(batch [][]int, codes bool) ([]string, error) {
	if codes {
		return decodeBatch(batch, t.DecodeCodes)
	}
	return decodeBatch(batch, t.Decode)
}
