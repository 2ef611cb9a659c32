package tokenizer

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type vocabFile struct {
	Tokens        map[string]int    `json:"tokens"`
	SpecialTokens map[string]string `json:"special_tokens"`
}

// WriteTo writes the vocabulary as a JSON document.
func (v *Vocab) WriteTo(w io.Writer) (int64, error) {
	data, err := json.Marshal(vocabFile{
		Tokens:        v.Mapping(),
		SpecialTokens: v.specials.Names(),
	})
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(data, '\n'))
	return int64(n), err
}

// ReadVocab parses a vocabulary written by WriteTo. Every failure wraps
// ErrPersistence.
func ReadVocab(r io.Reader) (*Vocab, error) {
	var file vocabFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrapf(ErrPersistence, "decode: %v", err)
	}
	if file.Tokens == nil {
		return nil, errors.Wrap(ErrPersistence, `missing "tokens"`)
	}
	if file.SpecialTokens == nil {
		return nil, errors.Wrap(ErrPersistence, `missing "special_tokens"`)
	}
	var specials SpecialTokens
	for name, sym := range file.SpecialTokens {
		s, ok := ParseSpecial(name)
		if !ok {
			return nil, errors.Wrapf(ErrPersistence, "unknown special token %q", name)
		}
		specials[s] = sym
	}
	for _, s := range specialOrder {
		if specials[s] == "" {
			return nil, errors.Wrapf(ErrPersistence, "special token %s not defined", s)
		}
	}
	v, err := vocabFromMapping(file.Tokens, specials)
	if err != nil {
		return nil, errors.Wrapf(ErrPersistence, "%v", err)
	}
	return v, nil
}

func SaveVocab(path string, v *Vocab) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save vocab")
	}
	if _, err := v.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "save vocab %s", path)
	}
	return f.Close()
}

func LoadVocab(path string) (*Vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrPersistence, "%v", err)
	}
	defer f.Close()
	v, err := ReadVocab(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return v, nil
}
