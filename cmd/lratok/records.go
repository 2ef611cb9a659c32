package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	tokenizer "github.com/lwch/seqtokenizer"
	"github.com/lwch/seqtokenizer/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return cfg, nil
}

// readRecords decodes one JSON record per line, blank lines are skipped.
// Numbers are kept verbatim so labels pass through unchanged.
func readRecords(r io.Reader, fn func(n int, rec tokenizer.Record) error) error {
	rd := bufio.NewReader(r)
	var n, line int
	for {
		str, err := rd.ReadString('\n')
		line++
		if strings.TrimSpace(str) != "" {
			var rec tokenizer.Record
			dec := json.NewDecoder(strings.NewReader(str))
			dec.UseNumber()
			if err := dec.Decode(&rec); err != nil {
				return errors.Wrapf(err, "record %d (line %d)", n, line)
			}
			if err := fn(n, rec); err != nil {
				return errors.Wrapf(err, "record %d (line %d)", n, line)
			}
			n++
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "read line %d", line)
		}
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeOutput streams fn into path and only reports success once the data
// is flushed and the file closed.
func writeOutput(path string, fn func(w *bufio.Writer) error) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	if err := fn(w); err != nil {
		out.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return errors.Wrap(err, "flush output")
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "close output")
	}
	return nil
}
