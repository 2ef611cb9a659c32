package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lwch/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	tokenizer "github.com/lwch/seqtokenizer"
	"github.com/lwch/seqtokenizer/config"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [RECORDS]",
		Short: "Encode JSON records into input_ids, labels and pad_mask",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			tk, err := cfg.Tokenizer.New()
			if err != nil {
				return err
			}

			var input string
			if len(args) > 0 {
				input = args[0]
			}
			in, err := openInput(input)
			if err != nil {
				return err
			}
			defer in.Close()
			var n int
			err = writeOutput(output, func(w *bufio.Writer) error {
				enc := json.NewEncoder(w)
				count, err := encodeRecords(cfg.Tokenizer, tk, in, func(v any) error {
					return enc.Encode(v)
				})
				n = count
				return err
			})
			if err != nil {
				return err
			}
			logging.Info("encoded %d records", n)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file, stdout by default")
	return cmd
}

func encodeRecords(cfg config.TokenizerConfig, tk tokenizer.Tokenizer, in io.Reader, emit func(any) error) (int, error) {
	var count int
	var err error
	if cfg.Pair {
		pe, ok := tk.(tokenizer.PairEncoder)
		if !ok {
			return 0, errors.Errorf("tokenizer %q does not encode pairs", cfg.Kind)
		}
		err = readRecords(in, func(_ int, rec tokenizer.Record) error {
			e, err := pe.EncodePair(cfg.MaxLength, rec)
			if err != nil {
				return err
			}
			if cfg.Pad {
				pe.PadPair(cfg.MaxLength, e)
			}
			count++
			return emit(e)
		})
		return count, err
	}
	re, ok := tk.(tokenizer.RecordEncoder)
	if !ok {
		return 0, errors.Errorf("tokenizer %q does not encode records", cfg.Kind)
	}
	err = readRecords(in, func(_ int, rec tokenizer.Record) error {
		e, err := re.Encode(cfg.MaxLength, rec)
		if err != nil {
			return err
		}
		if cfg.Pad {
			re.Pad(cfg.MaxLength, e)
		}
		count++
		return emit(e)
	})
	return count, err
}

func newEncodeFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode-file CORPUS OUT",
		Short: "Encode a text corpus line by line into little-endian int32 ids",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			verbose, _ := cmd.Flags().GetBool("verbose")
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cfg.Tokenizer.Kind != config.KindFile {
				return errors.Errorf("encode-file needs a %q tokenizer, got %q", config.KindFile, cfg.Tokenizer.Kind)
			}
			tk, err := cfg.Tokenizer.New()
			if err != nil {
				return err
			}
			ids, err := tk.(*tokenizer.FileTokenizer).EncodeFile(args[0], tokenizer.EncodeOptions{
				AddBos:  cfg.Tokenizer.File.AddBos,
				AddEos:  cfg.Tokenizer.File.AddEos,
				Verbose: verbose,
			})
			if err != nil {
				return err
			}

			err = writeOutput(args[1], func(w *bufio.Writer) error {
				return errors.Wrap(binary.Write(w, binary.LittleEndian, ids), "write ids")
			})
			if err != nil {
				return err
			}
			logging.Info("wrote %d ids to %s", len(ids), args[1])
			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Log progress")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode IDS...",
		Short: "Decode token ids with the configured tokenizer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			tk, err := cfg.Tokenizer.New()
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			str, err := tk.Decode(ids)
			if err != nil {
				return err
			}
			fmt.Println(str)
			return nil
		},
	}
}

// parseIDs accepts ids as separate arguments or comma/space separated.
func parseIDs(args []string) ([]int, error) {
	var ids []int
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' '
		}) {
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "parse id %q", field)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
