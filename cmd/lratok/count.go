package main

import (
	"github.com/lwch/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	tokenizer "github.com/lwch/seqtokenizer"
	"github.com/lwch/seqtokenizer/config"
)

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [OUT]",
		Short: "Count the configured corpus and build a frequency vocabulary",
		Long:  "Count the symbols of every corpus file of a file tokenizer, build its vocabulary and optionally save it for encode-file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cfg.Tokenizer.Kind != config.KindFile {
				return errors.Errorf("count needs a %q tokenizer, got %q", config.KindFile, cfg.Tokenizer.Kind)
			}
			tk, err := cfg.Tokenizer.CountFile()
			if err != nil {
				return err
			}
			logging.Info("vocab size %d (%d unique symbols in %d files)",
				tk.VocabSize(), tk.Counter().Len(), len(cfg.Tokenizer.Corpus))
			if len(args) == 0 {
				return nil
			}
			if err := tokenizer.SaveVocab(args[0], tk.Vocab()); err != nil {
				return err
			}
			logging.Info("saved %d tokens to %s", tk.VocabSize(), args[0])
			return nil
		},
	}
	return cmd
}
