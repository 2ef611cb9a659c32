package main

import (
	"github.com/lwch/logging"
	"github.com/spf13/cobra"

	tokenizer "github.com/lwch/seqtokenizer"
)

func newTrainListOpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train-listops RECORDS OUT",
		Short: "Build and save a fixed symbol vocabulary",
		Long:  "Read JSON records, number the whitespace separated symbols of a field in first-seen order and save the vocabulary.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, _ := cmd.Flags().GetString("field")

			in, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			var records []tokenizer.Record
			err = readRecords(in, func(_ int, rec tokenizer.Record) error {
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}

			vocab, err := tokenizer.TrainListOps(records, field, tokenizer.DefaultSpecialTokens())
			if err != nil {
				return err
			}
			if err := tokenizer.SaveVocab(args[1], vocab); err != nil {
				return err
			}
			logging.Info("saved %d tokens to %s", vocab.Len(), args[1])
			return nil
		},
	}
	cmd.Flags().String("field", tokenizer.FieldSource, "Record field holding the symbols")
	return cmd
}
