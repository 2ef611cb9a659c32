package main

import (
	"context"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(NewCLI().ExecuteContext(context.Background()))
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lratok",
		Short: "Tokenize long range benchmark records",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the tokenizer config file")

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		newTrainListOpsCmd(),
		newCountCmd(),
		newEncodeCmd(),
		newEncodeFileCmd(),
		newDecodeCmd(),
	)

	return rootCmd
}
