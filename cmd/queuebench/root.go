package main

import (
	"github.com/spf13/cobra"

	"github.com/tezrry/queuebench/internal/bench"
	"github.com/tezrry/queuebench/pkg/logging"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "queuebench",
		Short:         "Time 100000 enqueues and dequeues on array, list and standard queues",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bench.NewRunner(bench.WithOutput(cmd.OutOrStdout()))
			if err != nil {
				logging.Error(err)
				return err
			}
			defer r.Close()

			if _, err = r.Run(cmd.Context()); err != nil {
				logging.Error(err)
				return err
			}
			return nil
		},
	}
}
