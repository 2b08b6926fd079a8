package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"spyglass-srv/internal/analysis"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, show or clear past analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd.OutOrStdout())
		a, err := newApp(context.Background(), out, appOptions{})
		if err != nil {
			return err
		}
		defer a.close()

		out.historyList(a.historyUC.Load(a.ctx, localOwner))
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <history-id>",
	Short: "Print a past report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd.OutOrStdout())
		a, err := newApp(context.Background(), out, appOptions{})
		if err != nil {
			return err
		}
		defer a.close()

		item, err := a.historyUC.Get(a.ctx, localOwner, args[0])
		if err != nil {
			return err
		}
		out.report(item)
		return nil
	},
}

var assumeYes bool

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every past analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd.OutOrStdout())
		a, err := newApp(context.Background(), out, appOptions{})
		if err != nil {
			return err
		}
		defer a.close()

		confirmed := assumeYes
		if !confirmed {
			fmt.Fprint(cmd.OutOrStdout(), errorMessage(analysis.ErrClearNotConfirmed)+" [y/N] ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			confirmed = answer == "y" || answer == "yes" || answer == "s" || answer == "sim"
		}
		if !confirmed {
			out.info("Nothing was deleted.")
			return nil
		}

		if err := a.uc.ClearHistory(a.ctx, a.scope, analysis.ClearHistoryInput{Confirmed: true}); err != nil {
			return err
		}
		out.info("History cleared.")
		return nil
	},
}

func init() {
	historyClearCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
}
