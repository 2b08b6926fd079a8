package main

import (
	"os"
	"os/signal"
	"syscall"

	"spyglass-srv/internal/analysis"

	"github.com/spf13/cobra"
)

var presentCmd = &cobra.Command{
	Use:   "present <history-id>",
	Short: "Present a past report again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := newPrinter(cmd.OutOrStdout())
		a, err := newApp(ctx, out, appOptions{needGemini: !mute, narrate: !mute})
		if err != nil {
			return err
		}
		defer a.close()

		events, cancel, err := a.uc.Subscribe(a.ctx, a.scope)
		if err != nil {
			return err
		}
		defer cancel()

		ws, err := a.uc.Present(a.ctx, a.scope, analysis.PresentInput{HistoryID: args[0]})
		if err != nil {
			return err
		}

		var competitors []string
		if ws.Current != nil {
			competitors = ws.Current.Competitors
		}
		out.started(competitors, ws.Presentation.Total)
		return a.follow(events, ws.Presentation.Generation)
	},
}
