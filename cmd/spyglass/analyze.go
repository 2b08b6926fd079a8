package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/model"
	"spyglass-srv/internal/presentation"
	"spyglass-srv/pkg/markdown"

	"github.com/spf13/cobra"
)

var (
	analyzeMode   string
	mute          bool
	narrationWait time.Duration
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <competitor> [competitor] [competitor]",
	Short: "Generate and present a report for up to three competitors",
	Example: `  spyglass analyze nubank.com.br inter.co
  spyglass analyze --mode deep "Banco Pan"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := newPrinter(cmd.OutOrStdout())
		a, err := newApp(ctx, out, appOptions{needGemini: true, narrate: !mute})
		if err != nil {
			return err
		}
		defer a.close()

		events, cancel, err := a.uc.Subscribe(a.ctx, a.scope)
		if err != nil {
			return err
		}
		defer cancel()

		out.info("Generating report (%s mode)...", modeLabel(analyzeMode))
		res, err := a.uc.Analyze(a.ctx, a.scope, analysis.AnalyzeInput{
			Competitors: args,
			Mode:        analyzeMode,
		})
		if err != nil {
			return err
		}
		out.info("Saved as %s", res.Item.ID)

		out.started(res.Item.Competitors, res.Sections)
		return a.follow(events, res.Generation)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeMode, "mode", "m", model.ModeStandard, "Analysis mode (standard, deep)")
	analyzeCmd.Flags().BoolVar(&mute, "mute", false, "Do not narrate sections")
	analyzeCmd.Flags().DurationVar(&narrationWait, "narration-wait", time.Minute, "How long to wait for the last narration clip")

	presentCmd.Flags().BoolVar(&mute, "mute", false, "Do not narrate sections")
	presentCmd.Flags().DurationVar(&narrationWait, "narration-wait", time.Minute, "How long to wait for the last narration clip")
}

func modeLabel(mode string) string {
	if mode == "" {
		return model.ModeStandard
	}
	return mode
}

// follow prints the presentation of generation gen until it completes.
func (a *app) follow(events <-chan presentation.Event, gen uint64) error {
	var last *presentation.Event
	for {
		select {
		case <-a.ctx.Done():
			return a.ctx.Err()
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			if evt.Generation != gen {
				continue
			}
			switch evt.Type {
			case presentation.EventSection:
				a.out.section(evt)
				last = &evt
			case presentation.EventComplete:
				if last != nil {
					a.out.traffic(last.Traffic)
				}
				a.out.complete()
				if last != nil && last.Section != nil {
					a.awaitNarration(last.Section.Markdown)
				}
				return nil
			}
		}
	}
}

// awaitNarration waits for the clip of the last section. Earlier clips may
// have been cut by the sections that followed them.
func (a *app) awaitNarration(content string) {
	if mute || !cfg.Presentation.NarrationEnabled {
		return
	}
	want := markdown.NarrationText(content, cfg.Presentation.NarrationMaxChars)
	if want == "" {
		return
	}

	ctx, cancel := context.WithTimeout(a.ctx, narrationWait)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			a.out.info("Narration of the last section did not arrive in time.")
			return
		case clip := <-a.clips:
			if clip.Text == want {
				return
			}
		}
	}
}
