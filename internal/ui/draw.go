package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spacesedan/sentiment-detector/internal/session"
)

const BAR_WIDTH = 20

func Draw(w io.Writer, r session.Render) {
	fmt.Fprintln(w, "── History ──")
	for _, line := range r.HistoryLines {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w, "── "+session.APP_NAME+" ──")

	switch r.Screen {
	case session.Intro:
		fmt.Fprintln(w, "Welcome to "+session.APP_NAME)
		fmt.Fprintln(w, "Type /start to begin.")
	case session.PromptEntry:
		fmt.Fprintln(w, "Enter your prompt to detect sentiment:")
		text := r.PromptText
		if text == "" {
			text = r.Placeholder
		}
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintln(w, "> "+line)
		}
		fmt.Fprintln(w, "Type /analyze when done.")
	case session.Result:
		drawResult(w, r)
	}

	if r.Advisory != nil {
		fmt.Fprintf(w, "[%s] %s\n", r.Advisory.Title, strings.ReplaceAll(r.Advisory.Message, "\n", " - "))
	}
}

func drawResult(w io.Writer, r session.Render) {
	fmt.Fprintln(w, "Sentiment Analysis Result")
	if r.Label == nil {
		return
	}
	fmt.Fprintf(w, "  %s  (%s)\n", r.Emoji, r.Color)
	fmt.Fprintf(w, "Sentiment: %s\n", r.Label.Title())
	for _, s := range r.Chart {
		fmt.Fprintf(w, "  %-8s %-*s %s\n", s.Name, BAR_WIDTH, bar(s.Value), s.Percent)
	}
	if r.Scores != nil {
		fmt.Fprintf(w, "  compound %.4f\n", r.Scores.Compound)
	}
	fmt.Fprintln(w, "/another  /new  /exit")
}

func bar(v float64) string {
	n := int(math.Round(v * BAR_WIDTH))
	return strings.Repeat("█", max(0, min(n, BAR_WIDTH)))
}
