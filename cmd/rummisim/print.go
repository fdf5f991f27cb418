package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"rummikub/internal/app"
)

// printReport writes the tournament table and the first-cold-start table.
func printReport(w io.Writer, r app.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Rummikub games: %d (seed %d)\n", r.Games, r.Seed)
	fmt.Fprintln(w, strings.Repeat("-", 65))
	fmt.Fprintf(w, "Empty hand wins: %d  Deck exhaustions: %d  Ties: %d  Avg rounds: %.1f\n",
		r.EmptyHandWins, r.DeckExhaustions, r.Ties, r.AvgRounds)

	fmt.Fprint(w, "\nTournament Player Statistics:\n\n")
	fmt.Fprintln(tw, "Name\tWin%\tWon\tLost\tTied\t")
	for _, p := range r.Players {
		fmt.Fprintf(tw, "%s\t%.2f%%\t%d\t%d\t%d\t\n", p.Name, p.WinPercent(), p.Wins, p.Losses, p.Ties)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprint(w, "\nFirst Cold_Start Winning States\n\n")
	fmt.Fprintln(tw, "Name\tWin%\tWon\tLost\tTied\t")
	for _, p := range r.Players {
		f := p.FirstColdStart
		fmt.Fprintf(tw, "%s\t%.2f%%\t%d\t%d\t%d\t\n", p.Name, f.WinPercent(), f.Wins, f.Losses, f.Ties)
	}
	fmt.Fprintln(tw, "\t\t\t\t\t")
	agg := r.FirstColdStart
	fmt.Fprintf(tw, "Aggregate first_cold_start\t%.2f%%\t%d\t%d\t%d\t\n", agg.WinPercent(), agg.Wins, agg.Losses, agg.Ties)
	avg := r.AverageNotFirst
	fmt.Fprintf(tw, "Average not_first_cold_start\t%.2f%%\t%.0f\t%.0f\t\t\n", avg.WinPercent, avg.Wins, avg.Losses)
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.NoColdStart > 0 {
		fmt.Fprintf(w, "\nGames without a cold-start passer: %d\n", r.NoColdStart)
	}
	return nil
}
