package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/pokepack/pokepack-tracker/internal/api/client"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printPacksTable(packs []apiclient.PackView) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tSET\tTYPE\tPRICE\tSTATUS\n")
	for i := range packs {
		p := &packs[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			truncate(p.Name, 40),
			p.SetName,
			p.ProductType,
			formatPrice(p.CurrentPrice),
			p.PriceStatus,
		)
	}
	return tw.finish()
}

func printPackDetail(p *apiclient.PackView) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Set:\t%s (%s)\n", p.SetName, p.Series)
	tw.writef("Type:\t%s\n", p.ProductType)
	tw.writef("Price:\t%s\n", formatPrice(p.CurrentPrice))
	if p.ReferencePrice > 0 {
		tw.writef("Reference:\t$%.2f (%+.1f%%)\n", p.ReferencePrice, p.DiffPct)
	}
	tw.writef("Status:\t%s\n", p.PriceStatus)
	tw.writef("Live Data:\t%v\n", p.IsRealData)
	if p.BuyURL != "" {
		tw.writef("URL:\t%s\n", p.BuyURL)
	}
	return tw.finish()
}

func printAlertsTable(alerts []domain.PriceAlert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("PACK\tNAME\tTARGET\tONCE\tTRIGGERED\n")
	for i := range alerts {
		a := &alerts[i]
		tw.writef("%s\t%s\t$%.2f\t%v\t%v\n",
			a.PackID,
			truncate(a.PackName, 40),
			a.TargetPrice,
			a.NotifyOnce,
			a.Triggered,
		)
	}
	return tw.finish()
}

func printWatchlistTable(items []domain.WatchlistItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tSET\tTYPE\tSAVED PRICE\tSAVED AT\n")
	for i := range items {
		item := &items[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			truncate(item.Name, 40),
			item.SetName,
			item.ProductType,
			formatPrice(item.CurrentPrice),
			item.SavedAt.Format("2006-01-02 15:04"),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPrice(p float64) string {
	if p <= 0 {
		return "-"
	}
	return fmt.Sprintf("$%.2f", p)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
