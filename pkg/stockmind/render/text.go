package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

// textRenderer prints the plain report documented in the README.
type textRenderer struct{}

func (textRenderer) Render(w io.Writer, r *types.Report, _ Options) error {
	fmt.Fprintf(w, "Company:             %s\n", companyLine(r))
	fmt.Fprintf(w, "Industry:            %s\n", orNA(r.Profile.Industry))
	fmt.Fprintf(w, "Peer Competitors:    %s\n", orNA(strings.Join(r.Competitors, ", ")))
	fmt.Fprintf(w, "Current Stock Price: %s\n", priceLine(r))

	if r.Profile.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", r.Profile.Summary)
	}
	if len(r.TopCompetitors) > 0 {
		fmt.Fprintf(w, "\nTop competitors by market cap:\n")
		for _, c := range r.TopCompetitors {
			fmt.Fprintf(w, "  %s (%s)  cap %s  price %s\n",
				c.Name, c.Ticker, FormatIntComma(c.MarketCap), c.PriceFmt)
		}
	}
	if len(r.History) > 0 {
		first := r.History[0]
		last := r.History[len(r.History)-1]
		fmt.Fprintf(w, "\nHistory: %d closes, %s %.2f -> %s %.2f\n",
			len(r.History), first.Date, first.Close, last.Date, last.Close)
	}
	return nil
}

func companyLine(r *types.Report) string {
	name := r.Profile.Name
	if r.Ticker != "" {
		return fmt.Sprintf("%s (%s)", name, r.Ticker)
	}
	return name
}

func priceLine(r *types.Report) string {
	if r.Quote == nil {
		return "n/a (no ticker resolved)"
	}
	return fmt.Sprintf("%s %s", r.Quote.PriceFmt, r.Quote.Currency)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "n/a"
	}
	return s
}
