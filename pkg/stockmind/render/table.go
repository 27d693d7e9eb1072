package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

// tableRenderer renders the report as colored tables.
type tableRenderer struct{}

func (tableRenderer) Render(w io.Writer, r *types.Report, opts Options) error {
	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}

	fmt.Fprintln(w, text.Bold.Sprint(strings.ToUpper(companyLine(r))))

	tw := newWriter(w, maxWidth)
	tw.AppendHeader(table.Row{"FIELD", "VALUE"})
	tw.AppendRow(table.Row{"Industry", orNA(r.Profile.Industry)})
	tw.AppendRow(table.Row{"Summary", r.Profile.Summary})
	tw.AppendRow(table.Row{"Ticker", orNA(r.Ticker)})
	if r.Quote != nil {
		price := fmt.Sprintf("%s %s", r.Quote.PriceFmt, r.Quote.Currency)
		chg := r.Quote.ChangePct
		if opts.Color {
			if r.Quote.ChangeRaw > 0 {
				price = text.Colors{text.FgGreen}.Sprint(price)
				chg = text.Colors{text.FgGreen}.Sprint(chg)
			} else if r.Quote.ChangeRaw < 0 {
				price = text.Colors{text.FgRed}.Sprint(price)
				chg = text.Colors{text.FgRed}.Sprint(chg)
			}
		}
		tw.AppendRow(table.Row{"Price", price})
		tw.AppendRow(table.Row{"Chg%", chg})
	} else {
		tw.AppendRow(table.Row{"Price", "n/a (no ticker resolved)"})
	}
	if r.MarketCap > 0 {
		tw.AppendRow(table.Row{"Market Cap", FormatIntComma(r.MarketCap)})
	}
	tw.Render()

	if len(r.Sectors) > 0 {
		fmt.Fprintln(w)
		tw := newWriter(w, maxWidth)
		tw.AppendHeader(table.Row{"SECTOR", "COMPETITORS"})
		for _, s := range r.Sectors {
			tw.AppendRow(table.Row{orNA(s.Sector), strings.Join(s.Competitors, ", ")})
		}
		tw.Render()
	}

	if len(r.TopCompetitors) > 0 {
		fmt.Fprintln(w)
		tw := newWriter(w, maxWidth)
		tw.AppendHeader(table.Row{"COMPETITOR", "TICKER", "MARKET CAP", "PRICE"})
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
			{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignRight},
		})
		for _, c := range r.TopCompetitors {
			tw.AppendRow(table.Row{c.Name, c.Ticker, FormatIntComma(c.MarketCap), c.PriceFmt})
		}
		tw.Render()
	}

	if len(r.History) > 0 {
		fmt.Fprintln(w)
		tw := newWriter(w, maxWidth)
		tw.AppendHeader(table.Row{"DATE", "CLOSE"})
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
		})
		for _, b := range r.History {
			tw.AppendRow(table.Row{b.Date, fmt.Sprintf("%.2f", b.Close)})
		}
		tw.Render()
	}
	return nil
}

func newWriter(w io.Writer, maxWidth int) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: maxWidth}})
	return tw
}

// FormatIntComma formats an integer with comma thousand separators.
func FormatIntComma(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		out := make([]byte, 0, len(s)+len(s)/3)
		rem := len(s) % 3
		if rem == 0 {
			rem = 3
		}
		out = append(out, s[:rem]...)
		for i := rem; i < len(s); i += 3 {
			out = append(out, ',')
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}
