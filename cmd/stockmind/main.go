package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/config"
	"github.com/vr-tejas/Stockmind/pkg/stockmind/encyclopedia"
	"github.com/vr-tejas/Stockmind/pkg/stockmind/llm"
	"github.com/vr-tejas/Stockmind/pkg/stockmind/pipeline"
	"github.com/vr-tejas/Stockmind/pkg/stockmind/quote"
	"github.com/vr-tejas/Stockmind/pkg/stockmind/render"
	"github.com/vr-tejas/Stockmind/pkg/stockmind/symbols"
)

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var (
		pretty  bool
		noColor bool
		history bool
	)
	cmd := &cobra.Command{
		Use:   "stockmind [company]",
		Short: "Company snapshot: profile, peer competitors, ticker and live price",
		Long: `stockmind looks a company up on Wikipedia, asks Gemini for its peer
competitors, resolves a ticker via Alpha Vantage and fetches the latest
traded price from Yahoo Finance. With no argument it prompts for a
company name on standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			}
			if name == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Company name: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && strings.TrimSpace(line) == "" {
					return fmt.Errorf("read company name: %w", err)
				}
				name = strings.TrimSpace(line)
			}
			if name == "" {
				return errors.New("company name must not be empty")
			}

			runner := &pipeline.Runner{
				Lookup:   encyclopedia.NewClient(cfg.Timeout),
				Finder:   &llm.Finder{Provider: &llm.GeminiProvider{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel}},
				Resolver: symbols.NewClient(cfg.AlphaVantageAPIKey, cfg.Timeout),
				Quotes:   quote.NewYahooService(cfg.Timeout),
				Top:      cfg.Top,
			}
			if history {
				runner.HistoryDays = symbols.ThreeMonthBars
			}

			rep, err := runner.Run(cmd.Context(), name)
			if err != nil {
				return err
			}

			rnd, err := render.New(cfg.Format)
			if err != nil {
				return err
			}
			return rnd.Render(cmd.OutOrStdout(), rep, render.Options{
				Color:       !noColor,
				Pretty:      pretty,
				MaxColWidth: maxColWidth(),
			})
		},
	}

	cmd.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format: text, table, json or yaml")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent json output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable price change coloring")
	cmd.Flags().IntVar(&cfg.Top, "top", cfg.Top, "competitors to rank by market cap (0 disables)")
	cmd.Flags().BoolVar(&history, "history", false, "include three months of daily closes")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-call timeout for external APIs")
	return cmd
}

// maxColWidth derives a table wrap width from the terminal, defaulting to 40.
func maxColWidth() int {
	if w := detectTerminalWidth(); w > 0 {
		half := w / 2
		if half > 60 {
			return 60
		}
		if half >= 20 {
			return half
		}
	}
	return 40
}
