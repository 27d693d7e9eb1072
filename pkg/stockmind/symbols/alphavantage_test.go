package symbols

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithBaseURL("test-key", srv.URL, srv.Client())
}

func TestSearchSymbolPrefersUSRegion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "SYMBOL_SEARCH" {
			t.Errorf("function: got %q", got)
		}
		if r.URL.Query().Get("apikey") == "" {
			t.Error("apikey missing from request")
		}
		w.Write([]byte(`{"bestMatches": [
			{"1. symbol": "APC.DEX", "2. name": "Apple Inc", "4. region": "XETRA"},
			{"1. symbol": "AAPL", "2. name": "Apple Inc", "4. region": "United States"}
		]}`))
	})

	sym, err := c.SearchSymbol(context.Background(), "Apple Inc.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym != "AAPL" {
		t.Errorf("got %q, want AAPL", sym)
	}
}

func TestSearchSymbolFallsBackToFirstMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bestMatches": [
			{"1. symbol": "7203.T", "2. name": "Toyota Motor", "4. region": "Tokyo"},
			{"1. symbol": "TYT.LON", "2. name": "Toyota Motor", "4. region": "United Kingdom"}
		]}`))
	})

	sym, err := c.SearchSymbol(context.Background(), "Toyota")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym != "7203.T" {
		t.Errorf("got %q, want 7203.T", sym)
	}
}

func TestSearchSymbolNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bestMatches": []}`))
	})

	_, err := c.SearchSymbol(context.Background(), "Definitely Private LLC")
	var nf *types.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestThrottleNoteIsTransient(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`))
	})

	_, err := c.SearchSymbol(context.Background(), "Apple Inc.")
	var te *types.TransientError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransientError, got %v", err)
	}
}

func TestServerErrorIsTransient(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.SearchSymbol(context.Background(), "Apple Inc.")
	var te *types.TransientError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransientError, got %v", err)
	}
}

func TestMissingAPIKeyFailsBeforeNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	c := NewClientWithBaseURL("", srv.URL, srv.Client())

	ctx := context.Background()
	var te *types.TransientError
	if _, err := c.SearchSymbol(ctx, "Apple Inc."); !errors.As(err, &te) {
		t.Errorf("SearchSymbol: expected TransientError, got %v", err)
	}
	if _, err := c.MarketCap(ctx, "AAPL"); !errors.As(err, &te) {
		t.Errorf("MarketCap: expected TransientError, got %v", err)
	}
	if _, err := c.DailyHistory(ctx, "AAPL", 63); !errors.As(err, &te) {
		t.Errorf("DailyHistory: expected TransientError, got %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Errorf("server hit %d times, want 0", n)
	}
}

func TestMarketCap(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{"numeric", `{"Symbol": "AAPL", "MarketCapitalization": "2800000000000"}`, 2_800_000_000_000},
		{"none", `{"Symbol": "XYZ", "MarketCapitalization": "None"}`, 0},
		{"absent", `{"Symbol": "XYZ"}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			got, err := c.MarketCap(context.Background(), "AAPL")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailyHistorySortsAndTrims(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("outputsize"); got != "compact" {
			t.Errorf("outputsize: got %q", got)
		}
		w.Write([]byte(`{"Time Series (Daily)": {
			"2026-08-28": {"4. close": "180.32"},
			"2026-08-25": {"4. close": "178.10"},
			"2026-08-26": {"4. close": "179.00"},
			"2026-08-27": {"4. close": "181.40"}
		}}`))
	})

	bars, err := c.DailyHistory(context.Background(), "AAPL", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(bars))
	}
	if bars[0].Date != "2026-08-26" || bars[2].Date != "2026-08-28" {
		t.Errorf("bars not sorted/trimmed: %v", bars)
	}
	if bars[2].Close != 180.32 {
		t.Errorf("close: got %v", bars[2].Close)
	}
}

func TestDailyHistoryEmptyIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.DailyHistory(context.Background(), "DELISTED", 63)
	var nf *types.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
