package reports

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		current  int64
		previous int64
		want     string
	}{
		{current: 0, previous: 0, want: "0"},
		{current: 500, previous: 0, want: "100"},
		{current: 150, previous: 100, want: "50"},
		{current: 100, previous: 150, want: "-33.33"},
		{current: 0, previous: 200, want: "-100"},
		{current: 200, previous: 200, want: "0"},
	}

	for _, tt := range tests {
		got := GrowthRate(tt.current, tt.previous)
		want := decimal.RequireFromString(tt.want)
		if !got.Equal(want) {
			t.Fatalf("GrowthRate(%d, %d) = %s, want %s", tt.current, tt.previous, got, want)
		}
	}
}

func TestCollectionRate(t *testing.T) {
	tests := []struct {
		collected int64
		billed    int64
		want      string
	}{
		{collected: 0, billed: 0, want: "0"},
		{collected: 500, billed: 1000, want: "50"},
		{collected: 1000, billed: 1000, want: "100"},
		{collected: 1, billed: 3, want: "33.33"},
	}

	for _, tt := range tests {
		got := CollectionRate(tt.collected, tt.billed)
		want := decimal.RequireFromString(tt.want)
		if !got.Equal(want) {
			t.Fatalf("CollectionRate(%d, %d) = %s, want %s", tt.collected, tt.billed, got, want)
		}
	}
}
