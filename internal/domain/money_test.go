package domain_test

import (
	"testing"

	"github.com/wearlytic/catalog/internal/domain"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		rupees float64
	}{
		{"rupee symbol", "₹623", 623},
		{"symbol and space", "₹ 5999", 5999},
		{"empty", "", 0},
		{"no digits", "N/A", 0},
		{"thousands separator", "₹1,299", 1299},
		{"decimal", "₹623.45", 623.45},
		{"plain number", "1477", 1477},
		{"trailing whitespace", "  ₹100  ", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseMoney(tt.raw)
			if got.Rupees() != tt.rupees {
				t.Errorf("ParseMoney(%q).Rupees() = %v, want %v", tt.raw, got.Rupees(), tt.rupees)
			}
		})
	}
}

func TestMoneyFromString_ReportsFailure(t *testing.T) {
	if _, ok := domain.MoneyFromString(""); ok {
		t.Error("MoneyFromString(\"\") should report failure")
	}
	if _, ok := domain.MoneyFromString("abc"); ok {
		t.Error("MoneyFromString(\"abc\") should report failure")
	}
	if _, ok := domain.MoneyFromString("1.2.3"); ok {
		t.Error("MoneyFromString(\"1.2.3\") should report failure")
	}
	if m, ok := domain.MoneyFromString("₹623"); !ok || m != 62300 {
		t.Errorf("MoneyFromString(\"₹623\") = %d, %v; want 62300, true", m, ok)
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		paise domain.Money
		want  string
	}{
		{62300, "₹623"},
		{62345, "₹623.45"},
		{0, "₹0"},
	}

	for _, tt := range tests {
		if got := tt.paise.String(); got != tt.want {
			t.Errorf("Money(%d).String() = %q, want %q", tt.paise, got, tt.want)
		}
	}
}

func TestProduct_PriceMinor(t *testing.T) {
	p := domain.Product{Price: "₹1477"}
	if got := p.PriceMinor(); got != 147700 {
		t.Errorf("PriceMinor() = %d, want 147700", got)
	}

	missing := domain.Product{}
	if got := missing.PriceMinor(); got != 0 {
		t.Errorf("PriceMinor() on missing price = %d, want 0", got)
	}
}
