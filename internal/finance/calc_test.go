package finance

import "testing"

func TestLineItemAmount(t *testing.T) {
	cases := []struct {
		name      string
		quantity  float64
		unitPrice float64
		want      float64
	}{
		{"whole units", 2, 100, 200},
		{"fractional quantity", 1.5, 50, 75},
		{"repeating cents", 3, 33.33, 99.99},
		{"rounds to two decimals", 3, 10.1234, 30.37},
		{"zero quantity", 0, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LineItemAmount(tc.quantity, tc.unitPrice); got != tc.want {
				t.Fatalf("LineItemAmount(%v, %v) = %v, want %v", tc.quantity, tc.unitPrice, got, tc.want)
			}
		})
	}
}

func TestSubtotal(t *testing.T) {
	items := []LineItem{
		{ID: "1", Description: "Item 1", Quantity: 1, UnitPrice: 100, Amount: 100},
		{ID: "2", Description: "Item 2", Quantity: 2, UnitPrice: 50, Amount: 100},
		{ID: "3", Description: "Item 3", Quantity: 1, UnitPrice: 25.50, Amount: 25.50},
	}
	if got := Subtotal(items); got != 225.50 {
		t.Fatalf("Subtotal = %v, want 225.50", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("Subtotal(nil) = %v, want 0", got)
	}
}

func TestSubtotalUsesStoredAmounts(t *testing.T) {
	// Amount disagrees with quantity*unitPrice on purpose; the stored figure wins.
	items := []LineItem{{Quantity: 3, UnitPrice: 10.1234, Amount: 30.37}}
	if got := Subtotal(items); got != 30.37 {
		t.Fatalf("Subtotal = %v, want 30.37", got)
	}
}

func TestTax(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		rate     float64
		want     float64
	}{
		{"ten percent", 100, 10, 10},
		{"fractional rate", 200, 8.5, 17},
		{"rounds to two decimals", 100, 8.875, 8.88},
		{"zero rate", 100, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Tax(tc.subtotal, tc.rate); got != tc.want {
				t.Fatalf("Tax(%v, %v) = %v, want %v", tc.subtotal, tc.rate, got, tc.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		tax      float64
		discount float64
		want     float64
	}{
		{"with discount", 100, 10, 5, 105},
		{"no discount", 200, 17, 0, 217},
		{"discount only", 100, 10, 20, 90},
		{"rounds combined expression once", 100.1234, 10.5678, 5.1234, 105.57},
		{"over-discount goes negative", 100, 0, 150, -50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Total(tc.subtotal, tc.tax, tc.discount); got != tc.want {
				t.Fatalf("Total(%v, %v, %v) = %v, want %v", tc.subtotal, tc.tax, tc.discount, got, tc.want)
			}
		})
	}
}

func TestAmountDue(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		paid  float64
		want  float64
	}{
		{"nothing paid", 100, 0, 100},
		{"half paid", 100, 50, 50},
		{"fully paid", 100, 100, 0},
		{"rounds to two decimals", 100.1234, 50.5678, 49.56},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AmountDue(tc.total, tc.paid); got != tc.want {
				t.Fatalf("AmountDue(%v, %v) = %v, want %v", tc.total, tc.paid, got, tc.want)
			}
		})
	}
}

func TestNewLineItemComputesAmount(t *testing.T) {
	item := NewLineItem("li-1", "Consulting", 3, 10.1234)
	if item.Amount != 30.37 {
		t.Fatalf("NewLineItem amount = %v, want 30.37", item.Amount)
	}
}
