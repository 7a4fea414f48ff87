package render

import (
	"strings"
	"testing"
	"time"
)

func TestRenderHTML(t *testing.T) {
	due := time.Date(2026, time.April, 11, 0, 0, 0, 0, time.UTC)
	input := RenderInput{
		Brand: BrandView{
			BusinessName: "Harbor Design",
			Email:        "studio@harbor.example",
			AccentColor:  "#1d4ed8",
			FontFamily:   "Inter",
		},
		Invoice: InvoiceView{
			Number:     "INV-2026-0007",
			Status:     "sent",
			IssueDate:  time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
			DueDate:    &due,
			Subtotal:   100.12,
			TaxAmount:  10.58,
			Total:      105.57,
			AmountDue:  105.57,
			Discount:   5.13,
			Currency:   "USD",
			Notes:      "Thanks for your business.",
			Terms:      "Payment due within 30 days.",
		},
		Customer: CustomerView{Name: "Acme Corporation", Email: "billing@acme.example"},
		Items: []LineItemView{
			{Description: "Design sprint", Quantity: 2, UnitPrice: 50.06, Amount: 100.12},
		},
	}

	html, err := NewRenderer().RenderHTML(input)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	for _, want := range []string{
		"INV-2026-0007",
		"Harbor Design",
		"Acme Corporation",
		"$105.57",
		"Mar 12, 2026",
		"Apr 11, 2026",
		"--primary: #1d4ed8",
		"Thanks for your business.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}
}

func TestRenderHTMLSanitizesStyle(t *testing.T) {
	input := RenderInput{
		Brand: BrandView{
			AccentColor: `red;} body { display: none`,
			FontFamily:  `"><script>`,
		},
		Invoice: InvoiceView{Number: "INV-2026-0001", Currency: "USD"},
	}

	html, err := NewRenderer().RenderHTML(input)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(html, "--primary: #111827") {
		t.Error("invalid accent color should fall back to the default")
	}
	if !strings.Contains(html, `--font: "Space Grotesk"`) {
		t.Error("invalid font family should fall back to the default")
	}
	if !strings.Contains(html, "<strong>Invoice</strong>") {
		t.Error("empty business name should fall back to Invoice")
	}
}
