package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/smallbiznis/billfold/internal/currency"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.Number}}</title>
  <style>
    :root {
      --primary: {{.Brand.AccentColor}};
      --font: "{{.Brand.FontFamily}}";
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: var(--font), "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .invoice {
      max-width: 820px;
      margin: 0 auto;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid var(--primary);
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .brand {
      display: flex;
      align-items: center;
      gap: 12px;
    }
    .brand img {
      max-height: 48px;
    }
    .meta {
      text-align: right;
      font-size: 14px;
    }
    .meta .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .badge {
      display: inline-block;
      padding: 2px 10px;
      border-radius: 999px;
      background: var(--primary);
      color: #ffffff;
      font-size: 11px;
      text-transform: uppercase;
      letter-spacing: 0.04em;
    }
    .section {
      margin-bottom: 24px;
    }
    .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    .totals {
      margin-top: 12px;
      margin-left: auto;
      width: 280px;
      font-size: 14px;
    }
    .totals div {
      display: flex;
      justify-content: space-between;
      padding: 4px 0;
    }
    .totals .due {
      border-top: 1px solid #e5e7eb;
      font-size: 16px;
      font-weight: 600;
    }
    .footer {
      border-top: 1px solid #e5e7eb;
      padding-top: 16px;
      font-size: 12px;
      color: #6b7280;
    }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <div class="brand">
        {{if .Brand.LogoURL}}
        <img src="{{.Brand.LogoURL}}" alt="Business logo" />
        {{end}}
        <div>
          <div><strong>{{.Brand.BusinessName}}</strong></div>
          {{if .Brand.Address}}<div>{{.Brand.Address}}</div>{{end}}
          {{if .Brand.Email}}<div>{{.Brand.Email}}</div>{{end}}
          {{if .Brand.Phone}}<div>{{.Brand.Phone}}</div>{{end}}
        </div>
      </div>
      <div class="meta">
        <div class="label">Invoice</div>
        <div><strong>{{.Invoice.Number}}</strong></div>
        <div><span class="badge">{{.Invoice.Status}}</span></div>
        <div>Issued: {{formatDate .Invoice.IssueDate}}</div>
        {{if .Invoice.DueDate}}<div>Due: {{formatDatePtr .Invoice.DueDate}}</div>{{end}}
      </div>
    </div>

    <div class="section">
      <div class="label">Billed To</div>
      <div><strong>{{.Customer.Name}}</strong></div>
      {{if .Customer.Email}}<div>{{.Customer.Email}}</div>{{end}}
    </div>

    <div class="section">
      <table>
        <thead>
          <tr>
            <th>Description</th>
            <th>Quantity</th>
            <th>Unit Price</th>
            <th>Amount</th>
          </tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Description}}</td>
            <td>{{formatQuantity .Quantity}}</td>
            <td>{{formatMoney .UnitPrice $.Invoice.Currency}}</td>
            <td>{{formatMoney .Amount $.Invoice.Currency}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="totals">
        <div><span>Subtotal</span><span>{{formatMoney .Invoice.Subtotal .Invoice.Currency}}</span></div>
        {{if .Invoice.TaxAmount}}<div><span>Tax</span><span>{{formatMoney .Invoice.TaxAmount .Invoice.Currency}}</span></div>{{end}}
        {{if .Invoice.Discount}}<div><span>Discount</span><span>-{{formatMoney .Invoice.Discount .Invoice.Currency}}</span></div>{{end}}
        <div><span>Total</span><span>{{formatMoney .Invoice.Total .Invoice.Currency}}</span></div>
        {{if .Invoice.AmountPaid}}<div><span>Paid</span><span>{{formatMoney .Invoice.AmountPaid .Invoice.Currency}}</span></div>{{end}}
        <div class="due"><span>Amount Due</span><span>{{formatMoney .Invoice.AmountDue .Invoice.Currency}}</span></div>
      </div>
    </div>

    <div class="footer">
      {{if .Invoice.Notes}}<div>{{.Invoice.Notes}}</div>{{end}}
      {{if .Invoice.Terms}}<div>{{.Invoice.Terms}}</div>{{end}}
    </div>
  </div>
</body>
</html>
`

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	fontFamilyFilter = regexp.MustCompile(`^[A-Za-z0-9 \-]+$`)
)

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDate":     formatDate,
		"formatDatePtr":  formatDatePtr,
		"formatQuantity": formatQuantity,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	input.Brand.AccentColor = sanitizeColor(input.Brand.AccentColor)
	input.Brand.FontFamily = sanitizeFont(input.Brand.FontFamily)
	if input.Brand.BusinessName == "" {
		input.Brand.BusinessName = "Invoice"
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(amount float64, code string) string {
	return currency.Format(amount, code)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("Jan 2, 2006")
}

func formatDatePtr(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return formatDate(*value)
}

func formatQuantity(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

func sanitizeColor(value string) string {
	trimmed := strings.TrimSpace(value)
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return "#111827"
}

func sanitizeFont(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !fontFamilyFilter.MatchString(trimmed) {
		return "Space Grotesk"
	}
	return trimmed
}
