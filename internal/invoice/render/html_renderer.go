package render

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/edcviet/invoicegen/internal/datefmt"
	"github.com/edcviet/invoicegen/internal/money"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.Number}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 0;
      font-family: "JetBrains Mono", "Courier New", monospace;
      color: #111827;
      background: #ffffff;
    }
    .sheet {
      display: grid;
      grid-template-columns: 112px 560px;
      margin: 0 auto;
      width: max-content;
      border: 1px solid #e5e7eb;
    }
    .sidebar {
      background: linear-gradient(to top left, #a5f3fc, #bfdbfe);
      display: flex;
      flex-direction: column;
      justify-content: space-between;
      padding: 80px 20px 80px 0;
      font-size: 14px;
      text-align: right;
    }
    .sidebar .rotated {
      transform: rotate(-90deg);
      white-space: nowrap;
    }
    main {
      padding: 32px;
    }
    .title {
      text-align: center;
      font-size: 48px;
      font-weight: 700;
      margin: 8px 0;
    }
    .rule {
      background: linear-gradient(to top left, #a5f3fc, #bfdbfe);
      height: 6px;
      border: 0;
      border-radius: 4px;
      margin: 16px 0;
    }
    .rule.thin { height: 3px; margin: 8px 0; }
    .billed h2, .items h3, .total h2, .payment h2, .delivery h2 {
      font-size: 16px;
      font-weight: 700;
      margin: 0 0 8px;
    }
    .billed .name {
      font-size: 24px;
      font-weight: 600;
      text-transform: uppercase;
      letter-spacing: 0.05em;
      margin-bottom: 8px;
    }
    .billed p, .payment p, .delivery p { margin: 2px 0; font-size: 12px; }
    .items .row {
      display: flex;
      justify-content: space-between;
      font-size: 13px;
    }
    .items .head {
      font-weight: 700;
      font-size: 15px;
    }
    .total {
      display: flex;
      justify-content: space-between;
      margin-top: 16px;
    }
    footer {
      display: flex;
      align-items: center;
      justify-content: space-between;
      margin-top: 24px;
    }
    .signoff {
      font-family: "Great Vibes", cursive;
      font-size: 40px;
    }
    img.logo { max-height: 120px; max-width: 120px; }
  </style>
</head>
<body>
  <div class="sheet">
    <aside class="sidebar">
      <div class="rotated">
        <p>NO. {{.Invoice.Number}}</p>
        <p>{{formatDate .Invoice.IssueDate}}</p>
      </div>
      <div class="rotated">
        <p>{{.Invoice.Business.Website}}{{if and .Invoice.Business.Website .Invoice.Business.Phone}} &bull; {{end}}{{.Invoice.Business.Phone}}</p>
        <p>{{.Invoice.Business.Address}}</p>
      </div>
    </aside>

    <main>
      {{with logoURL .Invoice.Business.LogoURL}}
      <img class="logo" src="{{.}}" alt="logo" />
      {{end}}
      <h1 class="title">Invoice</h1>
      <hr class="rule" />

      <section class="billed">
        <h2>BILLED TO</h2>
        <div class="name">{{.Invoice.Client.Name}}</div>
        {{if .Invoice.Client.Phone}}<p>Phone: {{.Invoice.Client.Phone}}</p>{{end}}
        {{if .Invoice.Client.Address}}<p>Address: {{.Invoice.Client.Address}}</p>{{end}}
        {{if .Invoice.Client.Facebook}}<p>Facebook: {{.Invoice.Client.Facebook}}</p>{{end}}
      </section>

      <section class="items">
        <div class="row head"><span>DESCRIPTION OF ITEM</span><span>PRICE</span></div>
        <hr class="rule thin" />
        {{range .Invoice.Items}}
        <div class="row"><span>{{.Description}}</span><span>{{formatAmount .Price $.Invoice.Currency}}</span></div>
        {{end}}
        <hr class="rule thin" />
        {{if showAmount .Invoice.Discount}}
        <div class="row"><span>DISCOUNT</span><span>{{formatAmount .Invoice.Discount $.Invoice.Currency}}</span></div>
        {{end}}
      </section>

      <section class="total">
        <h2>TOTAL AMOUNT DUE</h2>
        <p>{{formatTotal .Invoice.Total .Invoice.Currency}}</p>
      </section>

      <section class="payment">
        <h2>PAYMENT DETAILS</h2>
        {{if eq .Invoice.Payment.Method "cod"}}
        <p>Cash on delivery</p>
        {{else}}
        {{if .Invoice.Payment.BankName}}<p>{{.Invoice.Payment.BankName}}</p>{{end}}
        {{if .Invoice.Payment.AccountName}}<p>{{.Invoice.Payment.AccountName}}</p>{{end}}
        {{if .Invoice.Payment.AccountNumber}}<p>Account Number: {{.Invoice.Payment.AccountNumber}}</p>{{end}}
        {{if .Invoice.Payment.RoutingNumber}}<p>Routing Number: {{.Invoice.Payment.RoutingNumber}}</p>{{end}}
        {{end}}
      </section>

      {{if .Invoice.Delivery.CarrierName}}
      <section class="delivery">
        <h2>DELIVERY</h2>
        <p>{{.Invoice.Delivery.CarrierName}}</p>
        {{if .Invoice.Delivery.TrackingNumber}}<p>Tracking Number: {{.Invoice.Delivery.TrackingNumber}}</p>{{end}}
        {{if showAmount .Invoice.Delivery.CODAmount}}<p>COD Amount: {{formatAmount .Invoice.Delivery.CODAmount $.Invoice.Currency}}</p>{{end}}
      </section>
      {{end}}

      <footer>
        <p>{{with formatDate .Invoice.DueDate}}*DUE BY {{.}}{{end}}</p>
        <p class="signoff">Thank you!</p>
      </footer>
    </main>
  </div>
</body>
</html>
`

var logoURLPattern = regexp.MustCompile(`^https?://`)

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatAmount": formatAmount,
		"formatTotal":  formatTotal,
		"formatDate":   datefmt.ToDisplay,
		"showAmount":   showAmount,
		"logoURL":      sanitizeLogoURL,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input Input) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatAmount renders a raw amount field as a grouped bare number; item
// rows carry no symbol, matching the original layout.
func formatAmount(raw, currency string) string {
	return money.Format(money.ParseAmount(raw), currency, money.StyleDecimal)
}

func formatTotal(total decimal.Decimal, currency string) string {
	return money.Format(total, currency, money.StyleCurrency)
}

// showAmount reports whether a raw amount field resolves to a value worth
// rendering. Zero discounts and zero COD amounts stay hidden.
func showAmount(raw string) bool {
	return money.ParseAmount(raw).IsPositive()
}

func sanitizeLogoURL(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !logoURLPattern.MatchString(trimmed) {
		return ""
	}
	return trimmed
}
