package render

const minimalHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: "Helvetica Neue", Helvetica, Arial, sans-serif;
      color: #111827;
      background: #ffffff;
      -webkit-font-smoothing: antialiased;
    }
    .invoice-card { max-width: 720px; margin: 0 auto; padding: 48px 0; }
    .header { display: flex; justify-content: space-between; margin-bottom: 48px; }
    .header h2 {
      margin: 0;
      font-size: 52px;
      font-weight: 200;
      color: rgba(17, 24, 39, 0.55);
      letter-spacing: -1px;
    }
    .business h1 { margin: 0 0 8px; font-size: 22px; font-weight: 300; }
    .business { font-size: 12px; color: #6b7280; line-height: 1.7; }
    .logo { max-height: 44px; margin-bottom: 16px; filter: grayscale(1); }
    .rule { height: 1px; background: #e5e7eb; margin: 32px 0; }
    .meta { display: flex; gap: 64px; font-size: 13px; }
    .label {
      font-size: 10px;
      text-transform: uppercase;
      letter-spacing: 2px;
      color: #9ca3af;
      margin-bottom: 6px;
    }
    .mono { font-family: "SF Mono", Menlo, monospace; }
    table { width: 100%; border-collapse: collapse; }
    th {
      text-align: left;
      font-size: 10px;
      text-transform: uppercase;
      letter-spacing: 2px;
      color: #9ca3af;
      font-weight: 500;
      border-bottom: 1px solid #e5e7eb;
      padding: 14px 6px;
    }
    td { padding: 14px 6px; border-bottom: 1px solid #f3f4f6; font-size: 13px; }
    .num { text-align: right; }
    .totals { width: 260px; margin-left: auto; margin-top: 24px; font-size: 13px; color: #6b7280; }
    .totals .row { display: flex; justify-content: space-between; padding: 4px 0; }
    .totals .grand {
      color: #111827;
      border-top: 1px solid #111827;
      margin-top: 10px;
      padding-top: 12px;
      font-size: 15px;
    }
    .notes { margin-top: 48px; font-size: 12px; color: #6b7280; line-height: 1.7; }
    .empty { padding: 28px 6px; color: #9ca3af; }
  </style>
</head>
<body>
  <div class="invoice-card">
    <div class="header">
      <div class="business">
        {{if .Logo}}<img class="logo" src="{{.Logo}}" alt="Logo"><br>{{end}}
        <h1>{{if .Invoice.Business.Name}}{{.Invoice.Business.Name}}{{else}}Your Business Name{{end}}</h1>
        {{if .Invoice.Business.Address}}{{.Invoice.Business.Address}}<br>{{end}}
        {{if .Invoice.Business.Email}}{{.Invoice.Business.Email}}<br>{{end}}
        {{if .Invoice.Business.Phone}}{{.Invoice.Business.Phone}}{{end}}
      </div>
      <h2>Invoice</h2>
    </div>

    <div class="rule"></div>

    <div class="meta">
      <div>
        <div class="label">Invoice Number</div>
        <div class="mono">{{.Invoice.InvoiceNumber}}</div>
      </div>
      <div>
        <div class="label">Issue Date</div>
        <div>{{formatDate .Invoice.IssueDate}}</div>
      </div>
      <div>
        <div class="label">Due Date</div>
        <div>{{formatDate .Invoice.DueDate}}</div>
      </div>
    </div>

    <div class="rule"></div>

    <div class="meta" style="margin-bottom: 32px;">
      <div>
        <div class="label">Billed To</div>
        <div>
          <strong>{{if .Invoice.Client.Name}}{{.Invoice.Client.Name}}{{else}}Client Name{{end}}</strong><br>
          {{if .Invoice.Client.Address}}{{.Invoice.Client.Address}}<br>{{end}}
          {{if .Invoice.Client.Email}}{{.Invoice.Client.Email}}<br>{{end}}
          {{if .Invoice.Client.Phone}}{{.Invoice.Client.Phone}}{{end}}
        </div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th style="width: 44%;">Item</th>
          <th class="num">Qty</th>
          <th class="num">Rate</th>
          <th class="num">Tax</th>
          <th class="num">Disc</th>
          <th class="num">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr>
          <td>{{if .Description}}{{.Description}}{{else}}&mdash;{{end}}</td>
          <td class="num">{{formatQuantity .Quantity}}</td>
          <td class="num">{{formatMoney .UnitPrice $.Symbol}}</td>
          <td class="num">{{formatPercent .TaxRate}}</td>
          <td class="num">{{formatPercent .DiscountPercent}}</td>
          <td class="num">{{formatMoney .Total $.Symbol}}</td>
        </tr>
        {{else}}
        <tr><td colspan="6" class="empty">No items</td></tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div class="row"><span>Subtotal</span><span>{{formatMoney .Totals.Subtotal .Symbol}}</span></div>
      <div class="row"><span>Discount</span><span>-{{formatMoney .Totals.TotalDiscount .Symbol}}</span></div>
      <div class="row"><span>Tax</span><span>{{formatMoney .Totals.TotalTax .Symbol}}</span></div>
      <div class="row grand"><span>Total</span><span>{{formatMoney .Totals.Total .Symbol}}</span></div>
    </div>

    {{if .Invoice.Notes}}
    <div class="notes">{{.Invoice.Notes}}</div>
    {{end}}
  </div>
</body>
</html>
`
