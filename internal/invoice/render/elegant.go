package render

const elegantHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: "Didot", "Playfair Display", Georgia, serif;
      color: #2d2a26;
      background: #faf8f5;
    }
    .invoice-card {
      background: #fffdfa;
      max-width: 740px;
      margin: 0 auto;
      padding: 64px;
      border: 1px solid #e7e0d6;
    }
    .header { text-align: center; margin-bottom: 48px; }
    .header h1 {
      margin: 0;
      font-size: 38px;
      font-weight: 400;
      letter-spacing: 8px;
      text-transform: uppercase;
    }
    .flourish {
      width: 120px;
      height: 1px;
      background: #b5a183;
      margin: 18px auto;
    }
    .number { font-size: 13px; letter-spacing: 3px; color: #8a7c66; }
    .logo { max-height: 56px; margin-bottom: 18px; }
    .columns { display: flex; justify-content: space-between; margin-bottom: 44px; font-size: 13px; line-height: 1.8; }
    .columns h3 {
      margin: 0 0 8px;
      font-size: 11px;
      letter-spacing: 3px;
      text-transform: uppercase;
      color: #8a7c66;
      font-weight: 400;
    }
    .name { font-size: 15px; font-style: italic; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 32px; }
    th {
      text-align: left;
      font-size: 11px;
      letter-spacing: 2px;
      text-transform: uppercase;
      font-weight: 400;
      color: #8a7c66;
      border-top: 1px solid #b5a183;
      border-bottom: 1px solid #b5a183;
      padding: 12px 8px;
    }
    td { padding: 14px 8px; border-bottom: 1px solid #efe9df; font-size: 13px; }
    .num { text-align: right; }
    .totals { width: 280px; margin-left: auto; font-size: 13px; }
    .totals .row { display: flex; justify-content: space-between; padding: 5px 0; color: #5b5346; }
    .totals .grand {
      color: #2d2a26;
      border-top: 1px solid #b5a183;
      border-bottom: 3px double #b5a183;
      margin-top: 10px;
      padding: 12px 0;
      font-size: 16px;
      letter-spacing: 1px;
    }
    .notes {
      margin-top: 48px;
      text-align: center;
      font-style: italic;
      font-size: 13px;
      color: #8a7c66;
    }
    .empty { padding: 26px 8px; color: #b5a183; font-style: italic; text-align: center; }
  </style>
</head>
<body>
  <div class="invoice-card">
    <div class="header">
      {{if .Logo}}<img class="logo" src="{{.Logo}}" alt="Logo"><br>{{end}}
      <h1>Invoice</h1>
      <div class="flourish"></div>
      <div class="number">{{.Invoice.InvoiceNumber}} &middot; {{formatDate .Invoice.IssueDate}}</div>
    </div>

    <div class="columns">
      <div>
        <h3>From</h3>
        <span class="name">{{if .Invoice.Business.Name}}{{.Invoice.Business.Name}}{{else}}Your Business Name{{end}}</span><br>
        {{if .Invoice.Business.Address}}{{.Invoice.Business.Address}}<br>{{end}}
        {{if .Invoice.Business.Email}}{{.Invoice.Business.Email}}<br>{{end}}
        {{if .Invoice.Business.Phone}}{{.Invoice.Business.Phone}}{{end}}
      </div>
      <div style="text-align: right;">
        <h3>For</h3>
        <span class="name">{{if .Invoice.Client.Name}}{{.Invoice.Client.Name}}{{else}}Client Name{{end}}</span><br>
        {{if .Invoice.Client.Address}}{{.Invoice.Client.Address}}<br>{{end}}
        {{if .Invoice.Client.Email}}{{.Invoice.Client.Email}}<br>{{end}}
        {{if .Invoice.Client.Phone}}{{.Invoice.Client.Phone}}<br>{{end}}
        <h3 style="margin-top: 14px;">Payment Due</h3>
        {{formatDate .Invoice.DueDate}}
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th style="width: 42%;">Description</th>
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
