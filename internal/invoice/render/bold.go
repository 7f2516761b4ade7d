package render

const boldHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: "Arial Black", Arial, Helvetica, sans-serif;
      color: #111111;
      background: #f2f2f2;
    }
    .invoice-card { background: #ffffff; max-width: 760px; margin: 0 auto; }
    .banner {
      background: #111111;
      color: #ffffff;
      padding: 48px 56px;
    }
    .banner h1 {
      margin: 0;
      font-size: 48px;
      text-transform: uppercase;
      letter-spacing: 4px;
    }
    .banner .number {
      display: inline-block;
      background: #facc15;
      color: #111111;
      padding: 6px 14px;
      margin-top: 14px;
      font-size: 14px;
      letter-spacing: 1px;
    }
    .body { padding: 48px 56px 56px; font-family: Arial, Helvetica, sans-serif; }
    .columns { display: flex; justify-content: space-between; gap: 32px; margin-bottom: 40px; }
    .block h3 {
      margin: 0 0 10px;
      font-size: 12px;
      text-transform: uppercase;
      letter-spacing: 2px;
      border-bottom: 4px solid #111111;
      padding-bottom: 6px;
    }
    .block { font-size: 13px; line-height: 1.7; }
    .block .name { font-weight: 700; font-size: 15px; }
    .logo { max-height: 52px; margin-bottom: 10px; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 32px; }
    th {
      background: #111111;
      color: #ffffff;
      text-align: left;
      font-size: 11px;
      text-transform: uppercase;
      letter-spacing: 1px;
      padding: 12px 10px;
    }
    td { padding: 14px 10px; border-bottom: 2px solid #e5e5e5; font-size: 14px; }
    tr:nth-child(even) td { background: #fafafa; }
    .num { text-align: right; }
    .totals { width: 300px; margin-left: auto; font-size: 14px; }
    .totals .row { display: flex; justify-content: space-between; padding: 6px 0; }
    .totals .grand {
      background: #facc15;
      font-weight: 900;
      font-size: 18px;
      padding: 14px;
      margin-top: 10px;
      text-transform: uppercase;
    }
    .notes { margin-top: 40px; font-size: 13px; border-left: 6px solid #facc15; padding-left: 16px; }
    .empty { padding: 24px 10px; color: #999999; }
  </style>
</head>
<body>
  <div class="invoice-card">
    <div class="banner">
      <h1>Invoice</h1>
      <span class="number">{{.Invoice.InvoiceNumber}}</span>
    </div>

    <div class="body">
      <div class="columns">
        <div class="block" style="flex: 1;">
          <h3>From</h3>
          {{if .Logo}}<img class="logo" src="{{.Logo}}" alt="Logo"><br>{{end}}
          <span class="name">{{if .Invoice.Business.Name}}{{.Invoice.Business.Name}}{{else}}Your Business Name{{end}}</span><br>
          {{if .Invoice.Business.Address}}{{.Invoice.Business.Address}}<br>{{end}}
          {{if .Invoice.Business.Email}}{{.Invoice.Business.Email}}<br>{{end}}
          {{if .Invoice.Business.Phone}}{{.Invoice.Business.Phone}}{{end}}
        </div>
        <div class="block" style="flex: 1;">
          <h3>To</h3>
          <span class="name">{{if .Invoice.Client.Name}}{{.Invoice.Client.Name}}{{else}}Client Name{{end}}</span><br>
          {{if .Invoice.Client.Address}}{{.Invoice.Client.Address}}<br>{{end}}
          {{if .Invoice.Client.Email}}{{.Invoice.Client.Email}}<br>{{end}}
          {{if .Invoice.Client.Phone}}{{.Invoice.Client.Phone}}{{end}}
        </div>
        <div class="block">
          <h3>Dates</h3>
          Issued: {{formatDate .Invoice.IssueDate}}<br>
          Due: {{formatDate .Invoice.DueDate}}
        </div>
      </div>

      <table>
        <thead>
          <tr>
            <th style="width: 40%;">Item</th>
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
  </div>
</body>
</html>
`
