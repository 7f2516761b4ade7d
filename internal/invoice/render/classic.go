package render

const classicHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: Georgia, "Times New Roman", serif;
      color: #1a1f36;
      background: #f7f9fc;
    }
    .invoice-card {
      background: #ffffff;
      max-width: 760px;
      margin: 0 auto;
      padding: 56px;
      border: 1px solid #d8dee8;
    }
    .header {
      display: flex;
      justify-content: space-between;
      border-bottom: 3px double #1a1f36;
      padding-bottom: 24px;
      margin-bottom: 32px;
    }
    .header h1 {
      margin: 0;
      font-size: 34px;
      letter-spacing: 2px;
      text-transform: uppercase;
    }
    .business { text-align: right; font-size: 13px; line-height: 1.6; }
    .business .name { font-size: 17px; font-weight: 700; }
    .logo { max-height: 56px; margin-bottom: 8px; }
    .meta { display: flex; justify-content: space-between; margin-bottom: 32px; }
    .label {
      font-size: 11px;
      text-transform: uppercase;
      letter-spacing: 1px;
      color: #697386;
      margin-bottom: 4px;
    }
    .value { font-size: 14px; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 28px; }
    th {
      text-align: left;
      font-size: 11px;
      text-transform: uppercase;
      letter-spacing: 1px;
      border-top: 1px solid #1a1f36;
      border-bottom: 1px solid #1a1f36;
      padding: 10px 8px;
    }
    td { padding: 12px 8px; border-bottom: 1px solid #e3e8ee; font-size: 14px; }
    .num { text-align: right; }
    .totals { width: 280px; margin-left: auto; font-size: 14px; }
    .totals .row { display: flex; justify-content: space-between; padding: 5px 0; }
    .totals .grand {
      border-top: 2px solid #1a1f36;
      margin-top: 8px;
      padding-top: 10px;
      font-weight: 700;
      font-size: 17px;
    }
    .notes { margin-top: 40px; font-size: 13px; color: #697386; }
    .notes h3 { font-size: 12px; text-transform: uppercase; letter-spacing: 1px; color: #1a1f36; }
    .empty { padding: 24px 8px; color: #8792a2; font-style: italic; }
  </style>
</head>
<body>
  <div class="invoice-card">
    <div class="header">
      <div>
        <h1>Invoice</h1>
        <div class="label" style="margin-top: 14px;">Invoice Number</div>
        <div class="value">{{.Invoice.InvoiceNumber}}</div>
      </div>
      <div class="business">
        {{if .Logo}}<img class="logo" src="{{.Logo}}" alt="Logo"><br>{{end}}
        <span class="name">{{if .Invoice.Business.Name}}{{.Invoice.Business.Name}}{{else}}Your Business Name{{end}}</span><br>
        {{if .Invoice.Business.Address}}{{.Invoice.Business.Address}}<br>{{end}}
        {{if .Invoice.Business.Email}}{{.Invoice.Business.Email}}<br>{{end}}
        {{if .Invoice.Business.Phone}}{{.Invoice.Business.Phone}}{{end}}
      </div>
    </div>

    <div class="meta">
      <div>
        <div class="label">Billed To</div>
        <div class="value">
          <strong>{{if .Invoice.Client.Name}}{{.Invoice.Client.Name}}{{else}}Client Name{{end}}</strong><br>
          {{if .Invoice.Client.Address}}{{.Invoice.Client.Address}}<br>{{end}}
          {{if .Invoice.Client.Email}}{{.Invoice.Client.Email}}<br>{{end}}
          {{if .Invoice.Client.Phone}}{{.Invoice.Client.Phone}}{{end}}
        </div>
      </div>
      <div>
        <div class="label">Issue Date</div>
        <div class="value">{{formatDate .Invoice.IssueDate}}</div>
        <div class="label" style="margin-top: 12px;">Due Date</div>
        <div class="value">{{formatDate .Invoice.DueDate}}</div>
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
    <div class="notes">
      <h3>Notes</h3>
      <p>{{.Invoice.Notes}}</p>
    </div>
    {{end}}
  </div>
</body>
</html>
`
