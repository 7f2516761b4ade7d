package render

const modernHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
    }
    .invoice-card {
      background: #ffffff;
      max-width: 760px;
      margin: 0 auto;
      border-radius: 8px;
      overflow: hidden;
      box-shadow: 0 2px 8px rgba(0,0,0,0.06);
    }
    .banner {
      background: #2563eb;
      color: #ffffff;
      padding: 40px 56px;
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
    }
    .banner h1 { margin: 0; font-size: 28px; font-weight: 700; }
    .banner .number { opacity: 0.85; margin-top: 6px; font-size: 14px; }
    .banner .business { text-align: right; font-size: 13px; line-height: 1.6; }
    .banner .business .name { font-size: 16px; font-weight: 600; }
    .logo { max-height: 48px; margin-bottom: 8px; background: #ffffff; border-radius: 4px; padding: 4px; }
    .body { padding: 40px 56px 56px; }
    .meta { display: flex; gap: 48px; margin-bottom: 36px; }
    .label {
      font-size: 11px;
      text-transform: uppercase;
      letter-spacing: 0.5px;
      color: #8792a2;
      font-weight: 600;
      margin-bottom: 4px;
    }
    .value { font-size: 14px; line-height: 1.5; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 28px; }
    th {
      text-align: left;
      font-size: 11px;
      text-transform: uppercase;
      color: #8792a2;
      font-weight: 600;
      border-bottom: 2px solid #2563eb;
      padding: 10px 8px;
    }
    td { padding: 14px 8px; border-bottom: 1px solid #e3e8ee; font-size: 14px; }
    .num { text-align: right; }
    .totals { width: 280px; margin-left: auto; font-size: 14px; }
    .totals .row { display: flex; justify-content: space-between; padding: 5px 0; }
    .totals .grand {
      background: #eff6ff;
      border-radius: 6px;
      margin-top: 10px;
      padding: 12px;
      font-weight: 700;
      font-size: 16px;
      color: #2563eb;
    }
    .notes { margin-top: 36px; font-size: 13px; color: #697386; }
    .notes h3 { font-size: 12px; text-transform: uppercase; color: #1a1f36; margin-bottom: 6px; }
    .empty { padding: 24px 8px; color: #8792a2; }
  </style>
</head>
<body>
  <div class="invoice-card">
    <div class="banner">
      <div>
        <h1>Invoice</h1>
        <div class="number">{{.Invoice.InvoiceNumber}}</div>
      </div>
      <div class="business">
        {{if .Logo}}<img class="logo" src="{{.Logo}}" alt="Logo"><br>{{end}}
        <span class="name">{{if .Invoice.Business.Name}}{{.Invoice.Business.Name}}{{else}}Your Business Name{{end}}</span><br>
        {{if .Invoice.Business.Address}}{{.Invoice.Business.Address}}<br>{{end}}
        {{if .Invoice.Business.Email}}{{.Invoice.Business.Email}}<br>{{end}}
        {{if .Invoice.Business.Phone}}{{.Invoice.Business.Phone}}{{end}}
      </div>
    </div>

    <div class="body">
      <div class="meta">
        <div style="flex: 1;">
          <div class="label">Bill To</div>
          <div class="value">
            <strong>{{if .Invoice.Client.Name}}{{.Invoice.Client.Name}}{{else}}Client Name{{end}}</strong><br>
            {{if .Invoice.Client.Address}}{{.Invoice.Client.Address}}<br>{{end}}
            {{if .Invoice.Client.Email}}{{.Invoice.Client.Email}}<br>{{end}}
            {{if .Invoice.Client.Phone}}{{.Invoice.Client.Phone}}{{end}}
          </div>
        </div>
        <div>
          <div class="label">Issued</div>
          <div class="value">{{formatDate .Invoice.IssueDate}}</div>
          <div class="label" style="margin-top: 14px;">Due</div>
          <div class="value">{{formatDate .Invoice.DueDate}}</div>
        </div>
      </div>

      <table>
        <thead>
          <tr>
            <th style="width: 40%;">Description</th>
            <th class="num">Qty</th>
            <th class="num">Unit Price</th>
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
        <div class="row grand"><span>Total Due</span><span>{{formatMoney .Totals.Total .Symbol}}</span></div>
      </div>

      {{if .Invoice.Notes}}
      <div class="notes">
        <h3>Notes</h3>
        <p>{{.Invoice.Notes}}</p>
      </div>
      {{end}}
    </div>
  </div>
</body>
</html>
`
