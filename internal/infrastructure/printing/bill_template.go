package printing

// DefaultBillTemplate is the built-in receipt layout. Item lines and the
// total are kept as plain "name: qty x price = amount" text so the paper
// output matches the row format shown in the order and product screens.
const DefaultBillTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Bill Receipt</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12pt; color: #111; }
  h1 { font-size: 16pt; margin-bottom: 4px; }
  .meta { margin-bottom: 16px; }
  .meta div { margin: 2px 0; }
  .items div { margin: 3px 0; }
  .total { margin-top: 14px; font-weight: bold; border-top: 1px solid #111; padding-top: 6px; }
  .generated { margin-top: 24px; font-size: 9pt; color: #666; }
</style>
</head>
<body>
  <h1>Bill Receipt</h1>
  <div class="meta">
    <div>Customer: {{.Customer.Name}}</div>
    {{if .Customer.Email}}<div>Email: {{.Customer.Email}}</div>{{end}}
    {{if .Customer.Address}}<div>Address: {{.Customer.Address}}</div>{{end}}
    {{if .Customer.Location}}<div>Location: {{.Customer.Location}}</div>{{end}}
  </div>
  <div class="items">
    {{range .Items}}<div>{{.ProductName}}: {{.Quantity}} x {{formatAmount .UnitPrice}} = {{formatAmount .Amount}}</div>
    {{end}}
  </div>
  <div class="total">Total: {{.TotalDisplay}}</div>
  <div class="generated">Generated {{formatDateTime .GeneratedAt}}</div>
</body>
</html>`
