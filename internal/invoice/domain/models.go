// Package domain contains the invoice collection models.
package domain

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusFinalized InvoiceStatus = "finalized"
)

// Template names a visual rendering style. It never affects computed
// totals, only how the invoice is laid out.
type Template string

const (
	TemplateClassic Template = "classic"
	TemplateModern  Template = "modern"
	TemplateMinimal Template = "minimal"
	TemplateBold    Template = "bold"
	TemplateElegant Template = "elegant"
)

// Templates lists every known template in display order.
var Templates = []Template{
	TemplateClassic,
	TemplateModern,
	TemplateMinimal,
	TemplateBold,
	TemplateElegant,
}

// Valid reports whether t names a known template.
func (t Template) Valid() bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

// LineItem is one billable row on an invoice. Quantity, unit price and
// the two percentages are taken as-is: out-of-range values flow through
// the arithmetic unguarded, matching what users may already have saved.
type LineItem struct {
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	TaxRate         float64 `json:"taxRate"`
	DiscountPercent float64 `json:"discountPercent"`
}

// BusinessDetails identifies the issuing business. Logo is an optional
// data-URL encoded image; the HTTP boundary caps it at 2 MiB.
type BusinessDetails struct {
	Logo    string `json:"logo,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ClientDetails identifies the billed party. All fields are free text.
type ClientDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Invoice is a single invoice record. IssueDate and DueDate are ISO
// calendar dates (2006-01-02); CreatedAt and UpdatedAt are RFC3339
// timestamps. InvoiceNumber follows the INV-### convention but stays
// freely editable text and is never enforced unique.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	IssueDate     string          `json:"issueDate"`
	DueDate       string          `json:"dueDate"`
	Currency      string          `json:"currency"`
	Template      Template        `json:"template"`
	Business      BusinessDetails `json:"business"`
	Client        ClientDetails   `json:"client"`
	LineItems     []LineItem      `json:"lineItems"`
	Notes         string          `json:"notes,omitempty"`
	Status        InvoiceStatus   `json:"status"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// Clone returns a deep copy of the invoice. Line items are copied so
// mutating the clone never touches the source.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.LineItems = make([]LineItem, len(inv.LineItems))
	copy(out.LineItems, inv.LineItems)
	return out
}
