// Package reporting renders policy documents and payment receipts as plain
// text. Output depends only on the input data, so rendering the same record
// twice yields identical bytes.
package reporting

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder replaces optional values that were never filled in.
const Placeholder = "Not provided"

const (
	ContentType = "text/plain; charset=utf-8"
	dateLayout  = "2006-01-02"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type CoverageLine struct {
	Name    string
	Limit   float64
	Premium float64
	Notes   string
}

// PolicyDocument is the read-only projection used to render a policy.
type PolicyDocument struct {
	PolicyNumber       string
	StartDate          time.Time
	EndDate            time.Time
	InsuranceType      string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	CustomerAddress    string
	AgentName          string
	CoverageAmount     float64
	BasePrice          float64
	DiscountRate       float64
	FinalPrice         float64
	AdditionalInfo     string
	CustomerApprovedAt *time.Time
	IssuedAt           time.Time
	Coverages          []CoverageLine
}

// PaymentReceipt is the read-only projection used to render a receipt.
type PaymentReceipt struct {
	PaymentID     uint
	PolicyNumber  string
	CustomerName  string
	Amount        float64
	Method        string
	Status        string
	TransactionID string
	CardLast4     string
	PaidAt        time.Time
	Notes         string
}

// Renderer holds the parsed templates and the money formatter.
type Renderer struct {
	tmpl    *template.Template
	printer *message.Printer
	unit    currency.Unit
}

// NewRenderer parses the embedded templates. Amounts are printed in unit
// using tag's number grouping.
func NewRenderer(tag language.Tag, unit currency.Unit) (*Renderer, error) {
	r := &Renderer{printer: message.NewPrinter(tag), unit: unit}
	tmpl, err := template.New("reporting").Funcs(template.FuncMap{
		"money":    r.money,
		"percent":  r.percent,
		"date":     formatDate,
		"datetime": formatDateTime,
		"opt":      optional,
		"card":     maskedCard,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// NewDefaultRenderer prints US English amounts in USD.
func NewDefaultRenderer() (*Renderer, error) {
	return NewRenderer(language.AmericanEnglish, currency.USD)
}

func (r *Renderer) RenderPolicyDocument(doc PolicyDocument) ([]byte, error) {
	return r.execute("policy_document.tmpl", doc)
}

func (r *Renderer) RenderPaymentReceipt(receipt PaymentReceipt) ([]byte, error) {
	return r.execute("payment_receipt.tmpl", receipt)
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) money(v float64) string {
	return r.printer.Sprintf("%s %.2f", r.unit.String(), v)
}

func (r *Renderer) percent(rate float64) string {
	return r.printer.Sprintf("%.2f%%", rate*100)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.UTC().Format(dateLayout)
}

func formatDateTime(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return Placeholder
		}
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil || t.IsZero() {
			return Placeholder
		}
		return t.UTC().Format(time.RFC3339)
	}
	return Placeholder
}

func optional(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func maskedCard(last4 string) string {
	if strings.TrimSpace(last4) == "" {
		return Placeholder
	}
	return "**** **** **** " + last4
}
