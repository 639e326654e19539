// Package pdf renders the printable invoice document (A4).
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: shop name + address   │  "RECHNUNG" + Nr + Datum   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KUNDE: name, KFZ-Kennzeichen, phone                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Pos | Leistung | Menge | Einzelpreis | Rabatt |     │
//	│         Gesamtpreis                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Zwischensumme / Rabatt / MwSt. 19% / Gesamtbetrag  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Zahlungsart + bank details                         │
//	└─────────────────────────────────────────────────────────────┘
//
// Every figure is taken verbatim from the persisted invoice; the renderer
// only formats, so the document always matches the stored record.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/glanzwerk/rechnung-api/internal/application/billing"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
)

// ── color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── generator ─────────────────────────────────────────────────────────────────

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator with Maroto v2.
type MarotoPDFGenerator struct {
	shop appbilling.ShopInfo
}

// NewMarotoPDFGenerator builds the generator with the shop letterhead data.
func NewMarotoPDFGenerator(shop appbilling.ShopInfo) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{shop: shop}
}

// GenerateInvoicePDF renders the document and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
	items []*entity.InvoiceItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rechnung "+invoice.Number, true).
		WithAuthor(g.shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range g.footerRows(invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── sections ──────────────────────────────────────────────────────────────────

// headerRow: shop letterhead (left) and invoice number + date (right).
func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	date := invoice.Date.Format("02.01.2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(joinNonEmpty("   |   ", g.shop.Address, g.shop.City, g.shop.Phone), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECHNUNG", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Rechnungsnummer: "+invoice.Number, props.Text{
				Size: 9, Align: align.Right, Top: 9,
			}),
			text.New("Datum: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: the customer block.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("KUNDE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("KFZ-Kennzeichen: %s   |   Tel: %s",
				customer.Plate,
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: head of the line-item table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Pos", 1, align.Center),
		h("Leistung", 5, align.Left),
		h("Menge", 1, align.Center),
		h("Einzelpreis", 2, align.Right),
		h("Rabatt", 1, align.Center),
		h("Gesamtpreis", 2, align.Right),
	)
}

// tableItemRows: one row per line item.
func tableItemRows(items []*entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Position),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				item.ServiceName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatEUR(item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				item.DiscountPercent.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatEUR(item.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	netto := invoice.Subtotal.Sub(invoice.Discount)

	return row.New(34).Add(
		col.New(3),
		col.New(4).Add(
			label("Zwischensumme:"),
			label("Rabatt:"),
			label("Netto:"),
			label("zzgl. 19% MwSt.:"),
			grandLabel("Gesamtbetrag:"),
		),
		col.New(3).Add(
			value(formatEUR(invoice.Subtotal)),
			value(formatEUR(invoice.Discount)),
			value(formatEUR(netto)),
			value(formatEUR(invoice.VATAmount)),
			grandValue(formatEUR(invoice.GrandTotal)),
		),
		col.New(2),
	)
}

// footerRows: payment method and bank details.
func (g *MarotoPDFGenerator) footerRows(invoice *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Zahlungsart: "+invoice.PaymentMethod.Label(), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)),
	}
	if g.shop.IBAN != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Bankverbindung", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(joinNonEmpty("   |   ", g.shop.BankName, "IBAN: "+g.shop.IBAN, "BIC: "+g.shop.BIC), props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Vielen Dank für Ihr Vertrauen. Bitte bewahren Sie diese Rechnung als Beleg auf.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" && !strings.HasSuffix(p, ": ") {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// formatEUR renders a decimal as a German money string: two fraction digits,
// comma separator, euro sign. This is the only place amounts get rounded.
func formatEUR(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",") + " €"
}
