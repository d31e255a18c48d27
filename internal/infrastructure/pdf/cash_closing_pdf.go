// Package pdf genera el cierre de caja en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período     │  Vendedor + fecha emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Forma de pago | Total | Lucro                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total general / Lucro general                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
)

var _ analytics.CashClosingPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var periodLabels = map[string]string{
	"day":   "Dia",
	"month": "Mês",
	"year":  "Ano",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.CashClosingPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoPDFGenerator construye el generador. Los montos se formatean en pt-BR.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{
		printer: message.NewPrinter(language.BrazilianPortuguese),
		now:     time.Now,
	}
}

// GenerateCashClosingPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCashClosingPDF(_ context.Context, closing *dto.CashClosingResponse) ([]byte, error) {
	if closing == nil {
		return nil, fmt.Errorf("pdf: cierre de caja nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fechamento de caixa", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(closing))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableRows(closing) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(closing))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(c *dto.CashClosingResponse) core.Row {
	label := periodLabels[c.PeriodType]
	if label == "" {
		label = c.PeriodType
	}
	seller := "Todos os vendedores"
	if c.SellerName != "" {
		seller = "Vendedor: " + c.SellerName
	} else if c.SellerID != "" {
		seller = "Vendedor: " + c.SellerID
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("FECHAMENTO DE CAIXA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s: %s", label, c.PeriodValue), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(seller, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido em "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Forma de pagamento", 6, align.Left),
		h("Total", 3, align.Right),
		h("Lucro", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por forma de pago, en orden alfabético.
func (g *MarotoPDFGenerator) tableRows(c *dto.CashClosingResponse) []core.Row {
	names := make([]string, 0, len(c.ByPaymentMethod))
	for name := range c.ByPaymentMethod {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sem vendas no período.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		))}
	}

	result := make([]core.Row, 0, len(names))
	for _, name := range names {
		t := c.ByPaymentMethod[name]
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(g.money(t.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.money(t.Profit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *MarotoPDFGenerator) totalsRow(c *dto.CashClosingResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
		})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(label("TOTAL GERAL:"), label("LUCRO GERAL:")),
		col.New(3).Add(value(g.money(c.GrandTotal)), value(g.money(c.GrandProfit))),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea en reales con separador de miles y dos decimales. Ej: 1234.5 → "R$ 1.234,50".
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "R$ " + g.printer.Sprint(number.Decimal(f, number.Scale(2)))
}
