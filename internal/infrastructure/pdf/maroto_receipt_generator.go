// Package pdf implementa el comprobante de compra en PDF de una transacción
// completada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprobante de compra │ N° transacción + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENDEDOR: Nombre / Empresa / Email                         │
//	│  COMPRADOR: Nombre / Empresa / Email                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Material | Unidad | P.Unit | Total           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/obramarket/obramarket-api/internal/application/receipt"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 194, Green: 93, Blue: 14}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ receipt.PDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa receipt.PDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	tx *entity.Transaction,
	material *entity.Material,
	buyer, seller *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de compra", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tx))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("VENDEDOR", seller))
	m.AddRows(partyRow("COMPRADOR", buyer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(tx, material))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(tx))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y número de transacción + fecha (der).
func headerRow(tx *entity.Transaction) core.Row {
	fecha := tx.UpdatedAt.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Materiales sobrantes de obra", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Transacción "+tx.ID, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(fecha, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func partyRow(label string, u *entity.User) core.Row {
	detail := u.Name
	if u.Company != "" {
		detail += " — " + u.Company
	}
	return row.New(10).Add(
		col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2})),
		col.New(9).Add(
			text.New(detail, props.Text{Size: 9, Top: 1}),
			text.New(u.Email, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(5).Add(text.New("Material", header)),
		col.New(2).Add(text.New("Unidad", header)),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right})),
	)
}

func detailRow(tx *entity.Transaction, material *entity.Material) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	return row.New(8).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", tx.Quantity), cell)),
		col.New(5).Add(text.New(material.Title, cell)),
		col.New(2).Add(text.New(string(material.Unit), cell)),
		col.New(2).Add(text.New(tx.UnitPrice.StringFixed(2), props.Text{Size: 9, Top: 1, Align: align.Right})),
		col.New(2).Add(text.New(tx.TotalPrice.StringFixed(2), props.Text{Size: 9, Top: 1, Align: align.Right})),
	)
}

func totalRow(tx *entity.Transaction) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL PAGADO", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right})),
		col.New(2).Add(text.New(tx.TotalPrice.StringFixed(2)+" €", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 1, Align: align.Right, Color: colorPrimary,
		})),
	)
}
