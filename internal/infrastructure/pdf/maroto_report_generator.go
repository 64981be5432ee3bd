// Package pdf implementa el renderizado de los reportes tabulares del taller
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabecera en bold + una fila por registro            │
//	│  (saltos de página automáticos en reportes largos)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                  │
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

	"github.com/jhoicas/Taller-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.TableGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateTable renderiza el documento y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateTable(_ context.Context, doc report.TableDocument) ([]byte, error) {
	if len(doc.Headers) != len(doc.Widths) {
		return nil, fmt.Errorf("pdf: cabecera con %d columnas y %d anchos", len(doc.Headers), len(doc.Widths))
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(doc))
	for _, r := range tableDataRows(doc) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: título (izq) y fecha de generación (der).
func titleRow(doc report.TableDocument) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera en bold con los anchos declarados por el documento.
func tableHeaderRow(doc report.TableDocument) core.Row {
	cols := make([]core.Col, 0, len(doc.Headers))
	for i, h := range doc.Headers {
		cols = append(cols, col.New(doc.Widths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
			Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableDataRows: una fila por registro; el alto crece con el texto envuelto
// más largo de la fila para que las celdas no se pisen entre sí.
func tableDataRows(doc report.TableDocument) []core.Row {
	result := make([]core.Row, 0, len(doc.Rows))
	for _, cells := range doc.Rows {
		height := 6.0
		for i, cell := range cells {
			if i >= len(doc.Widths) {
				break
			}
			if h := wrappedHeight(cell, doc.Widths[i]); h > height {
				height = h
			}
		}
		cols := make([]core.Col, 0, len(cells))
		for i, cell := range cells {
			if i >= len(doc.Widths) {
				break
			}
			cols = append(cols, col.New(doc.Widths[i]).Add(text.New(cell, props.Text{
				Size: 8, Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(height).Add(cols...))
	}
	return result
}

// footerRow: total de registros del reporte.
func footerRow(doc report.TableDocument) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d registros", len(doc.Rows)), props.Text{
			Size: 7.5, Align: align.Right, Top: 2, Color: colorGray,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// wrappedHeight estima el alto en mm de una celda según las líneas que
// ocupará su texto una vez envuelto. Aproximación: ~2.3 caracteres por mm a
// 8pt sobre una página A4 útil de ~190mm dividida en grilla de 12.
func wrappedHeight(s string, width int) float64 {
	if width <= 0 {
		return 6
	}
	charsPerLine := int(float64(width) / 12 * 190 * 2.3 / 4.5)
	if charsPerLine < 1 {
		charsPerLine = 1
	}
	lines := (len(s) + charsPerLine - 1) / charsPerLine
	if lines < 1 {
		lines = 1
	}
	return float64(lines)*4 + 2
}
