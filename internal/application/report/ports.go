package report

import (
	"context"
	"time"
)

// TableDocument descripción neutra de un reporte tabular: título, cabecera
// fija y filas de texto. El generador decide tipografía, alto de fila según
// el texto envuelto y los saltos de página.
type TableDocument struct {
	Title       string
	GeneratedAt time.Time
	Headers     []string
	// Widths anchos de columna en la grilla de 12 del generador; debe sumar 12
	// y tener la misma longitud que Headers.
	Widths []int
	Rows   [][]string
}

// TableGenerator renderiza un TableDocument a bytes PDF.
// Lo implementa infrastructure/pdf.MarotoReportGenerator.
type TableGenerator interface {
	GenerateTable(ctx context.Context, doc TableDocument) ([]byte, error)
}
