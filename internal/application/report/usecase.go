package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// Tope de filas por reporte: los reportes son instantáneas operativas, no
// exportaciones completas de la base.
const maxRows = 500

// ReportUseCase arma los documentos tabulares por entidad y delega el
// renderizado PDF en el TableGenerator. Solo lectura: si la carga de datos
// falla, el error se propaga y no se emite PDF parcial.
type ReportUseCase struct {
	cars      repository.CarRepository
	jobs      repository.JobRepository
	appts     repository.AppointmentRepository
	inventory repository.InventoryRepository
	mechanics repository.MechanicRepository
	payments  repository.PaymentRepository
	generator TableGenerator
}

// NewReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportUseCase(
	cars repository.CarRepository,
	jobs repository.JobRepository,
	appts repository.AppointmentRepository,
	inventory repository.InventoryRepository,
	mechanics repository.MechanicRepository,
	payments repository.PaymentRepository,
	generator TableGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		cars:      cars,
		jobs:      jobs,
		appts:     appts,
		inventory: inventory,
		mechanics: mechanics,
		payments:  payments,
		generator: generator,
	}
}

// Cars reporte tabular de vehículos.
func (uc *ReportUseCase) Cars(ctx context.Context) ([]byte, string, error) {
	cars, _, err := uc.cars.List(ctx, "", 1, maxRows)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de vehículos: %w", err)
	}
	rows := make([][]string, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, []string{
			c.LicensePlate,
			c.CustomerName,
			c.CustomerPhone,
			fmt.Sprintf("%s %s %d", c.Make, c.Model, c.Year),
			c.VIN,
		})
	}
	return uc.render(ctx, "Vehículos", []string{"Placa", "Cliente", "Teléfono", "Vehículo", "VIN"}, []int{2, 3, 2, 3, 2}, rows, "vehiculos")
}

// Jobs reporte tabular de órdenes de trabajo.
func (uc *ReportUseCase) Jobs(ctx context.Context) ([]byte, string, error) {
	jobs, _, err := uc.jobs.List(ctx, "", 1, maxRows)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de órdenes: %w", err)
	}
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		done := 0
		for _, t := range j.Tasks {
			if t.Completed {
				done++
			}
		}
		estimated := ""
		if !j.EstimatedCompletion.IsZero() {
			estimated = j.EstimatedCompletion.Format("02/01/2006")
		}
		rows = append(rows, []string{
			j.ID.Hex(),
			j.Mechanic,
			j.Status,
			fmt.Sprintf("%d/%d", done, len(j.Tasks)),
			estimated,
		})
	}
	return uc.render(ctx, "Órdenes de trabajo", []string{"Orden", "Mecánico", "Estado", "Tareas", "Entrega est."}, []int{3, 3, 2, 2, 2}, rows, "ordenes")
}

// Appointments reporte tabular de citas.
func (uc *ReportUseCase) Appointments(ctx context.Context) ([]byte, string, error) {
	appts, _, err := uc.appts.List(ctx, "", 1, maxRows)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de citas: %w", err)
	}
	rows := make([][]string, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, []string{
			a.CustomerName,
			a.Vehicle,
			a.ServiceType,
			a.PreferredDate.Format("02/01/2006"),
			a.Status,
		})
	}
	return uc.render(ctx, "Citas", []string{"Cliente", "Vehículo", "Servicio", "Fecha", "Estado"}, []int{3, 3, 2, 2, 2}, rows, "citas")
}

// Inventory reporte tabular de inventario con estado de stock por item.
func (uc *ReportUseCase) Inventory(ctx context.Context) ([]byte, string, error) {
	items, err := uc.inventory.ListAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de inventario: %w", err)
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Name,
			it.Category,
			it.SKU,
			strconv.Itoa(it.Quantity),
			"$" + decimal.NewFromFloat(it.UnitPrice).StringFixed(2),
			it.StockStatus(),
		})
	}
	return uc.render(ctx, "Inventario", []string{"Item", "Categoría", "SKU", "Cant.", "Precio", "Stock"}, []int{3, 2, 2, 1, 2, 2}, rows, "inventario")
}

// Mechanics reporte tabular de mecánicos.
func (uc *ReportUseCase) Mechanics(ctx context.Context) ([]byte, string, error) {
	ms, _, err := uc.mechanics.List(ctx, "", "", 1, maxRows)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de mecánicos: %w", err)
	}
	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, []string{
			m.Name,
			m.Email,
			m.Phone,
			strings.Join(m.Skills, ", "),
			m.Availability,
		})
	}
	return uc.render(ctx, "Mecánicos", []string{"Nombre", "Email", "Teléfono", "Habilidades", "Disponibilidad"}, []int{2, 3, 2, 3, 2}, rows, "mecanicos")
}

// Payments reporte tabular de pagos con fila final de total cobrado.
func (uc *ReportUseCase) Payments(ctx context.Context) ([]byte, string, error) {
	ps, _, err := uc.payments.List(ctx, "", "", 1, maxRows)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de pagos: %w", err)
	}
	total := decimal.Zero
	rows := make([][]string, 0, len(ps)+1)
	for _, p := range ps {
		amount := decimal.NewFromFloat(p.Amount)
		if p.Status == entity.PaymentCompleted {
			total = total.Add(amount)
		}
		rows = append(rows, []string{
			p.Date.Format("02/01/2006"),
			"$" + amount.StringFixed(2),
			p.Method,
			p.Status,
			p.TransactionID,
		})
	}
	rows = append(rows, []string{"", "$" + total.StringFixed(2), "", "TOTAL COBRADO", ""})
	return uc.render(ctx, "Pagos", []string{"Fecha", "Monto", "Método", "Estado", "Transacción"}, []int{2, 2, 2, 2, 4}, rows, "pagos")
}

func (uc *ReportUseCase) render(ctx context.Context, title string, headers []string, widths []int, rows [][]string, slug string) ([]byte, string, error) {
	doc := TableDocument{
		Title:       title,
		GeneratedAt: time.Now(),
		Headers:     headers,
		Widths:      widths,
		Rows:        rows,
	}
	pdf, err := uc.generator.GenerateTable(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("reporte_%s_%s.pdf", slug, doc.GeneratedAt.Format("20060102"))
	return pdf, filename, nil
}
