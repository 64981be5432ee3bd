package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierDTO datos del proveedor anidados en el item.
type SupplierDTO struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Terms   string `json:"terms,omitempty"`
}

// CreateInventoryItemRequest alta de un item de inventario.
type CreateInventoryItemRequest struct {
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	Supplier     SupplierDTO `json:"supplier"`
	SKU          string      `json:"sku"`
	Quantity     int         `json:"quantity"`
	UnitPrice    float64     `json:"unit_price"`
	MinThreshold int         `json:"min_threshold"`
}

// UpdateInventoryItemRequest patch explícito por campo (nil = no tocar).
type UpdateInventoryItemRequest struct {
	Name         *string      `json:"name"`
	Category     *string      `json:"category"`
	Supplier     *SupplierDTO `json:"supplier"`
	SKU          *string      `json:"sku"`
	Quantity     *int         `json:"quantity"`
	UnitPrice    *float64     `json:"unit_price"`
	MinThreshold *int         `json:"min_threshold"`
}

// InventoryItemResponse salida de un item con la etiqueta derivada de stock.
type InventoryItemResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	Supplier     SupplierDTO `json:"supplier"`
	SKU          string      `json:"sku,omitempty"`
	Quantity     int         `json:"quantity"`
	UnitPrice    float64     `json:"unit_price"`
	MinThreshold int         `json:"min_threshold"`
	StockStatus  string      `json:"stock_status"` // out | low | good
	LastUpdated  time.Time   `json:"last_updated"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ReduceStockRequest descuento de stock de un item.
type ReduceStockRequest struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// BulkReduceItem una línea de un descuento masivo.
type BulkReduceItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// BulkReduceStockRequest descuento de stock por lotes.
type BulkReduceStockRequest struct {
	Items []BulkReduceItem `json:"items"`
}

// BulkReduceError fallo individual dentro de un lote.
type BulkReduceError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// BulkReduceStockResponse reporte particionado: los fallos individuales no
// abortan el lote.
type BulkReduceStockResponse struct {
	Processed []InventoryItemResponse `json:"processed"`
	Errors    []BulkReduceError       `json:"errors"`
}

// InventoryAnalyticsResponse agregación de solo lectura sobre el inventario.
type InventoryAnalyticsResponse struct {
	TotalItems    int             `json:"total_items"`
	TotalValue    decimal.Decimal `json:"total_value"` // sum(quantity * unit_price)
	OutOfStock    int             `json:"out_of_stock"`
	LowStock      int             `json:"low_stock"`
	InStock       int             `json:"in_stock"`
	OutOfStockIDs []string        `json:"out_of_stock_ids,omitempty"`
	LowStockIDs   []string        `json:"low_stock_ids,omitempty"`
}

// ReorderSuggestionDTO sugerencia de reposición para un item bajo el umbral.
type ReorderSuggestionDTO struct {
	ItemID        string          `json:"item_id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku,omitempty"`
	Quantity      int             `json:"quantity"`
	MinThreshold  int             `json:"min_threshold"`
	StockStatus   string          `json:"stock_status"`
	SuggestedQty  int             `json:"suggested_qty"`
	UnitPrice     float64         `json:"unit_price"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Priority      int             `json:"priority"` // 1 = agotado (más urgente), 2 = bajo umbral
}
