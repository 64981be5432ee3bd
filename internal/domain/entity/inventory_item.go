package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Etiquetas de estado de stock derivadas de quantity vs min_threshold.
const (
	StockOut  = "out"
	StockLow  = "low"
	StockGood = "good"
)

// Supplier datos del proveedor anidados en el item.
type Supplier struct {
	Name    string `bson:"name"`
	Contact string `bson:"contact,omitempty"`
	Phone   string `bson:"phone,omitempty"`
	Terms   string `bson:"terms,omitempty"`
}

// InventoryItem repuesto o insumo del taller.
type InventoryItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Category     string             `bson:"category"`
	Supplier     Supplier           `bson:"supplier"`
	SKU          string             `bson:"sku,omitempty"` // único si está presente
	Quantity     int                `bson:"quantity"`
	UnitPrice    float64            `bson:"unit_price"`
	MinThreshold int                `bson:"min_threshold"`
	LastUpdated  time.Time          `bson:"last_updated"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// StockStatus clasifica el nivel de stock del item: out (agotado),
// low (en o bajo el umbral mínimo) o good.
func (i *InventoryItem) StockStatus() string {
	switch {
	case i.Quantity <= 0:
		return StockOut
	case i.Quantity <= i.MinThreshold:
		return StockLow
	default:
		return StockGood
	}
}
