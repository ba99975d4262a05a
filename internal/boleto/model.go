package boleto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/condoboletos/api-boletos/internal/lote"
)

// Boleto é um registro de cobrança pertencente a exatamente um lote.
type Boleto struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	PayerName   string          `gorm:"size:255;not null" json:"payerName"`
	LoteID      uint            `gorm:"not null;index" json:"loteId"`
	Lote        *lote.Lote      `gorm:"foreignKey:LoteID;constraint:OnDelete:CASCADE" json:"lote,omitempty"`
	Valor       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	DigitalLine string          `gorm:"size:255;not null" json:"digitalLine"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}
