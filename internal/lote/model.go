package lote

import "time"

// Lote agrupa boletos por unidade. O Nome é o código da unidade
// com zero à esquerda até 4 dígitos (ex: "0017").
type Lote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;not null" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
