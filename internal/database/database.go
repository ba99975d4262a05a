package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/condoboletos/api-boletos/internal/boleto"
	"github.com/condoboletos/api-boletos/internal/config"
	"github.com/condoboletos/api-boletos/internal/lote"
)

// Connect abre a conexão Postgres a partir da configuração explícita.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var sslMode string
	if cfg.DBSSLDisable {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslMode)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}

// Migrate cria o schema. Com reset, derruba as tabelas antes (destrutivo).
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		if err := db.Migrator().DropTable(&boleto.Boleto{}, &lote.Lote{}); err != nil {
			return err
		}
	}
	return db.AutoMigrate(&lote.Lote{}, &boleto.Boleto{})
}

// SeedLotes insere os 100 lotes "0005".."0104" uma única vez.
// Em tabela já populada não faz nada.
func SeedLotes(db *gorm.DB) error {
	var total int64
	if err := db.Model(&lote.Lote{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	lotes := make([]lote.Lote, 0, 100)
	for i := 0; i < 100; i++ {
		lotes = append(lotes, lote.Lote{
			Nome:     fmt.Sprintf("%04d", i+5),
			IsActive: true,
		})
	}
	return lote.NewRepository().CriarEmLote(db, lotes)
}
