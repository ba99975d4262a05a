package boleto

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/condoboletos/api-boletos/internal/lote"
)

// Service orquestra os pipelines de importação, divisão de PDF e relatório
// sobre os repositórios de boletos e lotes.
type Service struct {
	DB      *gorm.DB
	Boletos Repository
	Lotes   lote.Repository
	Logger  *zap.Logger

	// DiretorioSaida recebe os PDFs individuais gerados pela divisão.
	DiretorioSaida string
}

func NewService(db *gorm.DB, logger *zap.Logger, diretorioSaida string) *Service {
	return &Service{
		DB:             db,
		Boletos:        NewRepository(),
		Lotes:          lote.NewRepository(),
		Logger:         logger,
		DiretorioSaida: diretorioSaida,
	}
}

func (s *Service) ListarTodos() ([]Boleto, error) {
	return s.Boletos.ListarTodos(s.DB)
}
