package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/condoboletos/api-boletos/internal/boleto"
	"github.com/condoboletos/api-boletos/internal/config"
	"github.com/condoboletos/api-boletos/internal/database"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Erro ao conectar no banco", zap.Error(err))
	}

	if err := database.Migrate(db, cfg.DBReset); err != nil {
		logger.Fatal("Erro ao migrar o schema", zap.Error(err))
	}
	if err := database.SeedLotes(db); err != nil {
		logger.Fatal("Erro ao semear lotes", zap.Error(err))
	}

	// Handlers
	boletoHandler := boleto.NewHandler(boleto.NewService(db, logger, cfg.UploadDir))

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/invoices", boletoHandler.Listar).Methods("GET")
	r.HandleFunc("/invoices/import", boletoHandler.ImportarCSV).Methods("POST")
	r.HandleFunc("/invoices/upload", boletoHandler.UploadPDF).Methods("POST")

	// Inicia servidor
	logger.Info("Servidor rodando", zap.String("porta", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, cors.AllowAll().Handler(r)); err != nil {
		logger.Fatal("Erro no servidor HTTP", zap.Error(err))
	}
}
