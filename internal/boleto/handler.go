package boleto

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
)

// Limite aceito no upload de CSV, em bytes.
const tamanhoMaximoCSV = 3_000_000

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// GET /invoices?relatorio=1
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("relatorio") {
		valor, err := strconv.Atoi(r.URL.Query().Get("relatorio"))
		if err == nil {
			if valor != 1 {
				w.Write([]byte("Para gerar o relatório, o valor deve ser 1"))
				return
			}
			relatorio, err := h.Service.GerarRelatorio()
			if err != nil {
				http.Error(w, "Erro ao gerar o relatório.", http.StatusInternalServerError)
				return
			}
			escreverJSON(w, http.StatusOK, relatorio)
			return
		}
	}

	boletos, err := h.Service.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar boletos", http.StatusInternalServerError)
		return
	}
	escreverJSON(w, http.StatusOK, boletos)
}

// POST /invoices/import
func (h *Handler) ImportarCSV(w http.ResponseWriter, r *http.Request) {
	arquivo, cabecalho, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Nenhum arquivo foi enviado.", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	if cabecalho.Size > tamanhoMaximoCSV {
		http.Error(w, "Arquivo excede o tamanho máximo de 3000000 bytes", http.StatusBadRequest)
		return
	}
	tipo, _, err := mime.ParseMediaType(cabecalho.Header.Get("Content-Type"))
	if err != nil || tipo != "text/csv" {
		http.Error(w, "Tipo de arquivo inválido, esperado text/csv", http.StatusBadRequest)
		return
	}

	dados, err := io.ReadAll(arquivo)
	if err != nil {
		http.Error(w, "Erro ao processar o arquivo CSV.", http.StatusInternalServerError)
		return
	}

	resultado, err := h.Service.ImportarCSV(dados)
	if err != nil {
		http.Error(w, "Erro ao processar o arquivo CSV.", http.StatusInternalServerError)
		return
	}
	escreverJSON(w, http.StatusOK, resultado)
}

// POST /invoices/upload
func (h *Handler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	arquivo, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Nenhum arquivo foi enviado.", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	dados, err := io.ReadAll(arquivo)
	if err != nil {
		http.Error(w, "Erro ao dividir boletos em páginas.", http.StatusInternalServerError)
		return
	}

	resultado, err := h.Service.DividirPDF(dados)
	if err != nil {
		http.Error(w, "Erro ao dividir boletos em páginas.", http.StatusInternalServerError)
		return
	}
	escreverJSON(w, http.StatusOK, resultado)
}

func escreverJSON(w http.ResponseWriter, status int, corpo any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(corpo)
}
