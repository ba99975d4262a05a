package boleto

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap"
)

// ordemFixaIDs define qual boleto corresponde a cada página do PDF enviado:
// página 1 = ID 2, página 2 = ID 3, página 3 = ID 1. A ordem não vem do
// arquivo nem da requisição; é uma limitação conhecida.
var ordemFixaIDs = []uint{2, 3, 1}

// DividirPDF separa cada página do PDF enviado em um arquivo próprio,
// nomeado pelo ID do boleto correspondente na ordem fixa. Páginas sem
// boleto entram na lista de falhas e não geram arquivo.
func (s *Service) DividirPDF(dados []byte) (*ResultadoDivisao, error) {
	totalPaginas, err := api.PageCount(bytes.NewReader(dados), nil)
	if err != nil {
		s.Logger.Error("Erro ao ler PDF enviado", zap.Error(err))
		return nil, fmt.Errorf("ler PDF: %w", err)
	}

	boletos, err := s.Boletos.BuscarPorIDs(s.DB, ordemFixaIDs)
	if err != nil {
		s.Logger.Error("Erro ao buscar boletos da ordem fixa", zap.Error(err))
		return nil, fmt.Errorf("buscar boletos: %w", err)
	}

	porID := make(map[uint]Boleto, len(boletos))
	for _, b := range boletos {
		porID[b.ID] = b
	}

	// Reordena conforme a ordem fixa; ID sem boleto vira buraco na posição.
	ordenados := make([]*Boleto, len(ordemFixaIDs))
	for i, id := range ordemFixaIDs {
		if b, ok := porID[id]; ok {
			ordenados[i] = &b
		}
	}

	if err := os.MkdirAll(s.DiretorioSaida, 0o755); err != nil {
		s.Logger.Error("Erro ao criar diretório de saída", zap.Error(err))
		return nil, fmt.Errorf("criar diretório: %w", err)
	}

	resultado := &ResultadoDivisao{
		Message:         "Boletos processados com sucesso",
		TotalBoletos:    len(boletos),
		TotalPaginasPdf: totalPaginas,
		ArquivosGerados: []string{},
		Falharam:        []FalhaPagina{},
	}

	for i := 0; i < totalPaginas; i++ {
		if i >= len(ordenados) || ordenados[i] == nil {
			resultado.Falharam = append(resultado.Falharam, FalhaPagina{
				Motivo: fmt.Sprintf("Página %d sem boleto correspondente.", i+1),
			})
			continue
		}

		nomeArquivo := fmt.Sprintf("%d.pdf", ordenados[i].ID)
		if err := s.extrairPagina(dados, i+1, filepath.Join(s.DiretorioSaida, nomeArquivo)); err != nil {
			s.Logger.Error("Erro ao extrair página do PDF",
				zap.Int("pagina", i+1), zap.Error(err))
			return nil, fmt.Errorf("extrair página %d: %w", i+1, err)
		}

		resultado.ArquivosGerados = append(resultado.ArquivosGerados, nomeArquivo)
	}

	return resultado, nil
}

// extrairPagina grava um novo PDF contendo só a página indicada (1-based),
// sobrescrevendo arquivo anterior de mesmo nome.
func (s *Service) extrairPagina(dados []byte, pagina int, caminho string) error {
	arquivo, err := os.Create(caminho)
	if err != nil {
		return err
	}
	defer arquivo.Close()

	return api.Trim(bytes.NewReader(dados), arquivo, []string{strconv.Itoa(pagina)}, nil)
}
