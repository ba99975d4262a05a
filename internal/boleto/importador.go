package boleto

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/condoboletos/api-boletos/internal/lote"
)

// ImportarCSV processa um CSV separado por ponto e vírgula com cabeçalho
// nome;unidade;valor;linha_digitavel. Linhas válidas são acumuladas e
// persistidas em um único INSERT ao final; linhas rejeitadas entram no
// resumo com o primeiro motivo encontrado.
func (s *Service) ImportarCSV(dados []byte) (*ResultadoImportacao, error) {
	lotes, err := s.Lotes.MapaPorNome(s.DB)
	if err != nil {
		s.Logger.Error("Erro ao carregar lotes para importação", zap.Error(err))
		return nil, fmt.Errorf("carregar lotes: %w", err)
	}

	resultado := &ResultadoImportacao{
		Message:     "Importação finalizada.",
		Imported:    []LinhaImportada{},
		NotImported: []LinhaRejeitada{},
	}

	leitor := csv.NewReader(bytes.NewReader(dados))
	leitor.Comma = ';'

	cabecalho, err := leitor.Read()
	if err == io.EOF {
		return resultado, nil
	}
	if err != nil {
		s.Logger.Error("Erro ao ler cabeçalho do CSV", zap.Error(err))
		return nil, fmt.Errorf("ler cabeçalho: %w", err)
	}
	for i := range cabecalho {
		cabecalho[i] = strings.TrimSpace(cabecalho[i])
	}

	var pendentes []Boleto
	for {
		registro, err := leitor.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.Logger.Error("Erro ao ler linha do CSV", zap.Error(err))
			return nil, fmt.Errorf("ler linha: %w", err)
		}

		linha := linhaMapeada(cabecalho, registro)
		aceita, motivo := avaliarLinha(linha, lotes)
		if motivo != "" {
			resultado.NotImported = append(resultado.NotImported, LinhaRejeitada{Row: linha, Reason: motivo})
			continue
		}

		pendentes = append(pendentes, aceita.boleto)
		resultado.Imported = append(resultado.Imported, aceita.resumo)
	}

	if len(pendentes) > 0 {
		if err := s.Boletos.CriarEmLote(s.DB, pendentes); err != nil {
			s.Logger.Error("Erro ao persistir boletos importados", zap.Error(err))
			return nil, fmt.Errorf("persistir boletos: %w", err)
		}
	}

	resultado.ImportedCount = len(resultado.Imported)
	resultado.NotImportedCount = len(resultado.NotImported)
	return resultado, nil
}

type linhaAceita struct {
	boleto Boleto
	resumo LinhaImportada
}

// avaliarLinha aplica as checagens na ordem e para no primeiro motivo
// de rejeição. Não toca no banco.
func avaliarLinha(linha map[string]string, lotes map[string]lote.Lote) (*linhaAceita, string) {
	nome := linha["nome"]
	unidade := linha["unidade"]
	valor := linha["valor"]
	linhaDigitavel := linha["linha_digitavel"]

	if unidade == "" {
		return nil, "Unidade não informada"
	}

	nomeInterno := nomeInternoLote(unidade)
	l, ok := lotes[nomeInterno]
	if !ok {
		return nil, fmt.Sprintf("Lote não encontrado: unidade='%s' -> internalName='%s'", unidade, nomeInterno)
	}

	if nome == "" || valor == "" || linhaDigitavel == "" {
		return nil, "Campos obrigatórios ausentes (nome, valor ou linha digitável)"
	}

	montante, err := decimal.NewFromString(strings.ReplaceAll(valor, ",", "."))
	if err != nil {
		return nil, fmt.Sprintf("Valor inválido: %s", valor)
	}

	return &linhaAceita{
		boleto: Boleto{
			PayerName:   nome,
			LoteID:      l.ID,
			Valor:       montante,
			DigitalLine: linhaDigitavel,
			IsActive:    true,
		},
		resumo: LinhaImportada{
			Nome:           nome,
			Unidade:        unidade,
			Valor:          valor,
			LinhaDigitavel: linhaDigitavel,
			LoteID:         l.ID,
			NomeLote:       l.Nome,
		},
	}, ""
}

func linhaMapeada(cabecalho, registro []string) map[string]string {
	linha := make(map[string]string, len(cabecalho))
	for i, coluna := range cabecalho {
		if i < len(registro) {
			linha[coluna] = registro[i]
		}
	}
	return linha
}

// nomeInternoLote converte a unidade crua para o nome interno do lote,
// ex: "17" => "0017".
func nomeInternoLote(unidade string) string {
	if len(unidade) >= 4 {
		return unidade
	}
	return strings.Repeat("0", 4-len(unidade)) + unidade
}
