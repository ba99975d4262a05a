package boleto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const (
	fonteRelatorio = "Helvetica"
	tamanhoFonte   = 12.0
	margemEsquerda = 50.0
	margemSuperior = 50.0
	alturaLinha    = 20.0
	folgaColuna    = 10.0
)

// GerarRelatorio monta um PDF tabular de página única com todos os boletos
// e devolve o documento em base64. A largura de cada coluna é a maior
// largura medida entre cabeçalho e células, mais uma folga fixa. Não há
// paginação: acima da capacidade da página as linhas saem da área visível.
func (s *Service) GerarRelatorio() (*Relatorio, error) {
	boletos, err := s.Boletos.ListarComLote(s.DB)
	if err != nil {
		s.Logger.Error("Erro ao consultar boletos para o relatório", zap.Error(err))
		return nil, fmt.Errorf("consultar boletos: %w", err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont(fonteRelatorio, "", tamanhoFonte)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	cabecalhos := []string{"ID", "Nome Sacado", "ID Lote", "Valor", "Linha Digitável"}
	linhas := make([][]string, 0, len(boletos))
	for _, b := range boletos {
		linhas = append(linhas, []string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.PayerName,
			strconv.FormatUint(uint64(b.LoteID), 10),
			b.Valor.StringFixed(2),
			b.DigitalLine,
		})
	}

	larguras := make([]float64, len(cabecalhos))
	for i, cabecalho := range cabecalhos {
		larguras[i] = pdf.GetStringWidth(tr(cabecalho))
		for _, linha := range linhas {
			if w := pdf.GetStringWidth(tr(linha[i])); w > larguras[i] {
				larguras[i] = w
			}
		}
		larguras[i] += folgaColuna
	}

	posicoes := make([]float64, len(cabecalhos))
	x := margemEsquerda
	for i := range cabecalhos {
		posicoes[i] = x
		x += larguras[i]
	}

	y := margemSuperior
	for i, cabecalho := range cabecalhos {
		pdf.Text(posicoes[i], y, tr(cabecalho))
	}
	y += alturaLinha

	for _, linha := range linhas {
		for i, texto := range linha {
			pdf.Text(posicoes[i], y, tr(texto))
		}
		y += alturaLinha
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.Logger.Error("Erro ao gerar PDF do relatório", zap.Error(err))
		return nil, fmt.Errorf("gerar PDF: %w", err)
	}

	return &Relatorio{Base64: base64.StdEncoding.EncodeToString(buf.Bytes())}, nil
}
