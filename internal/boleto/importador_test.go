package boleto

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/condoboletos/api-boletos/internal/lote"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&lote.Lote{}, &Boleto{}))
	return db
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(newTestDB(t), zap.NewNop(), t.TempDir())
}

func seedLote(t *testing.T, db *gorm.DB, nome string) lote.Lote {
	t.Helper()
	l := lote.Lote{Nome: nome, IsActive: true}
	require.NoError(t, db.Create(&l).Error)
	return l
}

func contarBoletos(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var total int64
	require.NoError(t, db.Model(&Boleto{}).Count(&total).Error)
	return total
}

func TestImportarCSVUnidadeVazia(t *testing.T) {
	s := newTestService(t)
	seedLote(t, s.DB, "0005")

	csv := "nome;unidade;valor;linha_digitavel\nJoão;;100,00;12345\n"
	resultado, err := s.ImportarCSV([]byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 0, resultado.ImportedCount)
	require.Equal(t, 1, resultado.NotImportedCount)
	assert.Equal(t, "Unidade não informada", resultado.NotImported[0].Reason)
	assert.EqualValues(t, 0, contarBoletos(t, s.DB))
}

func TestImportarCSVLoteInexistente(t *testing.T) {
	s := newTestService(t)
	seedLote(t, s.DB, "0005")

	csv := "nome;unidade;valor;linha_digitavel\nJoão;17;100,00;12345\n"
	resultado, err := s.ImportarCSV([]byte(csv))
	require.NoError(t, err)

	require.Equal(t, 1, resultado.NotImportedCount)
	assert.Contains(t, resultado.NotImported[0].Reason, "unidade='17'")
	assert.Contains(t, resultado.NotImported[0].Reason, "internalName='0017'")
	assert.EqualValues(t, 0, contarBoletos(t, s.DB))
}

func TestImportarCSVCamposObrigatorios(t *testing.T) {
	s := newTestService(t)
	seedLote(t, s.DB, "0005")

	csv := "nome;unidade;valor;linha_digitavel\n;5;100,00;12345\n"
	resultado, err := s.ImportarCSV([]byte(csv))
	require.NoError(t, err)

	require.Equal(t, 1, resultado.NotImportedCount)
	assert.Equal(t, "Campos obrigatórios ausentes (nome, valor ou linha digitável)",
		resultado.NotImported[0].Reason)
}

func TestImportarCSVValorInvalido(t *testing.T) {
	s := newTestService(t)
	seedLote(t, s.DB, "0005")

	csv := "nome;unidade;valor;linha_digitavel\nJoão;5;abc;12345\n"
	resultado, err := s.ImportarCSV([]byte(csv))
	require.NoError(t, err)

	require.Equal(t, 1, resultado.NotImportedCount)
	assert.Equal(t, "Valor inválido: abc", resultado.NotImported[0].Reason)
	assert.EqualValues(t, 0, contarBoletos(t, s.DB))
}

func TestImportarCSVValorComVirgula(t *testing.T) {
	s := newTestService(t)
	seedLote(t, s.DB, "0017")

	csv := "nome;unidade;valor;linha_digitavel\nMaria;17;123,45;98765\n"
	resultado, err := s.ImportarCSV([]byte(csv))
	require.NoError(t, err)
	require.Equal(t, 1, resultado.ImportedCount)

	boletos, err := s.Boletos.ListarTodos(s.DB)
	require.NoError(t, err)
	require.Len(t, boletos, 1)
	assert.True(t, boletos[0].Valor.Equal(decimal.RequireFromString("123.45")),
		"esperado 123.45, obtido %s", boletos[0].Valor)
}

func TestImportarCSVCenarioCompleto(t *testing.T) {
	s := newTestService(t)
	l := seedLote(t, s.DB, "0005")

	csv := "nome;unidade;valor;linha_digitavel\n" +
		"João;5;100,00;00000.00000 00000.000000 00000.000000 0 00000000000000\n"
	resultado, err := s.ImportarCSV([]byte(csv))
	require.NoError(t, err)

	assert.Equal(t, "Importação finalizada.", resultado.Message)
	assert.Equal(t, 1, resultado.ImportedCount)
	assert.Equal(t, 0, resultado.NotImportedCount)
	require.Len(t, resultado.Imported, 1)
	assert.Equal(t, l.ID, resultado.Imported[0].LoteID)
	assert.Equal(t, "0005", resultado.Imported[0].NomeLote)

	boletos, err := s.Boletos.ListarComLote(s.DB)
	require.NoError(t, err)
	require.Len(t, boletos, 1)
	assert.Equal(t, "João", boletos[0].PayerName)
	assert.True(t, boletos[0].Valor.Equal(decimal.RequireFromString("100.00")))
	require.NotNil(t, boletos[0].Lote)
	assert.Equal(t, "0005", boletos[0].Lote.Nome)
}

func TestImportarCSVReimportacaoNaoDeduplica(t *testing.T) {
	s := newTestService(t)
	seedLote(t, s.DB, "0005")

	csv := "nome;unidade;valor;linha_digitavel\nJoão;5;100,00;12345\n"
	_, err := s.ImportarCSV([]byte(csv))
	require.NoError(t, err)
	_, err = s.ImportarCSV([]byte(csv))
	require.NoError(t, err)

	assert.EqualValues(t, 2, contarBoletos(t, s.DB))
}

func TestImportarCSVColunasExtrasIgnoradas(t *testing.T) {
	s := newTestService(t)
	seedLote(t, s.DB, "0005")

	csv := "nome;unidade;valor;linha_digitavel;observacao\nJoão;5;100,00;12345;qualquer\n"
	resultado, err := s.ImportarCSV([]byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.ImportedCount)
	assert.Equal(t, 0, resultado.NotImportedCount)
}

func TestImportarCSVMalformadoAbortaTudo(t *testing.T) {
	s := newTestService(t)
	seedLote(t, s.DB, "0005")

	// segunda linha com número de campos diferente do cabeçalho
	csv := "nome;unidade;valor;linha_digitavel\nJoão;5;100,00;12345\nMaria;5\n"
	_, err := s.ImportarCSV([]byte(csv))
	require.Error(t, err)

	assert.EqualValues(t, 0, contarBoletos(t, s.DB))
}

func TestImportarCSVVazio(t *testing.T) {
	s := newTestService(t)

	resultado, err := s.ImportarCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, resultado.ImportedCount)
	assert.Equal(t, 0, resultado.NotImportedCount)
}

func TestAvaliarLinhaOrdemDasChecagens(t *testing.T) {
	lotes := map[string]lote.Lote{"0005": {ID: 1, Nome: "0005"}}

	casos := []struct {
		nome   string
		linha  map[string]string
		motivo string
	}{
		{
			nome:   "unidade vem antes dos demais campos",
			linha:  map[string]string{"nome": "", "unidade": "", "valor": "", "linha_digitavel": ""},
			motivo: "Unidade não informada",
		},
		{
			nome:   "lote vem antes dos campos obrigatórios",
			linha:  map[string]string{"nome": "", "unidade": "99", "valor": "", "linha_digitavel": ""},
			motivo: "Lote não encontrado: unidade='99' -> internalName='0099'",
		},
		{
			nome:   "campos obrigatórios vêm antes do valor",
			linha:  map[string]string{"nome": "João", "unidade": "5", "valor": "", "linha_digitavel": "x"},
			motivo: "Campos obrigatórios ausentes (nome, valor ou linha digitável)",
		},
		{
			nome:   "valor é a última checagem",
			linha:  map[string]string{"nome": "João", "unidade": "5", "valor": "x,y", "linha_digitavel": "z"},
			motivo: "Valor inválido: x,y",
		},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			aceita, motivo := avaliarLinha(caso.linha, lotes)
			assert.Nil(t, aceita)
			assert.Equal(t, caso.motivo, motivo)
		})
	}
}

func TestNomeInternoLote(t *testing.T) {
	assert.Equal(t, "0005", nomeInternoLote("5"))
	assert.Equal(t, "0017", nomeInternoLote("17"))
	assert.Equal(t, "0104", nomeInternoLote("104"))
	assert.Equal(t, "1234", nomeInternoLote("1234"))
	assert.Equal(t, "12345", nomeInternoLote("12345"))
}
