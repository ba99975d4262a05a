package boleto

// FiltroConsulta são os filtros aceitos pela listagem de boletos.
// Hoje nenhum deles é aplicado na consulta.
type FiltroConsulta struct {
	Nome         string `json:"nome"`
	ValorInicial string `json:"valor_inicial"`
	ValorFinal   string `json:"valor_final"`
	IDLote       string `json:"id_lote"`
}

// LinhaImportada espelha a linha aceita do CSV com o lote resolvido.
type LinhaImportada struct {
	Nome           string `json:"nome"`
	Unidade        string `json:"unidade"`
	Valor          string `json:"valor"`
	LinhaDigitavel string `json:"linha_digitavel"`
	LoteID         uint   `json:"lote_id"`
	NomeLote       string `json:"nome_lote"`
}

// LinhaRejeitada carrega a linha crua e o primeiro motivo de rejeição.
type LinhaRejeitada struct {
	Row    map[string]string `json:"row"`
	Reason string            `json:"reason"`
}

type ResultadoImportacao struct {
	Message          string           `json:"message"`
	ImportedCount    int              `json:"importedCount"`
	NotImportedCount int              `json:"notImportedCount"`
	Imported         []LinhaImportada `json:"imported"`
	NotImported      []LinhaRejeitada `json:"notImported"`
}

type FalhaPagina struct {
	Motivo string `json:"motivo"`
}

type ResultadoDivisao struct {
	Message         string        `json:"message"`
	TotalBoletos    int           `json:"totalBoletos"`
	TotalPaginasPdf int           `json:"totalPaginasPdf"`
	ArquivosGerados []string      `json:"arquivosGerados"`
	Falharam        []FalhaPagina `json:"falharam"`
}

type Relatorio struct {
	Base64 string `json:"base64"`
}
