package boleto

import "gorm.io/gorm"

type Repository interface {
	CriarEmLote(db *gorm.DB, boletos []Boleto) error
	ListarTodos(db *gorm.DB) ([]Boleto, error)
	ListarComLote(db *gorm.DB) ([]Boleto, error)
	BuscarPorIDs(db *gorm.DB, ids []uint) ([]Boleto, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// CriarEmLote insere todos os boletos em um único INSERT.
func (r *repositoryImpl) CriarEmLote(db *gorm.DB, boletos []Boleto) error {
	return db.Create(&boletos).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Boleto, error) {
	var boletos []Boleto
	err := db.Find(&boletos).Error
	return boletos, err
}

func (r *repositoryImpl) ListarComLote(db *gorm.DB) ([]Boleto, error) {
	var boletos []Boleto
	err := db.Preload("Lote").Find(&boletos).Error
	return boletos, err
}

func (r *repositoryImpl) BuscarPorIDs(db *gorm.DB, ids []uint) ([]Boleto, error) {
	var boletos []Boleto
	err := db.Where("id IN ?", ids).Find(&boletos).Error
	return boletos, err
}
