package lote

import "gorm.io/gorm"

type Repository interface {
	CriarEmLote(db *gorm.DB, lotes []Lote) error
	ListarTodos(db *gorm.DB) ([]Lote, error)
	MapaPorNome(db *gorm.DB) (map[string]Lote, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) CriarEmLote(db *gorm.DB, lotes []Lote) error {
	return db.CreateInBatches(&lotes, 100).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Lote, error) {
	var lotes []Lote
	err := db.Find(&lotes).Error
	return lotes, err
}

// MapaPorNome indexa todos os lotes pelo nome para busca O(1) na importação.
func (r *repositoryImpl) MapaPorNome(db *gorm.DB) (map[string]Lote, error) {
	lotes, err := r.ListarTodos(db)
	if err != nil {
		return nil, err
	}
	mapa := make(map[string]Lote, len(lotes))
	for _, l := range lotes {
		mapa[l.Nome] = l
	}
	return mapa, nil
}
