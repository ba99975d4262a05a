package lote

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Lote{}))
	return db
}

func TestCriarEmLoteEListarTodos(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	lotes := []Lote{
		{Nome: "0005", IsActive: true},
		{Nome: "0006", IsActive: true},
	}
	require.NoError(t, repo.CriarEmLote(db, lotes))

	todos, err := repo.ListarTodos(db)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestMapaPorNome(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()
	require.NoError(t, repo.CriarEmLote(db, []Lote{
		{Nome: "0005", IsActive: true},
		{Nome: "0017", IsActive: true},
	}))

	mapa, err := repo.MapaPorNome(db)
	require.NoError(t, err)
	require.Len(t, mapa, 2)

	l, ok := mapa["0017"]
	require.True(t, ok)
	assert.Equal(t, "0017", l.Nome)
	assert.NotZero(t, l.ID)

	_, ok = mapa["0001"]
	assert.False(t, ok)
}
