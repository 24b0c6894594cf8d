package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"parts_office/internal/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One pooled connection: every :memory: connection is its own database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Product{}))
	return db
}

func TestCheckID(t *testing.T) {
	assert.ErrorIs(t, CheckID("not-a-uuid"), ErrMalformedID)
	assert.ErrorIs(t, CheckID(""), ErrMalformedID)
	assert.NoError(t, CheckID("60d0fe4f-5311-4361-88a1-09cafe00beef"))
}

func TestFindByID(t *testing.T) {
	db := testDB(t)
	categories := New[model.Category](db)

	cat := &model.Category{Name: "Electronics"}
	require.NoError(t, categories.Create(cat))
	require.NotEmpty(t, cat.ID)

	got, err := categories.FindByID(cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", got.Name)

	_, err = categories.FindByID("nope")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = categories.FindByID("60d0fe4f-5311-4361-88a1-09cafe00beef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByIDPopulates(t *testing.T) {
	db := testDB(t)
	cat := &model.Category{Name: "Motors"}
	require.NoError(t, New[model.Category](db).Create(cat))

	products := New[model.Product](db)
	p := &model.Product{Marka: "Toyota", Count: 3, Price: 12000, CategoryID: cat.ID}
	require.NoError(t, products.Create(p))

	got, err := products.FindByID(p.ID, "Category")
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Motors", got.Category.Name)
}

func TestUpdateIsPartial(t *testing.T) {
	db := testDB(t)
	cat := &model.Category{Name: "Motors"}
	require.NoError(t, New[model.Category](db).Create(cat))

	products := New[model.Product](db)
	p := &model.Product{Marka: "Toyota", Count: 5, Price: 100, Location: "Warehouse A", CategoryID: cat.ID}
	require.NoError(t, products.Create(p))

	got, err := products.Update(p.ID, map[string]any{"location": "Warehouse B"})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse B", got.Location)
	// Absent fields retain prior values.
	assert.Equal(t, "Toyota", got.Marka)
	assert.Equal(t, int64(5), got.Count)

	_, err = products.Update("60d0fe4f-5311-4361-88a1-09cafe00beef", map[string]any{"location": "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := testDB(t)
	categories := New[model.Category](db)

	cat := &model.Category{Name: "Gone"}
	require.NoError(t, categories.Create(cat))
	require.NoError(t, categories.Delete(cat.ID))

	_, err := categories.FindByID(cat.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, categories.Delete(cat.ID), ErrNotFound)
}
