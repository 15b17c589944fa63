package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"etalase/internal/models"
	"etalase/internal/repositories"
)

var dbSeq int

// setupBannerRepo opens a fresh in-memory SQLite database per test.
func setupBannerRepo(t *testing.T) *repositories.GORMBannerRepository {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:banners_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.HeroBanner{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return repositories.NewGORMBannerRepository(db)
}

func seedBanners(t *testing.T, repo *repositories.GORMBannerRepository) []models.HeroBanner {
	t.Helper()
	banners := []models.HeroBanner{
		{Title: "a", ImageURL: "/uploads/a.png", Order: 0, IsActive: true},
		{Title: "b", ImageURL: "/uploads/b.png", Order: 1, IsActive: false},
		{Title: "c", ImageURL: "/uploads/c.png", Order: 2, IsActive: true},
	}
	for i := range banners {
		if err := repo.Create(&banners[i]); err != nil {
			t.Fatalf("failed to seed banner: %v", err)
		}
	}
	return banners
}

func TestGORMBannerRepository_GetActive(t *testing.T) {
	repo := setupBannerRepo(t)
	seedBanners(t, repo)

	active, err := repo.GetActive()
	assert.NoError(t, err)
	assert.Len(t, active, 2)
	assert.Equal(t, "a", active[0].Title)
	assert.Equal(t, "c", active[1].Title)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGORMBannerRepository_Reorder(t *testing.T) {
	repo := setupBannerRepo(t)
	banners := seedBanners(t, repo)

	err := repo.Reorder([]repositories.BannerOrder{
		{ID: banners[0].ID, Order: 2},
		{ID: banners[1].ID, Order: 0},
		{ID: banners[2].ID, Order: 1},
	})
	assert.NoError(t, err)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Equal(t, "b", all[0].Title)
	assert.Equal(t, "c", all[1].Title)
	assert.Equal(t, "a", all[2].Title)
}

// One unknown id must roll back the entire batch inside the store
// transaction; no row may keep a half-applied rank.
func TestGORMBannerRepository_Reorder_RollsBackOnUnknownID(t *testing.T) {
	repo := setupBannerRepo(t)
	banners := seedBanners(t, repo)

	err := repo.Reorder([]repositories.BannerOrder{
		{ID: banners[0].ID, Order: 2},
		{ID: banners[1].ID, Order: 1},
		{ID: 999, Order: 0},
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	for i, title := range []string{"a", "b", "c"} {
		assert.Equal(t, title, all[i].Title)
		assert.Equal(t, i, all[i].Order)
	}
}

func TestGORMBannerRepository_DeleteNotFound(t *testing.T) {
	repo := setupBannerRepo(t)
	seedBanners(t, repo)

	assert.ErrorIs(t, repo.Delete(999), repositories.ErrNotFound)
}
