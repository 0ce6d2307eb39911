package adapters

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Cart{}, &entity.CartLine{}), "failed to migrate tables")
	return db
}

func line(code string, qty int) entity.CartLine {
	return entity.CartLine{
		ProductCode: code,
		Quantity:    qty,
		ProductName: "Torta " + code,
		UnitPrice:   decimal.NewFromInt(45000),
	}
}

func TestCartGorm_AddLine_CreatesCartAndLine(t *testing.T) {
	t.Parallel()

	repo := NewCartGorm(setupTestDB(t))
	ctx := context.Background()

	cartID, err := repo.AddLine(ctx, 7, line("TC001", 2))
	require.NoError(t, err)
	assert.NotZero(t, cartID)

	cart, err := repo.FindByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, cartID, cart.ID)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "TC001", cart.Lines[0].ProductCode)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "Torta TC001", cart.Lines[0].ProductName)
	assert.True(t, decimal.NewFromInt(45000).Equal(cart.Lines[0].UnitPrice))
}

func TestCartGorm_AddLine_SameProductSumsQuantity(t *testing.T) {
	t.Parallel()

	repo := NewCartGorm(setupTestDB(t))
	ctx := context.Background()

	first, err := repo.AddLine(ctx, 7, line("TC001", 2))
	require.NoError(t, err)

	changed := line("TC001", 3)
	changed.ProductName = "Renamed"
	changed.UnitPrice = decimal.NewFromInt(1)
	second, err := repo.AddLine(ctx, 7, changed)
	require.NoError(t, err)
	assert.Equal(t, first, second, "one cart per user")

	cart, err := repo.FindByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, "Torta TC001", cart.Lines[0].ProductName, "snapshot is kept from the first add")
}

func TestCartGorm_AddLine_Concurrent(t *testing.T) {
	t.Parallel()

	repo := NewCartGorm(setupTestDB(t))
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.AddLine(ctx, 3, line("TC001", 1)); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	cart, err := repo.FindByUserID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, workers, cart.Lines[0].Quantity)
}

func TestCartGorm_FindByUserID(t *testing.T) {
	t.Parallel()

	repo := NewCartGorm(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByUserID(ctx, 1)
	assert.ErrorIs(t, err, usecase.ErrCartNotFound)

	for _, code := range []string{"C", "A", "B"} {
		_, err := repo.AddLine(ctx, 1, line(code, 1))
		require.NoError(t, err)
	}
	cart, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 3)
	assert.Equal(t, "C", cart.Lines[0].ProductCode, "insertion order")
	assert.Equal(t, "B", cart.Lines[2].ProductCode)
}

func TestCartGorm_UpdateLineQuantity(t *testing.T) {
	t.Parallel()

	repo := NewCartGorm(setupTestDB(t))
	ctx := context.Background()

	cartID, err := repo.AddLine(ctx, 1, line("TC001", 1))
	require.NoError(t, err)
	cart, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	lineID := cart.Lines[0].ID

	otherCart, err := repo.AddLine(ctx, 2, line("TC001", 1))
	require.NoError(t, err)

	tests := []struct {
		name    string
		userID  uint
		cartID  uint
		lineID  uint
		wantErr error
	}{
		{"owner updates", 1, cartID, lineID, nil},
		{"other user's cart", 2, cartID, lineID, usecase.ErrCartNotFound},
		{"line from another cart", 2, otherCart, lineID, usecase.ErrLineNotFound},
		{"unknown line", 1, cartID, 999, usecase.ErrLineNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.UpdateLineQuantity(ctx, tt.userID, tt.cartID, tt.lineID, 9)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	cart, err = repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, cart.Lines[0].Quantity)
}

func TestCartGorm_RemoveLine(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCartGorm(db)
	ctx := context.Background()

	cartID, err := repo.AddLine(ctx, 1, line("A", 1))
	require.NoError(t, err)
	_, err = repo.AddLine(ctx, 1, line("B", 1))
	require.NoError(t, err)
	cart, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)

	_, err = repo.RemoveLine(ctx, 2, cartID, cart.Lines[0].ID)
	assert.ErrorIs(t, err, usecase.ErrCartNotFound)

	deleted, err := repo.RemoveLine(ctx, 1, cartID, cart.Lines[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.RemoveLine(ctx, 1, cartID, cart.Lines[0].ID)
	assert.ErrorIs(t, err, usecase.ErrLineNotFound)

	deleted, err = repo.RemoveLine(ctx, 1, cartID, cart.Lines[1].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByUserID(ctx, 1)
	assert.ErrorIs(t, err, usecase.ErrCartNotFound)

	var lines int64
	require.NoError(t, db.Model(&entity.CartLine{}).Count(&lines).Error)
	assert.Zero(t, lines)
}

func TestCartGorm_CascadeDeletesLines(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCartGorm(db)
	ctx := context.Background()

	cartID, err := repo.AddLine(ctx, 1, line("A", 1))
	require.NoError(t, err)

	require.NoError(t, db.Delete(&entity.Cart{}, cartID).Error)

	var lines int64
	require.NoError(t, db.Model(&entity.CartLine{}).Count(&lines).Error)
	assert.Zero(t, lines)
}
