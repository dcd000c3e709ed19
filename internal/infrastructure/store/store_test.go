package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sangkips/receipt-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "receipts.db"),
		Seed:       true,
	}}

	s, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.DriverSQLite, s.Driver)

	customer, err := s.Customers.GetByID(context.Background(), "c-2")
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "Juan Pérez", customer.Name)

	products, err := s.Products.GetByIDs(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestOpen_SQLiteWithoutSeed(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "receipts.db"),
	}}

	s, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	customer, err := s.Customers.GetByID(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.Nil(t, customer)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "mysql"}}

	s, err := Open(context.Background(), cfg, zap.NewNop())

	assert.Nil(t, s)
	assert.EqualError(t, err, `store: unsupported database driver "mysql"`)
}

func TestStore_CloseWithoutConnection(t *testing.T) {
	assert.NoError(t, (&Store{}).Close())
}
