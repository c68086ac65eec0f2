package migration

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockMigrator — мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Version() (uint, bool, error) {
	args := m.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func engineFor(m Migrator) MigrationEngine {
	return func(string) (Migrator, error) {
		return m, nil
	}
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Version").Return(uint(3), false, nil)
	mockM.On("Close").Return(nil, nil)

	version, err := NewMigration("test.db", engineFor(mockM), slog.Default()).Up()

	assert.NoError(t, err)
	assert.Equal(t, uint(3), version)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)
	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Version").Return(uint(3), false, nil)
	mockM.On("Close").Return(nil, nil)

	_, err := NewMigration("test.db", engineFor(mockM), slog.Default()).Up()

	assert.NoError(t, err)
}

func TestMigration_Up_Failure(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(errors.New("syntax error"))
	mockM.On("Close").Return(nil, errors.New("database is locked"))

	_, err := NewMigration("test.db", engineFor(mockM), slog.Default()).Up()

	require.Error(t, err)
	assert.ErrorContains(t, err, "syntax error")
	assert.ErrorContains(t, err, "database is locked")
}

func TestMigration_Up_Dirty(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Version").Return(uint(2), true, nil)
	mockM.On("Close").Return(nil, nil)

	_, err := NewMigration("test.db", engineFor(mockM), slog.Default()).Up()

	assert.ErrorContains(t, err, "dirty")
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	_, err := NewMigration("test.db", engine, slog.Default()).Up()

	assert.EqualError(t, err, "engine crash")
}

func TestMigration_Up_EmbeddedSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chars.db")
	mg := NewMigration(path, nil, slog.Default())

	version, err := mg.Up()
	require.NoError(t, err)
	assert.Equal(t, uint(3), version)

	// Повторный запуск ничего не меняет
	version, err = mg.Up()
	require.NoError(t, err)
	assert.Equal(t, uint(3), version)
}
