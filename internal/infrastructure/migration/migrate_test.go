package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nceerrors/migrations"
)

// MockMigrator — мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)

	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotURL string
	engine := func(src source.Driver, db string) (Migrator, error) {
		gotURL = db
		return mockM, nil
	}

	mg := NewMigration(migrations.Postgres, "postgres://localhost/nce", engine)
	err := mg.Up()

	assert.NoError(t, err)
	assert.Equal(t, "postgres://localhost/nce", gotURL)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(src source.Driver, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(migrations.SQLite, "", engine).Up()

	assert.NoError(t, err)
}

func TestMigration_Up_EngineError(t *testing.T) {
	engine := func(src source.Driver, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(migrations.Postgres, "", engine).Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_Up_CloseErrorIsReported(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, errors.New("db close failed"))

	engine := func(src source.Driver, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(migrations.Postgres, "", engine).Up()

	assert.EqualError(t, err, "db close failed")
}

func TestMigration_Up_UnknownDir(t *testing.T) {
	err := NewMigration("mysql", "", nil).Up()
	assert.Error(t, err)
}
