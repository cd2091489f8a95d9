package database_test

import (
	"fmt"
	"testing"

	"tokoadmin/internal/database"
	"tokoadmin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open("oracle", "", "silent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrate_EnforcesForeignKeys(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.Open("sqlite", dsn, "silent")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	orphan := models.Billboard{ID: uuid.New().String(), StoreID: "missing-store", Label: "Orphan", ImageURL: "http://x/y.png"}
	err = db.Create(&orphan).Error
	assert.Error(t, err, "billboard without a store must violate the foreign key")
}
