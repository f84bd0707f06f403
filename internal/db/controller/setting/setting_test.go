package setting

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name          string
		nilDB         bool
		settingName   string
		seed          *models.Setting
		expectedError error
		expectedValue []byte
	}{
		{
			name:          "nil database",
			nilDB:         true,
			settingName:   "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			settingName:   "",
			expectedError: ErrSettingNameEmpty,
		},
		{
			name:          "setting not found",
			settingName:   "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:          "successful get",
			settingName:   "site_name",
			seed:          &models.Setting{Name: "site_name", Value: []byte("Gofolio")},
			expectedValue: []byte("Gofolio"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if !tc.nilDB {
				db = setupTestDB(t)
			}

			if tc.seed != nil {
				require.NoError(t, db.Create(tc.seed).Error)
			}

			got, err := Get(db, tc.settingName)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedValue, got.Value)
		})
	}
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	// Creates when missing
	created, err := Set(db, "resume", []byte("v1"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// Updates in place when present
	updated, err := Set(db, "resume", []byte("v2"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := Get(db, "resume")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got.Value)
}

func TestSetValidation(t *testing.T) {
	_, err := Set(nil, "x", nil)
	assert.ErrorIs(t, err, ErrDBNil)

	db := setupTestDB(t)
	_, err = Set(db, "", nil)
	assert.ErrorIs(t, err, ErrSettingNameEmpty)
}

func TestDeleteByName(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "resume", []byte("v1"))
	require.NoError(t, err)

	require.NoError(t, DeleteByName(db, "resume"))

	_, err = Get(db, "resume")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	// Deleting again reports not found
	assert.ErrorIs(t, DeleteByName(db, "resume"), ErrSettingNotFound)
}
