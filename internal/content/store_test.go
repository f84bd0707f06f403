package content

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/db/models"
)

func TestUpsertSkillAddsAndReplaces(t *testing.T) {
	s := NewStore()

	s.UpsertSkill(models.Skill{ID: 1, Name: "Go"})
	s.UpsertSkill(models.Skill{ID: 2, Name: "React"})

	snap := s.Current()
	require.Len(t, snap.Skills, 2)

	// Same id replaces in place.
	s.UpsertSkill(models.Skill{ID: 1, Name: "Golang"})

	next := s.Current()
	require.Len(t, next.Skills, 2)
	assert.Equal(t, "Golang", next.Skills[0].Name)
}

func TestSnapshotsAreImmutable(t *testing.T) {
	s := NewStore()
	s.UpsertProject(models.Project{ID: 1, Title: "Shop"})

	before := s.Current()

	s.UpsertProject(models.Project{ID: 1, Title: "Store"})
	s.UpsertProject(models.Project{ID: 2, Title: "Blog"})
	s.DeleteProject(1)

	// The earlier snapshot still shows the state at the time it was taken.
	require.Len(t, before.Projects, 1)
	assert.Equal(t, "Shop", before.Projects[0].Title)

	after := s.Current()
	require.Len(t, after.Projects, 1)
	assert.Equal(t, "Blog", after.Projects[0].Title)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	s := NewStore()
	s.UpsertCertificate(models.Certificate{ID: 7, Title: "Cert"})

	s.DeleteCertificate(99)

	assert.Len(t, s.Current().Certificates, 1)
}

func TestSetAuthenticated(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Current().Authenticated)

	s.SetAuthenticated(true)
	assert.True(t, s.Current().Authenticated)
}

func TestReloadRepopulatesInFull(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Certificate{},
		&models.BlogPost{},
	))

	require.NoError(t, db.Create(&models.Profile{FullName: "Ada"}).Error)
	require.NoError(t, db.Create(&models.Skill{Name: "Go", Category: models.CategoryBackend}).Error)
	require.NoError(t, db.Create(&models.BlogPost{Title: "Hello"}).Error)

	s := NewStore()
	s.SetAuthenticated(true)
	s.UpsertSkill(models.Skill{ID: 42, Name: "Stale"})

	require.NoError(t, s.Reload(db))

	snap := s.Current()
	assert.Equal(t, "Ada", snap.Profile.FullName)
	require.Len(t, snap.Skills, 1)
	assert.Equal(t, "Go", snap.Skills[0].Name)
	assert.Len(t, snap.Blogs, 1)
	assert.Empty(t, snap.Projects)

	// Reload replaces content but keeps the session flag.
	assert.True(t, snap.Authenticated)
}
