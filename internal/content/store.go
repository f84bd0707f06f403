// Package content holds an in-process snapshot of the portfolio content.
// It replaces the original client-side reducer: the same mutations are
// exposed as typed methods, each producing a new immutable snapshot located
// by identifier equality. The database stays authoritative; pages re-fetch
// and the store is reset in full via Reload, never merged incrementally.
package content

import (
	"sync"

	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/db/models"
)

// Snapshot is one immutable view of the portfolio content plus the
// admin-session flag. Snapshots handed out by Current never change; slices
// are copied on write.
type Snapshot struct {
	Profile       models.Profile
	Skills        []models.Skill
	Projects      []models.Project
	Certificates  []models.Certificate
	Blogs         []models.BlogPost
	Authenticated bool
}

// Store serializes snapshot replacement. List mutations are O(n) scans,
// fine at the tens-of-records scale this data set has.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Current returns the current snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snap
}

// ReplaceProfile replaces the profile fields wholesale.
func (s *Store) ReplaceProfile(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Profile = p
}

// SetAuthenticated flips the admin-session flag.
func (s *Store) SetAuthenticated(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Authenticated = v
}

// UpsertSkill adds the skill, or replaces the entry with the same id.
func (s *Store) UpsertSkill(v models.Skill) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Skills = upsert(s.snap.Skills, v, func(e models.Skill) uint64 { return e.ID }, v.ID)
}

// DeleteSkill removes the skill with the given id; unknown ids are a no-op.
func (s *Store) DeleteSkill(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Skills = remove(s.snap.Skills, func(e models.Skill) uint64 { return e.ID }, id)
}

// UpsertProject adds the project, or replaces the entry with the same id.
func (s *Store) UpsertProject(v models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Projects = upsert(s.snap.Projects, v, func(e models.Project) uint64 { return e.ID }, v.ID)
}

// DeleteProject removes the project with the given id.
func (s *Store) DeleteProject(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Projects = remove(s.snap.Projects, func(e models.Project) uint64 { return e.ID }, id)
}

// UpsertCertificate adds the certificate, or replaces the entry with the same id.
func (s *Store) UpsertCertificate(v models.Certificate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Certificates = upsert(s.snap.Certificates, v, func(e models.Certificate) uint64 { return e.ID }, v.ID)
}

// DeleteCertificate removes the certificate with the given id.
func (s *Store) DeleteCertificate(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Certificates = remove(s.snap.Certificates, func(e models.Certificate) uint64 { return e.ID }, id)
}

// UpsertBlog adds the blog post, or replaces the entry with the same id.
func (s *Store) UpsertBlog(v models.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Blogs = upsert(s.snap.Blogs, v, func(e models.BlogPost) uint64 { return e.ID }, v.ID)
}

// DeleteBlog removes the blog post with the given id.
func (s *Store) DeleteBlog(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Blogs = remove(s.snap.Blogs, func(e models.BlogPost) uint64 { return e.ID }, id)
}

// Reload resets the snapshot and repopulates it in full from the database.
// The authenticated flag survives the reload; it tracks the session, not the
// content.
func (s *Store) Reload(db *gorm.DB) error {
	var next Snapshot

	var profiles []models.Profile
	if err := db.Limit(1).Find(&profiles).Error; err != nil {
		return err
	}

	if len(profiles) > 0 {
		next.Profile = profiles[0]
	}

	if err := db.Find(&next.Skills).Error; err != nil {
		return err
	}

	if err := db.Find(&next.Projects).Error; err != nil {
		return err
	}

	if err := db.Find(&next.Certificates).Error; err != nil {
		return err
	}

	if err := db.Find(&next.Blogs).Error; err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next.Authenticated = s.snap.Authenticated
	s.snap = next

	return nil
}

// upsert returns a new slice with v replacing the entry whose id matches,
// or appended when no entry matches. The input slice is never mutated.
func upsert[T any](list []T, v T, id func(T) uint64, target uint64) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)

	for i := range out {
		if id(out[i]) == target {
			out[i] = v
			return out
		}
	}

	return append(out, v)
}

// remove returns a new slice without the entry whose id matches.
func remove[T any](list []T, id func(T) uint64, target uint64) []T {
	out := make([]T, 0, len(list))

	for _, e := range list {
		if id(e) != target {
			out = append(out, e)
		}
	}

	return out
}
