package store_test

import (
	"testing"
	"time"

	"portfolio-api/database"
	"portfolio-api/internal/domain/inbox"
	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/domain/site"
	"portfolio-api/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return store.New(db)
}

func newArtwork(title string, featured bool) *portfolio.Artwork {
	return &portfolio.Artwork{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "a description",
		Category:    "prints",
		Tags:        []string{"abstract", "blue"},
		ImageURL:    "/uploads/x.jpg",
		Featured:    featured,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestArtworkCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	a := newArtwork("Sunset", false)
	require.NoError(t, s.CreateArtwork(a))

	got, err := s.GetArtwork(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "Sunset", got.Title)
	assert.Equal(t, []string{"abstract", "blue"}, got.Tags)
	assert.NotZero(t, got.RowID)
}

func TestArtworkGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetArtwork(uuid.NewString())
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestArtworkListFilterAndLimit(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateArtwork(newArtwork("one", false)))
	require.NoError(t, s.CreateArtwork(newArtwork("two", true)))
	require.NoError(t, s.CreateArtwork(newArtwork("three", true)))

	all, err := s.ListArtworks(false, 50)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	featured, err := s.ListArtworks(true, 50)
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	limited, err := s.ListArtworks(false, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestArtworkSaveKeepsIdentifier(t *testing.T) {
	s := newTestStore(t)

	a := newArtwork("before", false)
	require.NoError(t, s.CreateArtwork(a))

	a.Title = "after"
	a.Featured = true
	require.NoError(t, s.SaveArtwork(a))

	got, err := s.GetArtwork(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.True(t, got.Featured)
	assert.Equal(t, a.ID, got.ID)
}

func TestArtworkDelete(t *testing.T) {
	s := newTestStore(t)

	a := newArtwork("doomed", false)
	require.NoError(t, s.CreateArtwork(a))

	deleted, err := s.DeleteArtwork(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = s.GetArtwork(a.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	deleted, err = s.DeleteArtwork(a.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestContactsOrderedNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, s.CreateContact(&inbox.ContactMessage{
			ID:          uuid.NewString(),
			Name:        name,
			Email:       name + "@example.com",
			Message:     "hello",
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	contacts, err := s.ListContacts()
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "third", contacts[0].Name)
	assert.Equal(t, "first", contacts[2].Name)
}

func TestNewsletterFindByEmail(t *testing.T) {
	s := newTestStore(t)

	missing, err := s.FindSignupByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.CreateSignup(&inbox.NewsletterSignup{
		ID:           uuid.NewString(),
		Email:        "fan@example.com",
		SubscribedAt: time.Now().UTC(),
	}))

	found, err := s.FindSignupByEmail("fan@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "fan@example.com", found.Email)
}

func TestNewsletterOrderedNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, email := range []string{"a@example.com", "b@example.com"} {
		require.NoError(t, s.CreateSignup(&inbox.NewsletterSignup{
			ID:           uuid.NewString(),
			Email:        email,
			SubscribedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	signups, err := s.ListSignups()
	require.NoError(t, err)
	require.Len(t, signups, 2)
	assert.Equal(t, "b@example.com", signups[0].Email)
}

func TestSettingsUpsert(t *testing.T) {
	s := newTestStore(t)

	none, err := s.GetSettings()
	require.NoError(t, err)
	assert.Nil(t, none)

	defaults := site.DefaultSettings()
	require.NoError(t, s.SaveSettings(&defaults))

	first, err := s.GetSettings()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "Digital Artist Portfolio", first.SiteTitle)

	replaced := site.DefaultSettings()
	replaced.SiteTitle = "New Title"
	replaced.ArtistName = "Jane Doe"
	require.NoError(t, s.SaveSettings(&replaced))

	second, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "New Title", second.SiteTitle)
	assert.Equal(t, "Jane Doe", second.ArtistName)
	assert.Equal(t, site.SettingsKey, second.Key)
}
