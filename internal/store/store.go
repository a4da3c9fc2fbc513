// Package store gives handlers access to the four persistent collections:
// artworks, contact messages, newsletter signups and the site settings
// singleton. Each operation touches a single collection; there are no
// cross-collection transactions.
package store

import (
	"portfolio-api/internal/domain/inbox"
	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/domain/site"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ------------------------------
// Artworks
// ------------------------------

func (s *Store) CreateArtwork(a *portfolio.Artwork) error {
	return s.db.Create(a).Error
}

// GetArtwork looks up an artwork by its public identifier.
// Returns gorm.ErrRecordNotFound on a miss.
func (s *Store) GetArtwork(id string) (*portfolio.Artwork, error) {
	var a portfolio.Artwork
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListArtworks(featuredOnly bool, limit int) ([]portfolio.Artwork, error) {
	q := s.db.Model(&portfolio.Artwork{})
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	artworks := make([]portfolio.Artwork, 0)
	if err := q.Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

// SaveArtwork writes back a previously loaded record. Callers load with
// GetArtwork, apply field changes and save; the public identifier is never
// touched, so merge updates cannot move a record.
func (s *Store) SaveArtwork(a *portfolio.Artwork) error {
	return s.db.Save(a).Error
}

// DeleteArtwork removes an artwork by public identifier and reports how many
// rows matched (zero means not found).
func (s *Store) DeleteArtwork(id string) (int64, error) {
	res := s.db.Delete(&portfolio.Artwork{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// ------------------------------
// Contact messages
// ------------------------------

func (s *Store) CreateContact(m *inbox.ContactMessage) error {
	return s.db.Create(m).Error
}

// ListContacts returns every submission, most recent first.
func (s *Store) ListContacts() ([]inbox.ContactMessage, error) {
	contacts := make([]inbox.ContactMessage, 0)
	err := s.db.Order("submitted_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// ------------------------------
// Newsletter signups
// ------------------------------

// FindSignupByEmail returns (nil, nil) when no subscriber has the address.
func (s *Store) FindSignupByEmail(email string) (*inbox.NewsletterSignup, error) {
	var su inbox.NewsletterSignup
	err := s.db.First(&su, "email = ?", email).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &su, nil
}

func (s *Store) CreateSignup(su *inbox.NewsletterSignup) error {
	return s.db.Create(su).Error
}

// ListSignups returns every subscriber, most recent first.
func (s *Store) ListSignups() ([]inbox.NewsletterSignup, error) {
	signups := make([]inbox.NewsletterSignup, 0)
	err := s.db.Order("subscribed_at DESC").Find(&signups).Error
	if err != nil {
		return nil, err
	}
	return signups, nil
}

// ------------------------------
// Site settings (singleton)
// ------------------------------

// GetSettings returns (nil, nil) while no settings record exists yet.
func (s *Store) GetSettings() (*site.Settings, error) {
	var st site.Settings
	err := s.db.First(&st, "key = ?", site.SettingsKey).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// SaveSettings upserts the singleton at its fixed key, replacing every field.
func (s *Store) SaveSettings(st *site.Settings) error {
	st.Key = site.SettingsKey
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(st).Error
}
