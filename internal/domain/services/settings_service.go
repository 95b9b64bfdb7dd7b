package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
)

// PlaceholderGroupLink is shown to registrants before an admin has set the
// real invitation link.
const PlaceholderGroupLink = "#"

// InterfaceSettingsService manages the singleton settings row.
type InterfaceSettingsService interface {
	Get() (*models.Settings, error)
	GroupLink() string
	UpdateGroupLink(link string) (*models.Settings, error)
}

// SettingsService provides the WhatsApp invitation link storage.
type SettingsService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSettingsService creates a new settings service.
func NewSettingsService(db *gorm.DB, cfg *config.Config) InterfaceSettingsService {
	return &SettingsService{
		DB:     db,
		Config: cfg,
	}
}

// Get returns the settings row, or nil when none exists yet.
func (s *SettingsService) Get() (*models.Settings, error) {
	var settings models.Settings
	if err := s.DB.First(&settings, models.SettingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// GroupLink returns the current invitation link, or the placeholder when it
// was never set. Lookup failures also fall back to the placeholder: the
// registrant-facing success page must not break on a settings read.
func (s *SettingsService) GroupLink() string {
	settings, err := s.Get()
	if err != nil || settings == nil || settings.WhatsappGroupLink == "" {
		return PlaceholderGroupLink
	}
	return settings.WhatsappGroupLink
}

// UpdateGroupLink upserts the singleton row in one transaction: create it on
// the fixed key when absent, then set the link. The fixed primary key keeps
// concurrent first-time initialization from producing two rows; concurrent
// updates are last-write-wins.
func (s *SettingsService) UpdateGroupLink(link string) (*models.Settings, error) {
	settings := models.Settings{ID: models.SettingsRowID}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrCreate(&settings, models.Settings{ID: models.SettingsRowID}).Error; err != nil {
			return err
		}
		return tx.Model(&settings).Update("whatsapp_group_link", link).Error
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
