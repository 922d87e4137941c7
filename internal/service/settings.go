package service

import (
	"errors"
	"fmt"

	"society-manager/internal/models"
	"society-manager/internal/store"

	"gorm.io/gorm"
)

// Defaults written when the settings singleton is first accessed.
const (
	defaultAdminName     = "Admin"
	defaultBlockNumber   = "Society Office"
	defaultSignatureText = "Authorized Signatory"
)

// SettingsService manages the singleton settings record.
type SettingsService struct {
	store *store.Store
}

func NewSettings(s *store.Store) *SettingsService {
	return &SettingsService{store: s}
}

// SettingsUpdate is a partial update. Nil signature payloads keep their
// stored values; the other fields are always written.
type SettingsUpdate struct {
	AdminName       string
	BlockNumber     string
	SignatureType   string
	SignatureText   *string
	SignatureDrawn  *string
	SignatureUpload *string
}

// Load returns the settings singleton, creating the hard-coded default on
// first access.
func (s *SettingsService) Load() (*models.Settings, error) {
	db, err := s.store.DB()
	if err != nil {
		return nil, err
	}

	var settings models.Settings
	err = db.First(&settings, models.SettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	settings = models.Settings{
		ID:            models.SettingsID,
		AdminName:     defaultAdminName,
		BlockNumber:   defaultBlockNumber,
		SignatureType: models.SignatureTyped,
		SignatureText: defaultSignatureText,
	}
	if err := db.Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("create default settings: %w", store.Translate(err))
	}
	return &settings, nil
}

// Save writes the singleton under its fixed key. Signature payloads omitted
// from the update retain their pre-update values.
func (s *SettingsService) Save(update SettingsUpdate) (*models.Settings, error) {
	if update.SignatureType != models.SignatureTyped &&
		update.SignatureType != models.SignatureDrawn &&
		update.SignatureType != models.SignatureUploaded {
		return nil, fmt.Errorf("%w: unknown signature type %q", ErrInvalidInput, update.SignatureType)
	}

	settings, err := s.Load()
	if err != nil {
		return nil, err
	}

	db, err := s.store.DB()
	if err != nil {
		return nil, err
	}

	settings.AdminName = update.AdminName
	settings.BlockNumber = update.BlockNumber
	settings.SignatureType = update.SignatureType
	if update.SignatureText != nil {
		settings.SignatureText = *update.SignatureText
	}
	if update.SignatureDrawn != nil {
		settings.SignatureDrawn = *update.SignatureDrawn
	}
	if update.SignatureUpload != nil {
		settings.SignatureUpload = *update.SignatureUpload
	}

	if err := db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
