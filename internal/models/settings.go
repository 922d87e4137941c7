package models

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// SettingsID is the fixed key of the singleton settings row.
const SettingsID uint = 1

// Signature types.
const (
	SignatureTyped    = "typed"
	SignatureDrawn    = "drawn"
	SignatureUploaded = "uploaded"
)

// Settings is the singleton society configuration record. All three signature
// payloads are persisted simultaneously; only the one matching SignatureType
// is active. Images are stored base64-encoded.
type Settings struct {
	ID              uint   `gorm:"primaryKey"`
	AdminName       string `gorm:"size:128;not null"`
	BlockNumber     string `gorm:"size:64;not null"`
	SignatureType   string `gorm:"size:16;not null"` // typed / drawn / uploaded
	SignatureText   string `gorm:"size:128"`
	SignatureDrawn  string `gorm:"type:text"`
	SignatureUpload string `gorm:"type:text"`
	UpdatedAt       time.Time
}

// Signature is the tagged view of the active signature payload.
type Signature struct {
	Type  string
	Text  string // set when Type == typed
	Image []byte // decoded image bytes when Type == drawn / uploaded
}

// Signature returns the payload selected by SignatureType as a tagged value.
// Image payloads are base64-decoded; a data-URL prefix, if present, is
// stripped first.
func (s *Settings) Signature() (Signature, error) {
	switch s.SignatureType {
	case SignatureTyped:
		return Signature{Type: SignatureTyped, Text: s.SignatureText}, nil
	case SignatureDrawn:
		img, err := decodeImage(s.SignatureDrawn)
		if err != nil {
			return Signature{}, fmt.Errorf("drawn signature: %w", err)
		}
		return Signature{Type: SignatureDrawn, Image: img}, nil
	case SignatureUploaded:
		img, err := decodeImage(s.SignatureUpload)
		if err != nil {
			return Signature{}, fmt.Errorf("uploaded signature: %w", err)
		}
		return Signature{Type: SignatureUploaded, Image: img}, nil
	default:
		return Signature{}, fmt.Errorf("unknown signature type %q", s.SignatureType)
	}
}

func decodeImage(payload string) ([]byte, error) {
	if payload == "" {
		return nil, nil
	}
	// canvas exports arrive as data URLs: "data:image/png;base64,...."
	if strings.HasPrefix(payload, "data:") {
		if i := strings.IndexByte(payload, ','); i >= 0 {
			payload = payload[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(payload)
}
