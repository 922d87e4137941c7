package service

import (
	"errors"
	"fmt"

	"society-manager/internal/models"
	"society-manager/internal/store"
	"society-manager/internal/util"

	"gorm.io/gorm"
)

// AdminUsername is the fixed identity of this single-tenant deployment.
const AdminUsername = "admin"

// defaultAdminPassword is seeded on first run; operators are expected to
// change it via the change-password flow.
const defaultAdminPassword = "admin123"

// Credential manages the single admin credential.
type Credential struct {
	store *store.Store
}

func NewCredential(s *store.Store) *Credential {
	return &Credential{store: s}
}

// EnsureDefaultAdmin seeds the default admin credential if none exists. It
// runs every startup and is a no-op once a credential is stored.
func (c *Credential) EnsureDefaultAdmin() error {
	db, err := c.store.DB()
	if err != nil {
		return err
	}

	var admin models.Admin
	err = db.First(&admin, "username = ?", AdminUsername).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load credential: %w", err)
	}

	admin = models.Admin{
		Username:       AdminUsername,
		PasswordDigest: util.HashPassword(defaultAdminPassword),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed default admin: %w", store.Translate(err))
	}
	return nil
}

// Verify reports whether the username/password pair matches the stored admin
// credential. Wrong user, missing credential and wrong password all return
// false without distinction.
func (c *Credential) Verify(username, password string) (bool, error) {
	if username != AdminUsername {
		return false, nil
	}

	db, err := c.store.DB()
	if err != nil {
		return false, err
	}

	var admin models.Admin
	err = db.First(&admin, "username = ?", AdminUsername).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load credential: %w", err)
	}

	return util.CheckPassword(password, admin.PasswordDigest), nil
}

// ChangePassword overwrites the stored digest after proving the current
// password. Fails with ErrWrongCurrentPassword on any mismatch.
func (c *Credential) ChangePassword(currentPassword, newPassword string) error {
	db, err := c.store.DB()
	if err != nil {
		return err
	}

	var admin models.Admin
	err = db.First(&admin, "username = ?", AdminUsername).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrWrongCurrentPassword
	}
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	if !util.CheckPassword(currentPassword, admin.PasswordDigest) {
		return ErrWrongCurrentPassword
	}

	if err := db.Model(&admin).
		Update("password_digest", util.HashPassword(newPassword)).Error; err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	return nil
}
