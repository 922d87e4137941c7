package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"society-manager/internal/models"
	"society-manager/internal/store"
	"society-manager/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BackupHandler writes and restores encrypted snapshots of all collections.
type BackupHandler struct {
	Store      *store.Store
	EncryptKey string
	BackupDir  string
}

func NewBackupHandler(st *store.Store, encryptKey, backupDir string) *BackupHandler {
	return &BackupHandler{
		Store:      st,
		EncryptKey: encryptKey,
		BackupDir:  backupDir,
	}
}

// backupData is the snapshot file content: every collection in full.
type backupData struct {
	Created  time.Time         `json:"created"`
	Receipts []models.Receipt  `json:"receipts"`
	Expenses []models.Expense  `json:"expenses"`
	Settings []models.Settings `json:"settings"`
	Admins   []models.Admin    `json:"admins"`
}

// CreateBackup writes an encrypted snapshot file and records it.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	db, err := h.Store.DB()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "storage unavailable")
		return
	}

	data := backupData{Created: time.Now()}
	if err := db.Order("id ASC").Find(&data.Receipts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query receipts failed")
		return
	}
	if err := db.Order("id ASC").Find(&data.Expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query expenses failed")
		return
	}
	if err := db.Find(&data.Settings).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query settings failed")
		return
	}
	if err := db.Find(&data.Admins).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query credentials failed")
		return
	}

	raw, err := json.MarshalIndent(&data, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "serialize failed")
		return
	}

	enc, err := util.EncryptAES(h.EncryptKey, raw)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "encrypt failed")
		return
	}

	if err := os.MkdirAll(h.BackupDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create backup dir failed")
		return
	}

	fileName := fmt.Sprintf("backup-%s.bin", uuid.New().String())
	filePath := filepath.Join(h.BackupDir, fileName)

	if err := os.WriteFile(filePath, enc, 0o600); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write backup file failed")
		return
	}

	info, _ := os.Stat(filePath)

	backup := models.Backup{
		FileName: fileName,
		FilePath: filePath,
		Size:     info.Size(),
	}
	if err := db.Create(&backup).Error; err != nil {
		_ = os.Remove(filePath)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save backup record failed")
		return
	}

	util.Success(c, util.Response{
		"backup": gin.H{
			"id":         backup.ID,
			"file_name":  backup.FileName,
			"size":       backup.Size,
			"created_at": backup.CreatedAt,
		},
	})
}

// ListBackups lists recorded snapshots, newest first.
func (h *BackupHandler) ListBackups(c *gin.Context) {
	db, err := h.Store.DB()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "storage unavailable")
		return
	}

	var list []models.Backup
	if err := db.Order("created_at DESC").Find(&list).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query backups failed")
		return
	}

	items := make([]gin.H, 0, len(list))
	for _, b := range list {
		items = append(items, gin.H{
			"id":         b.ID,
			"file_name":  b.FileName,
			"size":       b.Size,
			"created_at": b.CreatedAt,
		})
	}
	util.Success(c, util.Response{"backups": items})
}

func (h *BackupHandler) loadBackup(c *gin.Context) (*models.Backup, *gorm.DB, bool) {
	db, err := h.Store.DB()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "storage unavailable")
		return nil, nil, false
	}

	var backup models.Backup
	err = db.First(&backup, c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup not found")
		return nil, nil, false
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query backup failed")
		return nil, nil, false
	}
	return &backup, db, true
}

// DownloadBackup streams the stored snapshot file.
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	backup, _, ok := h.loadBackup(c)
	if !ok {
		return
	}
	c.FileAttachment(backup.FilePath, backup.FileName)
}

// DeleteBackup removes the record and the snapshot file.
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	backup, db, ok := h.loadBackup(c)
	if !ok {
		return
	}

	if err := db.Delete(backup).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete backup failed")
		return
	}
	_ = os.Remove(backup.FilePath)

	util.Success(c, util.Response{"message": "backup deleted"})
}

// RestoreBackup replaces all collection contents with the snapshot.
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	backup, db, ok := h.loadBackup(c)
	if !ok {
		return
	}

	enc, err := os.ReadFile(backup.FilePath)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "read backup file failed")
		return
	}
	raw, err := util.DecryptAES(h.EncryptKey, enc)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "decrypt backup failed")
		return
	}
	var data backupData
	if err := json.Unmarshal(raw, &data); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "parse backup failed")
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{"receipts", "expenses", "settings", "admins"} {
			if err := tx.Exec("DELETE FROM " + stmt).Error; err != nil {
				return err
			}
		}
		if len(data.Receipts) > 0 {
			if err := tx.Create(&data.Receipts).Error; err != nil {
				return err
			}
		}
		if len(data.Expenses) > 0 {
			if err := tx.Create(&data.Expenses).Error; err != nil {
				return err
			}
		}
		if len(data.Settings) > 0 {
			if err := tx.Create(&data.Settings).Error; err != nil {
				return err
			}
		}
		if len(data.Admins) > 0 {
			if err := tx.Create(&data.Admins).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "restore failed")
		return
	}

	util.Success(c, util.Response{"message": "backup restored"})
}
