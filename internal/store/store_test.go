package store

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"society-manager/internal/config"
	"society-manager/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
}

func TestOpenCreatesCollections(t *testing.T) {
	st := newTestStore(t)
	if err := st.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}

	db, err := st.DB()
	if err != nil {
		t.Fatalf("db: %v", err)
	}

	for _, m := range []interface{}{
		&models.Receipt{}, &models.Expense{}, &models.Settings{},
		&models.Admin{}, &models.Session{}, &models.Backup{},
	} {
		if !db.Migrator().HasTable(m) {
			t.Errorf("missing collection for %T", m)
		}
	}

	var last SchemaMigration
	if err := db.Order("version DESC").First(&last).Error; err != nil {
		t.Fatalf("schema version marker missing: %v", err)
	}
	if last.Version != 1 {
		t.Errorf("schema version = %d, want 1", last.Version)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	st := newTestStore(t)

	// concurrent early callers must share one initialization
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = st.Open()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("open #%d: %v", i, err)
		}
	}

	db1, _ := st.DB()
	if err := st.Open(); err != nil {
		t.Fatalf("re-open: %v", err)
	}
	db2, _ := st.DB()
	if db1 != db2 {
		t.Error("re-open must return the same connection")
	}
}

func TestDBBeforeOpen(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.DB(); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("DB before Open: want ErrStorageUnavailable, got %v", err)
	}
}

func TestTranslateUniqueViolation(t *testing.T) {
	st := newTestStore(t)
	if err := st.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	db, _ := st.DB()

	r1 := models.Receipt{ReceiptNo: "NSM-0042", Name: "A", BlockNumber: "1", PaymentMethod: models.PaymentCash}
	if err := db.Create(&r1).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}

	r2 := models.Receipt{ReceiptNo: "NSM-0042", Name: "B", BlockNumber: "2", PaymentMethod: models.PaymentCash}
	err := db.Create(&r2).Error
	if err == nil {
		t.Fatal("duplicate receipt number accepted")
	}
	if !errors.Is(Translate(err), ErrConstraintViolation) {
		t.Errorf("want ErrConstraintViolation, got %v", err)
	}
}

func TestTranslatepassesThrough(t *testing.T) {
	if Translate(nil) != nil {
		t.Error("nil must stay nil")
	}
	plain := errors.New("boom")
	if !errors.Is(Translate(plain), plain) {
		t.Error("unrelated errors must pass through")
	}
}
