package service

import (
	"path/filepath"
	"testing"
	"time"

	"society-manager/internal/config"
	"society-manager/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err := st.Open(); err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
