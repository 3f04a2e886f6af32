package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func withFlags(t *testing.T, store, ranking, cfg string) {
	t.Helper()
	oldStore, oldRanking, oldConfig := flagStore, flagRanking, flagConfig
	flagStore, flagRanking, flagConfig = store, ranking, cfg
	t.Cleanup(func() {
		flagStore, flagRanking, flagConfig = oldStore, oldRanking, oldConfig
	})
}

func TestRunRanking_ReturnsStoreError(t *testing.T) {
	withFlags(t, "xml", "", "")

	err := runRanking(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown ranking store") {
		t.Fatalf("Expected an unknown store error, got %v", err)
	}
}

func TestRunRanking_SQLiteEmpty(t *testing.T) {
	withFlags(t, "sqlite", filepath.Join(t.TempDir(), "ranking.db"), "")

	if err := runRanking(nil, nil); err != nil {
		t.Fatalf("runRanking returned error: %v", err)
	}
}

func TestConfigSet_ReturnsError(t *testing.T) {
	withFlags(t, "text", "", filepath.Join(t.TempDir(), "config"))

	if err := configSetCmd.RunE(configSetCmd, []string{"colour", "red"}); err == nil {
		t.Error("Expected an error for an unknown key")
	}
	if err := configSetCmd.RunE(configSetCmd, []string{"rows", "4"}); err != nil {
		t.Fatalf("config set returned error: %v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if cfg.Rows != 4 {
		t.Errorf("Expected rows 4 after config set, got %d", cfg.Rows)
	}
}
