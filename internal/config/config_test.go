package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetRegistryPathRejectsMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-registry")

	err := Set(KeyRegistryPath, missing)
	if err == nil {
		t.Fatal("expected error for a nonexistent registry path")
	}
	if !strings.Contains(err.Error(), KeyRegistryPath) {
		t.Errorf("error should name the key: %v", err)
	}
}

func TestSetRegistryPathRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "registry.yaml")
	if err := os.WriteFile(file, []byte("name: x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Set(KeyRegistryPath, file); err == nil {
		t.Fatal("expected error for a file path")
	}
}
