package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justicelink/justicelink/internal/storage"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"brief.pdf", "brief.pdf"},
		{"annual report.pdf", "annual_report.pdf"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"exhibit#7 (final).PDF", "exhibit7_final.PDF"},
		{"série-exposé.txt", "srie-expos.txt"},
		{"....", "default"},
		{"", "default"},
		{"###", "default"},
	}
	for _, tc := range cases {
		if got := storage.SanitizeName(tc.in); got != tc.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStorageName(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	name := fs.StorageName("case-1", "user-1", "my brief.pdf")
	if !strings.HasSuffix(name, "_case-1_user-1_my_brief.pdf") {
		t.Errorf("Unexpected storage name %q", name)
	}
	if strings.ContainsAny(name, "/\\") {
		t.Errorf("Storage name contains path separators: %q", name)
	}
}

func TestSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	fs, err := storage.NewFileStore(root)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	path, err := fs.Save(strings.NewReader("contents"), "artifact.txt")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("Artifact written outside root: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if string(data) != "contents" {
		t.Errorf("Artifact content mismatch: %q", data)
	}
	if !fs.Exists(path) {
		t.Error("Exists reported false for a written artifact")
	}

	// Names collide only when written in the same second for the same
	// case and uploader; the store refuses to overwrite.
	if _, err := fs.Save(strings.NewReader("other"), "artifact.txt"); err == nil {
		t.Error("Expected error when reusing an artifact name")
	}

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if fs.Exists(path) {
		t.Error("Exists reported true after removal")
	}
	if err := fs.Remove(path); err != nil {
		t.Errorf("Removing a missing artifact should not fail: %v", err)
	}
}

func TestNewFileStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := storage.NewFileStore(root); err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected root directory to exist: %v", err)
	}
}
