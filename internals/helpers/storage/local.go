package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage menulis bukti ke disk lokal (dilayani sebagai static files).
type LocalStorage struct {
	BaseDir string
	BaseURL string
}

func NewLocalStorage(baseDir, baseURL string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStorage) SaveBukti(filename string, content *bytes.Buffer) (string, error) {
	fullPath := filepath.Join(s.BaseDir, filepath.FromSlash(filename))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder bukti: %w", err)
	}
	if err := os.WriteFile(fullPath, content.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan bukti: %w", err)
	}
	return s.BaseURL + "/" + filename, nil
}
