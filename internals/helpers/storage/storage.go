// internals/helpers/storage/storage.go
package storage

import (
	"bytes"
	"fmt"
	"log"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/google/uuid"

	"ziswaf_backend/internals/configs"
)

// Storage menyimpan file bukti transfer dan mengembalikan URL publiknya.
// Satu interface eksplisit, satu implementasi konkret per backend,
// dipilih sekali saat startup lewat STORAGE_DRIVER.
type Storage interface {
	SaveBukti(filename string, content *bytes.Buffer) (string, error)
}

var active Storage

// Init memilih driver storage dari ENV. Panggil sekali setelah LoadEnv.
func Init() {
	switch configs.StorageDriver {
	case "local":
		active = NewLocalStorage(configs.BuktiBaseDir, configs.BuktiBaseURL)
	default:
		log.Printf("⚠️ STORAGE_DRIVER %q tidak dikenal, fallback ke local", configs.StorageDriver)
		active = NewLocalStorage(configs.BuktiBaseDir, configs.BuktiBaseURL)
	}
}

// Active mengembalikan storage terpilih (lazy init untuk test/dev).
func Active() Storage {
	if active == nil {
		Init()
	}
	return active
}

// SaveBuktiImage: konversi gambar bukti ke WebP terbatas ukuran, lalu simpan.
func SaveBuktiImage(fileHeader *multipart.FileHeader) (string, error) {
	buf, err := ConvertToWebP(fileHeader, defaultWebPOptionsFromEnv())
	if err != nil {
		return "", err
	}
	filename := GenerateUniqueFilename("bukti", fileHeader.Filename) + ".webp"
	return Active().SaveBukti(filename, buf)
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}
