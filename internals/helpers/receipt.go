package helper

import (
	"crypto/rand"
	"fmt"
	"time"
)

// GenerateReceiptNumber membuat nomor kwitansi unik: KWT-YYYYMMDD-XXXXXX.
// Suffix acak 6 digit hex upper-case; keunikan final dijaga unique index di DB.
func GenerateReceiptNumber(now time.Time) string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("KWT-%s-%02X%02X%02X", now.Format("20060102"), buf[0], buf[1], buf[2])
}
