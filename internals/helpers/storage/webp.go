package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// batas ukuran uploader di controller (tetap dipakai sebagai guard ringan)
const MaxUploadSize = int64(5 * 1024 * 1024)

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // kualitas lossy
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("BUKTI_WEBP_MAX_W", 1280),
		MaxH:    envInt("BUKTI_WEBP_MAX_H", 1280),
		Quality: envFloat("BUKTI_WEBP_QUALITY", 80),
	}
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}

// ConvertToWebP decode gambar (jpeg/png), resize keep-aspect bila melebihi
// batas, lalu encode ke WebP lossy.
func ConvertToWebP(fileHeader *multipart.FileHeader, opts WebPOptions) (*bytes.Buffer, error) {
	if fileHeader.Size > MaxUploadSize {
		return nil, fmt.Errorf("ukuran file melebihi %dMB", MaxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("file bukan gambar yang didukung (jpeg/png): %w", err)
	}

	b := img.Bounds()
	if b.Dx() > opts.MaxW || b.Dy() > opts.MaxH {
		img = imaging.Fit(img, opts.MaxW, opts.MaxH, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return out, nil
}
