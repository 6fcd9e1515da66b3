package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const MaxImageSize = 5 << 20 // 5MB

var (
	ErrImageTooLarge  = errors.New("image exceeds maximum size of 5MB")
	ErrImageExtension = errors.New("only jpg, jpeg, png and gif images are allowed")
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// SaveProductImage extracts the "image" file from a multipart request and
// writes it under dir with a timestamped filename. Returns the stored path.
// Returns ("", nil) when the request carries no image field.
func SaveProductImage(r *http.Request, dir string) (string, error) {
	if err := r.ParseMultipartForm(MaxImageSize); err != nil {
		if errors.Is(err, multipart.ErrMessageTooLarge) {
			return "", ErrImageTooLarge
		}
		return "", err
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if header.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return "", ErrImageExtension
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
	path := filepath.Join(dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}
