package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// SaveUploadedFile writes an uploaded asset into destDir under a unique name
// and returns the saved path. The original base name is kept so ingestion
// metadata still points at something recognizable.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s", time.Now().Format("20060102150405"), filepath.Base(file.Filename))
	filePath := filepath.Join(destDir, name)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}
