package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/DivyaGovardhan/design-ui/config"
	"github.com/DivyaGovardhan/design-ui/logger"

	"github.com/google/uuid"
)

// StorageService persists uploaded photos under the upload folder.
// Stored names are random uuids with the original extension, so user
// filenames never reach the filesystem.
type StorageService struct{}

// SavePhoto buffers the upload to disk and returns the stored filename,
// relative to the upload folder.
func (s *StorageService) SavePhoto(file *multipart.FileHeader) (string, error) {
	dir := config.GetUploadFolder()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// RemovePhoto deletes a stored file. A missing file is not an error.
func (s *StorageService) RemovePhoto(name string) {
	if name == "" {
		return
	}
	path := filepath.Join(config.GetUploadFolder(), filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warning("remove stored photo:", err)
	}
}

// ListStored returns the filenames currently present in the upload folder.
func (s *StorageService) ListStored() ([]string, error) {
	entries, err := os.ReadDir(config.GetUploadFolder())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
