package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"noteva/pkg/config"
)

type MediaFile struct {
	Name string `json:"name"`
	Path string `json:"path"` // URL path for use in article bodies
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// ListMediaFiles lists the uploads directory, creating it on first use.
func ListMediaFiles() ([]MediaFile, error) {
	if _, err := os.Stat(config.UploadsDir); os.IsNotExist(err) {
		os.MkdirAll(config.UploadsDir, 0755)
	}

	entries, err := os.ReadDir(config.UploadsDir)
	if err != nil {
		return nil, err
	}

	files := []MediaFile{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		usagePath := config.UploadsURL + "/" + entry.Name()
		files = append(files, MediaFile{
			Name: entry.Name(),
			Path: usagePath,
			Size: info.Size(),
			URL:  usagePath,
		})
	}
	return files, nil
}

// SaveMediaFile stores an upload, de-duplicating the name with a
// timestamp suffix.
func SaveMediaFile(header *multipart.FileHeader) (*MediaFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := filepath.Base(header.Filename)
	filename = strings.ReplaceAll(filename, " ", "_")

	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	filename = fmt.Sprintf("%s_%d%s", name, time.Now().Unix(), ext)

	fullPath := SafeJoin(config.UploadsDir, "", filename)
	if fullPath == "" {
		return nil, fmt.Errorf("invalid media path")
	}
	if err := os.MkdirAll(config.UploadsDir, 0755); err != nil {
		return nil, err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	usagePath := config.UploadsURL + "/" + filename
	return &MediaFile{
		Name: filename,
		Path: usagePath,
		Size: header.Size,
		URL:  usagePath,
	}, nil
}

// DeleteMediaFile removes one upload by name.
func DeleteMediaFile(filename string) error {
	fullPath := SafeJoin(config.UploadsDir, "", filename)
	if fullPath == "" {
		return fmt.Errorf("invalid media path")
	}
	return os.Remove(fullPath)
}
