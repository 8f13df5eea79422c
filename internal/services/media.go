package services

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const BucketPosters = "posters"

func EnsureStoragePath(base string, bucket string) (string, error) {
	path := filepath.Join(base, bucket)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", err
	}
	return path, nil
}

// SaveMediaFile writes rendered media bytes under a fresh id and returns the
// id together with the URL the API serves it from.
func SaveMediaFile(basePath, bucket string, data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", ErrBadRequest("media payload is empty")
	}
	fileID := uuid.NewString()
	bucketPath, err := EnsureStoragePath(basePath, bucket)
	if err != nil {
		return "", "", err
	}
	targetPath := filepath.Join(bucketPath, fileID)
	file, err := os.Create(targetPath)
	if err != nil {
		return "", "", err
	}
	_, err = bytes.NewReader(data).WriteTo(file)
	_ = file.Close()
	if err != nil {
		_ = os.Remove(targetPath)
		return "", "", err
	}
	return fileID, BuildMediaURL(fileID), nil
}

func BuildMediaURL(fileID string) string {
	return "/api/media/assets/" + fileID + "/content"
}

func MediaFilePath(basePath, bucket, fileID string) string {
	return filepath.Join(basePath, bucket, fileID)
}

// DeleteMediaFile removes the stored file if it exists.
func DeleteMediaFile(basePath, bucket, fileID string) {
	if fileID == "" {
		return
	}
	_ = os.Remove(MediaFilePath(basePath, bucket, fileID))
}
