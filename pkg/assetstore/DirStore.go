package assetstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type DirStoreConfig struct {
	Root string
}

// DirStore keeps images on the local disk. Used for development and tests.
type DirStore struct {
	root string
}

func NewDirStore(config DirStoreConfig) DirStore {
	return DirStore{
		root: config.Root,
	}
}

func (s DirStore) List(prefix string) ([]Object, error) {
	var (
		err     error
		entries []fs.DirEntry
		info    fs.FileInfo
	)

	result := []Object{}
	prefix = strings.Trim(prefix, "/")

	if entries, err = os.ReadDir(s.fullPath(prefix)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}

		return nil, fmt.Errorf("error listing '%s': %w", prefix, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if info, err = entry.Info(); err != nil {
			return nil, fmt.Errorf("error reading file info for '%s': %w", entry.Name(), err)
		}

		result = append(result, Object{
			Key:          path.Join(prefix, entry.Name()),
			LastModified: info.ModTime(),
		})
	}

	return result, nil
}

func (s DirStore) Stat(key string) (*Object, error) {
	info, err := os.Stat(s.fullPath(key))

	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("error stating '%s': %w", key, err)
	}

	return &Object{
		Key:          key,
		LastModified: info.ModTime(),
	}, nil
}

func (s DirStore) Get(ctx context.Context, key string) (GetObjectResponse, error) {
	f, err := os.Open(s.fullPath(key))

	if err != nil {
		return GetObjectResponse{}, fmt.Errorf("error opening '%s': %w", key, err)
	}

	info, err := f.Stat()

	if err != nil {
		_ = f.Close()
		return GetObjectResponse{}, fmt.Errorf("error stating '%s': %w", key, err)
	}

	return GetObjectResponse{
		Body:        f,
		ContentType: mime.TypeByExtension(filepath.Ext(key)),
		Size:        info.Size(),
	}, nil
}

func (s DirStore) Put(key string, body io.Reader) error {
	fullPath := s.fullPath(key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("error creating directory for '%s': %w", key, err)
	}

	f, err := os.Create(fullPath)

	if err != nil {
		return fmt.Errorf("error creating '%s': %w", key, err)
	}

	defer f.Close()

	if _, err = io.Copy(f, body); err != nil {
		return fmt.Errorf("error writing '%s': %w", key, err)
	}

	return nil
}

func (s DirStore) fullPath(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
