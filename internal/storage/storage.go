// Package storage keeps uploaded medical record attachments on the local
// filesystem.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
)

var ErrStorage = errors.New("file storage failure")

// FileStore saves attachment payloads under a single root directory.
type FileStore struct {
	root string
}

// New makes sure root exists, creating it when absent.
func New(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create upload directory %s: %w", ErrStorage, root, err)
	}
	slog.Info("file storage ready", "root", root)
	return &FileStore{root: root}, nil
}

func (s *FileStore) Root() string { return s.root }

// SaveFile copies the uploaded payload into the root under a random-prefixed
// name and returns that name. An empty payload is not stored and yields "".
func (s *FileStore) SaveFile(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open upload %s: %w", ErrStorage, fh.Filename, err)
	}
	defer src.Close()

	name := uuid.NewString() + "_" + filepath.Base(fh.Filename)
	dst, err := os.Create(s.Path(name))
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrStorage, name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("%w: copy %s: %w", ErrStorage, name, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %w", ErrStorage, name, err)
	}
	return name, nil
}

// Path resolves a stored name to its location on disk.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

// Archive zips the named files. Names missing from disk are skipped; the
// number of entries actually written is returned with the archive bytes.
func (s *FileStore) Archive(names []string) ([]byte, int, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	written := 0
	for _, name := range names {
		ok, err := s.addEntry(zw, name)
		if err != nil {
			zw.Close()
			return nil, 0, err
		}
		if ok {
			written++
		}
	}
	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("%w: finish archive: %w", ErrStorage, err)
	}
	return buf.Bytes(), written, nil
}

func (s *FileStore) addEntry(zw *zip.Writer, name string) (bool, error) {
	f, err := os.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("attachment missing on disk, skipped", "file", name)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: open %s: %w", ErrStorage, name, err)
	}
	defer f.Close()

	w, err := zw.Create(filepath.Base(name))
	if err != nil {
		return false, fmt.Errorf("%w: add %s to archive: %w", ErrStorage, name, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return false, fmt.Errorf("%w: write %s to archive: %w", ErrStorage, name, err)
	}
	return true, nil
}
