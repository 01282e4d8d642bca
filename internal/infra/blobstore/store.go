package blobstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrNotManaged is returned when a URL does not point into this store.
	// Externally hosted assets are never touched.
	ErrNotManaged = errors.New("blob url is not managed by this store")

	ErrBadPath = errors.New("invalid blob path")
)

// Store keeps binary assets (images, PDFs) on disk under root and hands out
// public URLs under baseURL. The HTTP layer serves root at that URL.
type Store struct {
	root    string
	baseURL string
}

func New(root, baseURL string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload stores the reader's bytes under the given relative path (for example
// "images/1735600000_photo.jpg") and returns the public URL.
func (s *Store) Upload(name string, r io.Reader) (string, error) {
	rel, err := s.cleanPath(name)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", err
	}
	return s.baseURL + "/" + rel, nil
}

// Owns reports whether the URL points at an asset this store manages. News
// edits use this to decide whether a replaced image may be deleted.
func (s *Store) Owns(url string) bool {
	return strings.HasPrefix(url, s.baseURL+"/")
}

// Delete removes the asset behind a managed URL. URLs outside the store are
// refused with ErrNotManaged so externally hosted files are left alone.
func (s *Store) Delete(url string) error {
	if !s.Owns(url) {
		return ErrNotManaged
	}
	rel, err := s.cleanPath(strings.TrimPrefix(url, s.baseURL+"/"))
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
}

func (s *Store) cleanPath(name string) (string, error) {
	rel := path.Clean(strings.TrimLeft(name, "/"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", ErrBadPath
	}
	return rel, nil
}
