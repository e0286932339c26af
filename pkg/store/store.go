// Package store reads and writes the résumé document file and its
// companion ignore file.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/xrsl/rsm/pkg/resume"
)

// ErrNotFound is returned by Load when the document file does not exist.
var ErrNotFound = errors.New("resume document not found")

// Store keeps one document at a fixed path inside a filesystem.
type Store struct {
	fs         billy.Filesystem
	path       string
	ignorePath string
}

// New returns a store for the document at docPath. ignorePath names the
// ignore file that keeps everything but the document out of version control.
func New(fs billy.Filesystem, docPath, ignorePath string) *Store {
	return &Store{fs: fs, path: docPath, ignorePath: ignorePath}
}

// Path is the document location inside the filesystem.
func (s *Store) Path() string { return s.path }

// IgnorePath is the ignore file location inside the filesystem.
func (s *Store) IgnorePath() string { return s.ignorePath }

// Exists reports whether the document file is present.
func (s *Store) Exists() bool {
	fi, err := s.fs.Stat(s.path)
	return err == nil && !fi.IsDir()
}

// Load reads the document. Entries with a blank label are dropped and
// entries without an ID get one.
func (s *Store) Load() (resume.Document, error) {
	data, err := util.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return resume.Document{}, fmt.Errorf("%s: %w", s.path, ErrNotFound)
		}
		return resume.Document{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	return Decode(data)
}

// Save writes the document, replacing the previous file.
func (s *Store) Save(doc resume.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if dir := path.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := util.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// IgnoreContent lists what the ignore file contains: everything is ignored
// except the ignore file itself and the document.
func (s *Store) IgnoreContent() string {
	return fmt.Sprintf("*\n!%s\n!%s\n", path.Base(s.ignorePath), path.Base(s.path))
}

// EnsureIgnore writes the ignore file unless it already exists.
func (s *Store) EnsureIgnore() error {
	if _, err := s.fs.Stat(s.ignorePath); err == nil {
		return nil
	}
	if err := util.WriteFile(s.fs, s.ignorePath, []byte(s.IgnoreContent()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.ignorePath, err)
	}
	return nil
}

// Encode serializes a document as YAML with two-space indentation.
func Encode(doc resume.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode resume: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode resume: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a YAML document and sanitizes it the way Load does.
func Decode(data []byte) (resume.Document, error) {
	var doc resume.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return resume.Document{}, fmt.Errorf("decode resume: %w", err)
	}
	return doc.DropBlank().EnsureIDs(), nil
}
