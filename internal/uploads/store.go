package uploads

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	DefaultMaxBytes int64 = 50 << 20
	URLPrefix             = "/uploads/"
	sniffLen              = 3072
)

var (
	ErrTypeNotAllowed  = errors.New("file type not allowed")
	ErrTooLarge        = errors.New("file too large")
	ErrInvalidFilename = errors.New("invalid filename")
	ErrNotFound        = errors.New("file not found")
	ErrNoFile          = errors.New("no file uploaded")
)

var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

// extensions lists the file extensions kept as-is for each allowed type.
var extensions = map[string][]string{
	"image/jpeg":      {".jpg", ".jpeg", ".jpe", ".jfif"},
	"image/png":       {".png"},
	"image/gif":       {".gif"},
	"image/webp":      {".webp"},
	"video/mp4":       {".mp4", ".m4v"},
	"video/webm":      {".webm"},
	"video/quicktime": {".mov", ".qt"},
}

func Allowed(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return allowedTypes[strings.ToLower(mt)]
}

// Store keeps uploaded media on local disk under Dir.
type Store struct {
	Dir      string
	MaxBytes int64
}

type Result struct {
	Filename     string
	OriginalName string
	Size         int64
	MimeType     string
}

func New(dir string, maxBytes int64) (*Store, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	return &Store{Dir: abs, MaxBytes: maxBytes}, nil
}

func (s *Store) URL(name string) string {
	return URLPrefix + name
}

// Save checks the declared type, the size and the sniffed content, then
// writes the file under a random name. Nothing is left on disk on failure.
func (s *Store) Save(ctx context.Context, fh *multipart.FileHeader) (*Result, error) {
	if fh == nil {
		return nil, ErrNoFile
	}
	declared := fh.Header.Get("Content-Type")
	if !Allowed(declared) {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotAllowed, declared)
	}
	if fh.Size > s.MaxBytes {
		return nil, ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	sniffed := detect(head)
	if sniffed == "" {
		return nil, fmt.Errorf("%w: content does not match an allowed type", ErrTypeNotAllowed)
	}

	name, err := randomName(storedExtension(fh.Filename, sniffed))
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(s.Dir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	written, err := io.Copy(tmp, io.LimitReader(io.MultiReader(bytes.NewReader(head), src), s.MaxBytes+1))
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("write upload: %w", err)
	}
	if written > s.MaxBytes {
		cleanup()
		return nil, ErrTooLarge
	}
	if err := ctx.Err(); err != nil {
		cleanup()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("close upload: %w", err)
	}
	_ = os.Chmod(tmpName, 0o644)
	if err := os.Rename(tmpName, filepath.Join(s.Dir, name)); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("store upload: %w", err)
	}

	mt, _, _ := mime.ParseMediaType(declared)
	return &Result{
		Filename:     name,
		OriginalName: fh.Filename,
		Size:         written,
		MimeType:     mt,
	}, nil
}

// Delete removes a previously stored file. The name must be a bare file name
// that resolves inside Dir.
func (s *Store) Delete(name string) error {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrInvalidFilename
	}

	path := filepath.Join(s.Dir, name)
	if !strings.HasPrefix(path, s.Dir+string(os.PathSeparator)) {
		return ErrInvalidFilename
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	if info.IsDir() {
		return ErrInvalidFilename
	}
	return os.Remove(path)
}

// detect returns the allowed MIME type the content sniffs as, or "" if none.
func detect(head []byte) string {
	for mt := mimetype.Detect(head); mt != nil; mt = mt.Parent() {
		if allowedTypes[mt.String()] {
			return mt.String()
		}
		for _, alias := range mt.Aliases() {
			if allowedTypes[alias] {
				return alias
			}
		}
	}
	return ""
}

func randomName(ext string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("random name: %w", err)
	}
	return hex.EncodeToString(buf) + ext, nil
}

// storedExtension keeps the original extension when it fits the sniffed
// type and otherwise uses the sniffed type's own extension, so /uploads never
// serves content under a type it was not sniffed as.
func storedExtension(original, sniffed string) string {
	ext := extension(original)
	for _, e := range extensions[sniffed] {
		if ext == e {
			return ext
		}
	}
	if m := mimetype.Lookup(sniffed); m != nil {
		return m.Extension()
	}
	return ""
}

func extension(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
