package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfnt/resize"
)

const processor = resize.Lanczos3

// Store writes generated images into a fixed output directory
type Store struct {
	dir        string
	thumbnails bool
	thumbSize  int
}

func New(dir string, thumbnails bool, thumbSize int) *Store {
	return &Store{
		dir:        dir,
		thumbnails: thumbnails,
		thumbSize:  thumbSize,
	}
}

// DetectFormat inspects the leading magic bytes and returns the file
// extension without the dot, or "" if the format is not recognized
func DetectFormat(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "png"
	case bytes.HasPrefix(data, []byte("\xFF\xD8\xFF")):
		return "jpg"
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "gif"
	case bytes.HasPrefix(data, []byte("RIFF")) && len(data) > 12 && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp"
	case bytes.HasPrefix(data, []byte("BM")):
		return "bmp"
	}
	return ""
}

// Save writes raw image bytes under {unix_timestamp}_{8-hex-hash}.{ext}
// and returns the filename. The directory is created on first use.
// Collisions are possible (timestamp plus truncated hash) and accepted.
func (s *Store) Save(data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating images dir %s: %w", s.dir, err)
	}

	ext := DetectFormat(data)
	if ext == "" {
		ext = "bin"
	}

	sum := sha256.Sum256(data)
	filename := fmt.Sprintf("%d_%s.%s", time.Now().Unix(), hex.EncodeToString(sum[:4]), ext)
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("saving image to %s: %w", path, err)
	}

	if s.thumbnails {
		// Best-effort: a payload that does not decode gets no thumbnail
		_ = s.writeThumbnail(filename, data)
	}

	return filename, nil
}

func (s *Store) writeThumbnail(filename string, data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	thumb := resize.Thumbnail(uint(s.thumbSize), uint(s.thumbSize), img, processor)

	name := strings.TrimSuffix(filename, filepath.Ext(filename)) + "_thumb.jpg"
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, thumb, nil)
}
