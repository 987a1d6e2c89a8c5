package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// ErrFontNotFound is returned when no candidate path holds a readable font.
var ErrFontNotFound = errors.New("font asset not found")

// AssetsDir is searched for relative asset paths before the working directory.
var AssetsDir = "assets"

// SystemFontPaths are tried when the configured font cannot be found and
// fallback is enabled.
var SystemFontPaths = []string{
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

func ResolveAssetPath(relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}

	if _, err := os.Stat(relPath); err == nil {
		return relPath
	}

	localPath := filepath.Join(AssetsDir, filepath.Base(relPath))
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	return relPath
}

// FontCandidates lists the files ReadFontAsset tries for path, in order.
// Every plain path is followed by its .lz4 sibling.
func FontCandidates(path string, systemFallback bool) []string {
	var plain []string
	resolved := ResolveAssetPath(path)
	plain = append(plain, resolved)
	if resolved != path {
		plain = append(plain, path)
	}
	if systemFallback {
		plain = append(plain, SystemFontPaths...)
	}

	candidates := make([]string, 0, len(plain)*2)
	for _, p := range plain {
		if strings.HasSuffix(p, ".lz4") {
			candidates = append(candidates, p)
			continue
		}
		candidates = append(candidates, p, p+".lz4")
	}
	return candidates
}

// ReadFontAsset returns the raw TTF bytes for path together with the file it
// was read from. Files ending in .lz4 are decoded as lz4 frames.
func ReadFontAsset(path string, systemFallback bool) ([]byte, string, error) {
	for _, candidate := range FontCandidates(path, systemFallback) {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}

		if strings.HasSuffix(candidate, ".lz4") {
			data, err = DecompressLZ4(data)
			if err != nil {
				return nil, candidate, fmt.Errorf("decompress %s: %w", candidate, err)
			}
		}

		if len(data) == 0 {
			Warn("Font asset %s is empty, skipping", candidate)
			continue
		}

		Debug("Font asset resolved: %s (%d bytes)", candidate, len(data))
		return data, candidate, nil
	}

	return nil, "", fmt.Errorf("%w: %s", ErrFontNotFound, path)
}

func DecompressLZ4(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	var out bytes.Buffer
	if _, err := io.Copy(&out, r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
