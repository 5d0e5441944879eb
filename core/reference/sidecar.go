package reference

import (
	"bufio"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// SidecarSuffix is appended to the reference table path to name its
// persisted cache.
const SidecarSuffix = ".cache"

// sidecarVersion changes whenever the persisted layout changes.
const sidecarVersion = 1

// Validity selects how a side-car is checked against its source table.
type Validity string

const (
	// ValidityModTime trusts a side-car written for the same source size
	// and modification time.
	ValidityModTime Validity = "mtime"
	// ValidityHash trusts a side-car written for the same source content.
	ValidityHash Validity = "hash"
	// ValidityNone trusts any readable side-car, whatever the source.
	ValidityNone Validity = "none"
)

// ParseValidity converts a configuration value into a Validity. The empty
// string selects ValidityModTime.
func ParseValidity(s string) (Validity, error) {
	switch v := Validity(s); v {
	case "":
		return ValidityModTime, nil
	case ValidityModTime, ValidityHash, ValidityNone:
		return v, nil
	default:
		return "", fmt.Errorf("unknown reference staleness mode %q", s)
	}
}

type sidecar struct {
	Version int
	Token   string
	Streets Cache
}

// SidecarPath returns the side-car path of a reference table.
func SidecarPath(source string) string {
	return source + SidecarSuffix
}

// Token computes the validity token of source under mode v.
func Token(source string, v Validity) (string, error) {
	switch v {
	case ValidityNone:
		return "", nil
	case ValidityHash:
		f, err := os.Open(source)
		if err != nil {
			return "", fmt.Errorf("failed to open reference table: %w", err)
		}
		defer f.Close()

		h := sha256.New()
		if _, err := io.Copy(h, f); err != nil {
			return "", fmt.Errorf("failed to hash reference table: %w", err)
		}
		return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
	default:
		info, err := os.Stat(source)
		if err != nil {
			return "", fmt.Errorf("failed to stat reference table: %w", err)
		}
		return "mtime:" + strconv.FormatInt(info.Size(), 10) + ":" + strconv.FormatInt(info.ModTime().UnixNano(), 10), nil
	}
}

// readSidecar loads the side-car at path. It returns (nil, nil) when the
// file is missing, unreadable as a side-car, or written for another token.
func readSidecar(path, token string, v Validity) (Cache, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open side-car: %w", err)
	}
	defer f.Close()

	var sc sidecar
	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(&sc); err != nil {
		return nil, nil
	}
	if sc.Version != sidecarVersion {
		return nil, nil
	}
	if v != ValidityNone && sc.Token != token {
		return nil, nil
	}
	if sc.Streets == nil {
		sc.Streets = Cache{}
	}
	return sc.Streets, nil
}

// writeSidecar persists cache to path through a temporary file and a
// rename, so readers never observe a partial side-car.
func writeSidecar(path, token string, cache Cache) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".reference-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create side-car: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = gob.NewEncoder(w).Encode(sidecar{Version: sidecarVersion, Token: token, Streets: cache}); err != nil {
		return fmt.Errorf("failed to encode side-car: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write side-car: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync side-car: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close side-car: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename side-car: %w", err)
	}
	return nil
}
