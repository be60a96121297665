package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/garmentqc/internal/filelock"
)

// Format is the on-disk encoding of a ledger file.
type Format string

// Ledger file formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension; anything other
// than .yaml/.yml is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode renders the ledger in the given format. pointField applies to JSON only.
func Encode(l *Ledger, format Format, pointField string) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(l)
		if err != nil {
			return nil, fmt.Errorf("marshal ledger yaml: %w", err)
		}
		return data, nil
	case FormatJSON:
		s, err := l.SerializeWithPointField(pointField)
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	}
	return nil, fmt.Errorf("unknown ledger format %q", format)
}

// Decode parses a ledger document in the given format.
func Decode(data []byte, format Format) (*Ledger, error) {
	switch format {
	case FormatYAML:
		l := New()
		if err := yaml.Unmarshal(data, l); err != nil {
			return nil, err
		}
		return l, nil
	case FormatJSON:
		return Deserialize(string(data))
	}
	return nil, fmt.Errorf("unknown ledger format %q", format)
}

// LoadFile reads a ledger file under a shared lock.
func LoadFile(path string) (*Ledger, error) {
	var l *Ledger
	err := filelock.WithReadLock(path, func() error {
		var err error
		l, err = readFile(path)
		return err
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// SaveFile atomically writes a ledger file under an exclusive lock.
func SaveFile(path string, l *Ledger, pointField string) error {
	data, err := Encode(l, FormatForPath(path), pointField)
	if err != nil {
		return err
	}
	return filelock.LockAndWrite(path, data)
}

// Update loads the ledger at path (or starts an empty one if the file does
// not exist), applies fn and writes the result back, all under one exclusive
// lock. Nothing is written if fn fails.
func Update(path string, pointField string, fn func(*Ledger) error) (*Ledger, error) {
	var result *Ledger
	err := filelock.WithLock(path, func() error {
		l, err := readFile(path)
		if errors.Is(err, os.ErrNotExist) {
			l = New()
		} else if err != nil {
			return err
		}

		if err := fn(l); err != nil {
			return err
		}

		data, err := Encode(l, FormatForPath(path), pointField)
		if err != nil {
			return err
		}
		if err := filelock.AtomicWrite(path, data); err != nil {
			return err
		}
		result = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func readFile(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", path, err)
	}
	l, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("decode ledger %s: %w", path, err)
	}
	return l, nil
}
