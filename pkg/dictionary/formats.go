package dictionary

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat identifies a dictionary file layout.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word or word;definition;points line per row
	FormatSQLite             // exported game database
	FormatBinary             // compiled msgpack word list
)

func (f FileFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatSQLite:
		return "sqlite"
	case FormatBinary:
		return "binary"
	}
	return "unknown"
}

// FormatInfo describes one supported layout.
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".csv"},
		MinSize:     1,
	},
	FormatSQLite: {
		Format:      FormatSQLite,
		Description: "SQLite Dictionary Database",
		Extensions:  []string{".db", ".sqlite", ".sqlite3"},
		MinSize:     100, // a valid database file is at least one page
	},
	FormatBinary: {
		Format:      FormatBinary,
		Description: "Compiled Binary Word List",
		Extensions:  []string{".lxb"},
		MinSize:     int64(len(binaryMagic)),
	},
}

// sqliteMagic is the fixed 16-byte prefix of every SQLite 3 database.
var sqliteMagic = []byte("SQLite format 3\x00")

// ValidateFileFormat checks that a file plausibly carries the expected format
// before a loader commits to parsing it.
func ValidateFileFormat(filename string, expected FileFormat) error {
	info, exists := supportedFormats[expected]
	if !exists {
		return fmt.Errorf("unknown format: %v", expected)
	}

	fi, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fi.Size() < info.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fi.Size(), info.Description, info.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, e := range info.Extensions {
		if ext == e {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, info.Description, info.Extensions)
	}

	switch expected {
	case FormatSQLite:
		return validateMagic(filename, sqliteMagic, info.Description)
	case FormatBinary:
		return validateMagic(filename, []byte(binaryMagic), info.Description)
	}
	return nil
}

func validateMagic(filename string, magic []byte, description string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	head := make([]byte, len(magic))
	if _, err := file.Read(head); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", filename, err)
	}
	if !bytes.Equal(head, magic) {
		return fmt.Errorf("file %s does not start with the %s header", filename, description)
	}

	log.Debugf("validated %s as %s", filename, description)
	return nil
}

// DetectFileFormat resolves a file's format from its extension, then
// confirms with the header checks.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if ext != e {
				continue
			}
			if err := ValidateFileFormat(filename, format); err != nil {
				return FormatUnknown, err
			}
			return format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}
