package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Extensions lists the component file extensions the parser understands.
var Extensions = []string{".yaml", ".yml", ".toml"}

// IsComponentFile reports whether path has a supported extension.
func IsComponentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range Extensions {
		if ext == known {
			return true
		}
	}
	return false
}

// ParseFile loads a component file from disk, validates it, and returns the resulting model.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data according to the extension of path and validates it.
func Parse(path string, data []byte) (*File, error) {
	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, apperrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, apperrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, apperrors.NewParseError(path, 0, fmt.Errorf("unsupported component file extension %q", filepath.Ext(path)))
	}

	if err := ValidateFile(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
