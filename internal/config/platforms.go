package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/SylleoYr/pegasus-frontend/pkg/errors"
)

// Platform describes one launchable system: where its games live and the
// command template used to start them. Templates may use the %ROM%,
// %ROM_RAW% and %BASENAME% placeholders, optionally pre-quoted.
type Platform struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description,omitempty"`
	LaunchCommand string   `yaml:"launch_command"`
	RomDirs       []string `yaml:"rom_dirs"`
	Extensions    []string `yaml:"extensions"`
}

type platformsFile struct {
	Platforms []Platform `yaml:"platforms"`
}

// LoadPlatforms reads the platform definitions YAML file
func LoadPlatforms(path string) ([]Platform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read platforms file %s: %w", path, err)
	}

	var file platformsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse platforms file %s: %w", path, err)
	}

	for i := range file.Platforms {
		if err := file.Platforms[i].Validate(); err != nil {
			return nil, err
		}
		file.Platforms[i].normalizeExtensions()
	}

	return file.Platforms, nil
}

// Validate checks that a platform definition can be launched
func (p *Platform) Validate() error {
	if p.Name == "" {
		return apperrors.NewConfigError("name", p.Name, "platform name is required")
	}
	if p.LaunchCommand == "" {
		return apperrors.NewConfigError("launch_command", p.LaunchCommand,
			fmt.Sprintf("platform %s has no launch command", p.Name))
	}
	return nil
}

// normalizeExtensions lowercases extensions and ensures a leading dot
func (p *Platform) normalizeExtensions() {
	normalized := make([]string, 0, len(p.Extensions))
	for _, ext := range p.Extensions {
		ext = strings.TrimSpace(strings.ToLower(ext))
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	p.Extensions = normalized
}

// HasExtension reports whether a filename matches the platform's extensions.
// A platform with no configured extensions accepts every file.
func (p *Platform) HasExtension(filename string) bool {
	if len(p.Extensions) == 0 {
		return true
	}
	lower := strings.ToLower(filename)
	for _, ext := range p.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FindPlatform returns the named platform from a loaded list
func FindPlatform(platforms []Platform, name string) (*Platform, error) {
	for i := range platforms {
		if strings.EqualFold(platforms[i].Name, name) {
			return &platforms[i], nil
		}
	}
	return nil, apperrors.ErrPlatformNotFound
}
