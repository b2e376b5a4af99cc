package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Asset names looked up in the assets filesystem.
const (
	BannerFile = "banner.txt"
	HelpFile   = "help.yaml"
)

// ErrEmptyHelp indicates the help catalog lists no commands.
var ErrEmptyHelp = errors.New("ui: help catalog has no commands")

// HelpEntry is one usage line with its description.
// Backquoted spans in Description are highlighted when rendered.
type HelpEntry struct {
	Usage       string `yaml:"usage"`
	Description string `yaml:"description"`
}

// HelpCatalog is the static help text, loaded from help.yaml.
type HelpCatalog struct {
	Welcome  string      `yaml:"welcome"`
	Intro    []string    `yaml:"intro"`
	Commands []HelpEntry `yaml:"commands"`
	Examples []HelpEntry `yaml:"examples"`
}

// LoadHelp reads and parses help.yaml from fsys. Unknown fields are rejected.
func LoadHelp(fsys fs.FS) (*HelpCatalog, error) {
	data, err := fs.ReadFile(fsys, HelpFile)
	if err != nil {
		return nil, fmt.Errorf("ui: reading %s: %w", HelpFile, err)
	}

	var cat HelpCatalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("ui: parsing %s: %w", HelpFile, err)
	}
	if len(cat.Commands) == 0 {
		return nil, ErrEmptyHelp
	}
	return &cat, nil
}

// LoadBanner reads banner.txt from fsys. A missing banner is not an error.
func LoadBanner(fsys fs.FS) (string, error) {
	data, err := fs.ReadFile(fsys, BannerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("ui: reading %s: %w", BannerFile, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// splitHighlights splits s on backquotes. Odd-indexed parts were quoted.
func splitHighlights(s string) []string {
	return strings.Split(s, "`")
}
