// Package importer reads item lists from files.
package importer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"tiermaker/internal/domain"
)

// Format identifies an item file format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// itemList is the document shape for structured formats
type itemList struct {
	Items []domain.Item `json:"items" yaml:"items" toml:"items"`
}

// FormatFromPath picks the format from the file extension.
// Unknown extensions are read as plain text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Load reads and parses the item file at path
func Load(path string) ([]domain.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	items, err := Parse(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Parse decodes items from r. JSON and YAML accept either a bare list or a
// document with an "items" key; TOML needs [[items]] tables; text is one item
// name per line with blank lines and '#' comments skipped.
func Parse(r io.Reader, format Format) ([]domain.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	var items []domain.Item
	switch format {
	case FormatJSON:
		items, err = parseJSON(data)
	case FormatYAML:
		items, err = parseYAML(data)
	case FormatTOML:
		var doc itemList
		err = toml.Unmarshal(data, &doc)
		items = doc.Items
	case FormatText:
		items, err = parseText(data)
	default:
		return nil, fmt.Errorf("unknown format %q: %w", format, domain.ErrInvalidArgument)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s items: %w", format, err)
	}

	return normalize(items)
}

func parseJSON(data []byte) ([]domain.Item, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []domain.Item
		err := json.Unmarshal(trimmed, &items)
		return items, err
	}
	var doc itemList
	err := json.Unmarshal(trimmed, &doc)
	return doc.Items, err
}

func parseYAML(data []byte) ([]domain.Item, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		var items []domain.Item
		err := node.Content[0].Decode(&items)
		return items, err
	}
	var doc itemList
	err := node.Content[0].Decode(&doc)
	return doc.Items, err
}

func parseText(data []byte) ([]domain.Item, error) {
	var items []domain.Item
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, domain.Item{Name: line})
	}
	return items, scanner.Err()
}

// normalize fills in missing ids and rejects entries with neither id nor
// name. Derived ids never collide with each other or with explicit ids: a
// taken slug gets a numeric suffix, and a name with no letters or digits
// falls back to its position in the list.
func normalize(items []domain.Item) ([]domain.Item, error) {
	taken := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID != "" {
			taken[item.ID] = true
		}
	}

	out := make([]domain.Item, 0, len(items))
	for i, item := range items {
		if item.ID == "" {
			if item.Name == "" {
				return nil, fmt.Errorf("item %d has neither id nor name: %w", i+1, domain.ErrInvalidArgument)
			}
			base := Slug(item.Name)
			if base == "" {
				base = fmt.Sprintf("item-%d", i+1)
			}
			item.ID = base
			for n := 2; taken[item.ID]; n++ {
				item.ID = fmt.Sprintf("%s-%d", base, n)
			}
			taken[item.ID] = true
		}
		out = append(out, item)
	}
	return out, nil
}

// Slug derives an id from a display name: lowercase, with runs of anything
// other than letters and digits collapsed into a single '-'
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
