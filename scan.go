package argh

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadValues reads a structured option file in TOML, JSON, or YAML format.
// Top-level keys are option names with the leading marker characters
// trimmed: the key "intvalue" matches an option registered as "--intvalue".
// Matching keys mark the option seen and apply the value through the same
// setter Parse uses, so the coercion rules are identical. Unknown keys are
// ignored.
//
// The format is detected from the file extension first, then by probing the
// content. A missing file returns ErrConfigNotFound without modifying any
// option state.
func (a *Argh) LoadValues(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read option file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return fmt.Errorf("%w: '%s'", ErrUnknownFormat, path)
		}
	}

	values := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse TOML option file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&values); err != nil {
			return fmt.Errorf("failed to parse JSON option file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse YAML option file '%s': %w", path, err)
		}
	}

	for _, o := range a.options {
		if val, exists := values[trimMarker(o.Name())]; exists {
			o.markSeen()
			o.setValue(a.valueToken(val))
		}
	}

	return nil
}

// valueToken renders a decoded file value as one text token. Arrays are
// joined with the registry delimiter so multi-value options split them
// back apart.
func (a *Argh) valueToken(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, elem := range list {
			parts[i] = valueText(elem)
		}
		return strings.Join(parts, string(a.delim))
	}
	return valueText(v)
}

// Values returns the current bound value of every registered option, keyed
// by its name with leading marker characters trimmed. Duplicate names keep
// the last-registered descriptor's value.
func (a *Argh) Values() map[string]any {
	values := make(map[string]any, len(a.options))
	for _, o := range a.options {
		values[trimMarker(o.Name())] = o.current()
	}
	return values
}

// Scan decodes the current option values into the target struct pointer.
// Fields are mapped by the "argh" struct tag (falling back to the field
// name) against dash-trimmed option names, with weak type conversion.
func (a *Argh) Scan(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "argh",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(a.Values()); err != nil {
		return fmt.Errorf("failed to scan option values into %T: %w", target, err)
	}

	return nil
}

// trimMarker strips the leading option marker characters from a name.
func trimMarker(name string) string {
	return strings.TrimLeft(name, "-")
}

// valueText renders a decoded file value as the text token the option
// setters expect. Booleans render as "1"/"0" to match the coercion
// convention.
func valueText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try TOML before YAML; YAML accepts nearly anything
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
