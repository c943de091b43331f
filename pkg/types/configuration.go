package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

// DefaultConfigurationKey is the key the calculator stores its configuration
// under.
const DefaultConfigurationKey = "solarCalculatorConfig"

var (
	ErrMissingAppliances = errors.New("configuration appliances must be a list")
	ErrMissingSettings   = errors.New("configuration settings must be an object")
)

// SavedConfiguration is the calculator state persisted between visits. It is
// always written and read wholesale.
type SavedConfiguration struct {
	Appliances []ApplianceEntry `json:"appliances"`
	Settings   *ConfigSettings  `json:"settings"`
}

// ValidateConfiguration checks that cfg has the shape a saved configuration
// needs.
func ValidateConfiguration(cfg *SavedConfiguration) error {
	if cfg == nil {
		return errors.New("configuration is required")
	}
	if cfg.Appliances == nil {
		return ErrMissingAppliances
	}
	if cfg.Settings == nil {
		return ErrMissingSettings
	}
	return nil
}

// SaveConfiguration validates cfg and serializes it into a blob.
func SaveConfiguration(cfg *SavedConfiguration) (string, error) {
	if err := ValidateConfiguration(cfg); err != nil {
		return "", err
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadSavedConfiguration parses a stored blob. Empty, malformed or
// wrongly shaped blobs yield nil. A settings array loads as empty settings.
func LoadSavedConfiguration(blob string) *SavedConfiguration {
	if blob == "" {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &fields); err != nil || fields == nil {
		return nil
	}
	if !isJSONKind(fields["appliances"], '[') {
		return nil
	}
	var cfg SavedConfiguration
	if err := json.Unmarshal(fields["appliances"], &cfg.Appliances); err != nil {
		return nil
	}
	switch {
	case isJSONKind(fields["settings"], '{'):
		if err := json.Unmarshal(fields["settings"], &cfg.Settings); err != nil {
			return nil
		}
	case isJSONKind(fields["settings"], '['):
		cfg.Settings = &ConfigSettings{}
	default:
		return nil
	}
	return &cfg
}

func isJSONKind(raw json.RawMessage, open byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == open
}
