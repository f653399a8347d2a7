package lfsr

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadKeyFile reads a Key from the file at path.
// Files with a .yaml or .yml extension are read as YAML, anything else is read in the binary format.
func LoadKeyFile(path string) (Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Key{}, err
	}
	var key Key
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &key); err != nil {
			return Key{}, err
		}
		return key, nil
	}
	if err := key.UnmarshalBinary(data); err != nil {
		return Key{}, err
	}
	return key, nil
}

// SaveKeyFile writes key to path, choosing the format the same way as LoadKeyFile.
// The file is created with owner-only permissions.
func SaveKeyFile(path string, key Key) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(key); err != nil {
			return err
		}
		if err = enc.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		data, err = key.MarshalBinary()
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0600)
}
