// Package profile persists named bundles of default options in a JSON file,
// keyed by profile name.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/viper"

	"github.com/datazip-inc/tablefilter/constants"
	"github.com/datazip-inc/tablefilter/types"
	"github.com/datazip-inc/tablefilter/utils/logger"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrKeyNotFound     = errors.New("no such key")
	ErrInvalidKey      = errors.New("invalid key format, use profile.key")
	ErrInvalidSetting  = errors.New("invalid format, use profile.key=value")
)

// Profiles is the decoded content of the store
type Profiles map[string]map[string]any

type Store struct {
	path string
}

// DefaultPath is $TF_CONFIG when set, else tf.config.json in the user config directory
func DefaultPath() (string, error) {
	if path := viper.GetString(constants.ConfigPath); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %s", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the store. A missing file is an empty store.
func (s *Store) Load() (Profiles, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Profiles{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %s", err)
	}

	profiles := Profiles{}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %s", s.path, err)
	}
	return profiles, nil
}

// Save rewrites the whole store, pretty printed
func (s *Store) Save(profiles Profiles) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %s", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %s", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %s", err)
	}
	logger.Debugf("saved %d profiles to %s", len(profiles), s.path)
	return nil
}

// Set applies an assignment of the form profile.key=value. The value is
// decoded as JSON when possible and stored as a plain string otherwise.
// The profile is created when missing.
func (s *Store) Set(assignment string) error {
	target, rawValue, found := strings.Cut(assignment, "=")
	if !found {
		return ErrInvalidSetting
	}
	name, key, err := splitKey(target)
	if err != nil {
		return ErrInvalidSetting
	}

	profiles, err := s.Load()
	if err != nil {
		return err
	}
	if profiles[name] == nil {
		profiles[name] = map[string]any{}
	}
	profiles[name][key] = parseValue(rawValue)
	return s.Save(profiles)
}

// Profile returns the raw entry of one profile
func (s *Store) Profile(name string) (map[string]any, error) {
	profiles, err := s.Load()
	if err != nil {
		return nil, err
	}
	entry, found := profiles[name]
	if !found {
		return nil, fmt.Errorf("%w: '%s'", ErrProfileNotFound, name)
	}
	return entry, nil
}

// Get returns the value at profile.key
func (s *Store) Get(path string) (string, any, error) {
	name, key, err := splitKey(path)
	if err != nil {
		return "", nil, err
	}
	entry, err := s.Profile(name)
	if errors.Is(err, ErrProfileNotFound) {
		return "", nil, fmt.Errorf("%w '%s'", ErrKeyNotFound, path)
	}
	if err != nil {
		return "", nil, err
	}
	value, found := entry[key]
	if !found {
		return "", nil, fmt.Errorf("%w '%s'", ErrKeyNotFound, path)
	}
	return key, value, nil
}

// Resolve loads and type-checks a profile for a pipeline run
func (s *Store) Resolve(name string) (*types.Profile, error) {
	entry, err := s.Profile(name)
	if err != nil {
		return nil, err
	}
	return types.ProfileFromMap(name, entry)
}

// splitKey splits at the last dot, so profile names may contain dots
func splitKey(path string) (string, string, error) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return "", "", ErrInvalidKey
	}
	return path[:idx], path[idx+1:], nil
}

func parseValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}
