package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain/flagcfg"
)

// FlagConfigFileStore persists the flag configuration as a small JSON
// record.
type FlagConfigFileStore struct {
	path   string
	logger *logrus.Logger
}

func NewFlagConfigFileStore(path string, logger *logrus.Logger) *FlagConfigFileStore {
	return &FlagConfigFileStore{path: path, logger: logger}
}

func (s *FlagConfigFileStore) Load() (flagcfg.Config, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.WithField("path", s.path).Info("flag config file absent, seeding defaults")
		cfg := flagcfg.Default()
		if err := s.Persist(cfg); err != nil {
			return flagcfg.Config{}, fmt.Errorf("failed to seed default flag config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return flagcfg.Config{}, fmt.Errorf("failed to read flag config file: %w", err)
	}

	// Start from defaults so records written by older versions keep
	// sensible values for fields they do not carry.
	cfg := flagcfg.Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return flagcfg.Config{}, fmt.Errorf("failed to decode flag config file: %w", err)
	}
	return cfg, nil
}

func (s *FlagConfigFileStore) Persist(cfg flagcfg.Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create flag config directory: %w", err)
	}

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode flag config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".flagcfg-*")
	if err != nil {
		return fmt.Errorf("failed to create temp flag config file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write flag config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp flag config file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace flag config file: %w", err)
	}
	return nil
}
