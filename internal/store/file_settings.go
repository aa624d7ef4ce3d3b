package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// settingsFileStorage keeps every settings group in one JSON document:
//
//	{"simple_smtp_mailer_settings": {"host": "...", ...}}
//
// Writes go to a temporary file that is renamed over the original, so a
// crash never leaves a half-written record.
type settingsFileStorage struct {
	path   string
	group  string
	logger *logger.Logger

	mu sync.Mutex
}

// NewSettingsFileStorage returns a file-backed [SettingsStore].
func NewSettingsFileStorage(path string, log *logger.Logger) SettingsStore {
	log.Debug().Str("path", path).Msg("creating settings file storage")
	return &settingsFileStorage{
		path:   path,
		group:  models.SettingsGroup,
		logger: log,
	}
}

func (s *settingsFileStorage) Get(ctx context.Context) (models.Options, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsFileStorage.Get").Msg("error reading settings file")
		return nil, err
	}

	options := doc[s.group]
	if options == nil {
		options = make(models.Options)
	}
	return options, nil
}

func (s *settingsFileStorage) Put(ctx context.Context, options models.Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := s.read()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsFileStorage.Put").Msg("error reading settings file")
		return err
	}
	doc[s.group] = options.Clone()

	if err = s.write(doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsFileStorage.Put").Msg("error writing settings file")
		return err
	}
	return nil
}

func (s *settingsFileStorage) read() (map[string]models.Options, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]models.Options), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSettingsFile, err)
	}

	doc := make(map[string]models.Options)
	if len(data) == 0 {
		return doc, nil
	}
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSettingsFile, err)
	}
	return doc, nil
}

func (s *settingsFileStorage) write(doc map[string]models.Options) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSettingsFile, err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSettingsFile, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSettingsFile, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingSettingsFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSettingsFile, err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSettingsFile, err)
	}
	return nil
}
