package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/treb-networks/internal/domain"
)

// Source is one layer of operator-supplied values
type Source struct {
	Name   string
	Values map[string]string

	// FileOnly marks values forge never sees, so a ${KEY} reference to them cannot expand
	FileOnly bool
}

// ValueStore is the process-wide, read-only view of operator-supplied configuration values.
// Earlier sources take precedence. Empty values count as not supplied.
type ValueStore struct {
	values   map[string]string
	origins  map[string]string
	fileOnly map[string]bool
	sources  []string
}

// NewValueStore merges sources, highest precedence first
func NewValueStore(sources ...Source) *ValueStore {
	s := &ValueStore{
		values:   make(map[string]string),
		origins:  make(map[string]string),
		fileOnly: make(map[string]bool),
	}

	for _, src := range sources {
		if len(src.Values) == 0 {
			continue
		}
		s.sources = append(s.sources, src.Name)
		for key, value := range src.Values {
			if value == "" {
				continue
			}
			if _, exists := s.values[key]; exists {
				continue
			}
			s.values[key] = value
			s.origins[key] = src.Name
			if src.FileOnly {
				s.fileOnly[key] = true
			}
		}
	}

	return s
}

// Resolve returns the operator value for key, or def when none was supplied
func (s *ValueStore) Resolve(key, def string) string {
	if s != nil {
		if value, ok := s.values[key]; ok {
			return value
		}
	}
	return def
}

// Secret resolves key like Resolve but keeps the result out of logs and errors
func (s *ValueStore) Secret(key, def string) domain.Secret {
	return domain.Secret(s.Resolve(key, def))
}

// Has reports whether the operator supplied a value for key
func (s *ValueStore) Has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[key]
	return ok
}

// Origin returns the name of the source that supplied key, or "" for defaults
func (s *ValueStore) Origin(key string) string {
	if s == nil {
		return ""
	}
	return s.origins[key]
}

// Referenceable reports whether key was supplied by a source forge also reads,
// so ${KEY} in foundry.toml expands to the same value
func (s *ValueStore) Referenceable(key string) bool {
	return s.Has(key) && !s.fileOnly[key]
}

// Sources lists the non-empty sources in precedence order
func (s *ValueStore) Sources() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.sources...)
}

// Keys returns the supplied keys, sorted
func (s *ValueStore) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnvironSource builds a source from KEY=VALUE pairs as returned by os.Environ
func EnvironSource(environ []string) Source {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return Source{Name: "environment", Values: values}
}

// DotEnvSource reads a .env style file without touching the process environment.
// A missing file yields an empty source.
func DotEnvSource(path string) (Source, error) {
	src := Source{Name: filepath.Base(path)}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return src, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return src, fmt.Errorf("failed to read %s: %w", path, err)
	}
	src.Values = values

	return src, nil
}

// VarsFileSource reads a flat TOML table of string values.
// A missing file yields an empty source.
func VarsFileSource(path string) (Source, error) {
	src := Source{Name: filepath.Base(path), FileOnly: true}
	if path == "" {
		return src, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return src, nil
	}

	var values map[string]string
	if _, err := toml.DecodeFile(path, &values); err != nil {
		return src, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	src.Values = values

	return src, nil
}

// ValueFiles returns the files a value store for projectRoot is read from, in precedence order.
// A relative varsFile is taken relative to projectRoot.
func ValueFiles(projectRoot, varsFile string) []string {
	files := []string{
		filepath.Join(projectRoot, ".env.local"),
		filepath.Join(projectRoot, ".env"),
	}
	if varsFile != "" {
		if !filepath.IsAbs(varsFile) {
			varsFile = filepath.Join(projectRoot, varsFile)
		}
		files = append(files, varsFile)
	}
	return files
}

// LoadValueStore builds the store from the process environment, .env.local, .env and the vars file
func LoadValueStore(projectRoot, varsFile string) (*ValueStore, error) {
	sources := []Source{EnvironSource(os.Environ())}

	files := ValueFiles(projectRoot, varsFile)
	for _, path := range files[:2] {
		src, err := DotEnvSource(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	if len(files) > 2 {
		vars, err := VarsFileSource(files[2])
		if err != nil {
			return nil, err
		}
		sources = append(sources, vars)
	}

	return NewValueStore(sources...), nil
}
