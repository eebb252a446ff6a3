package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/assort/pkg/errors"
)

// RepositoryConfig controls which parts of the tree are editable
type RepositoryConfig struct {
	// ExternalPrefixes are repository-relative path prefixes that are
	// read-only; resources under them are never relocated.
	ExternalPrefixes []string `koanf:"external_prefixes" toml:"external_prefixes"`

	// CacheSize is the number of parsed resource files kept in memory
	CacheSize int `koanf:"cache_size" toml:"cache_size"`
}

// MaterialConfig controls the material texture fallback pass
type MaterialConfig struct {
	TextureSlots []string `koanf:"texture_slots" toml:"texture_slots"`
}

// Config is the merged assort configuration
type Config struct {
	Repository RepositoryConfig `koanf:"repository" toml:"repository"`

	// Categories maps a resource kind to its destination subfolder.
	// Kinds absent from the table are never relocated.
	Categories map[string]string `koanf:"categories" toml:"categories"`

	Material MaterialConfig `koanf:"material" toml:"material"`
}

// hardDefaults backstops values that must never be zero even if the
// embedded defaults file is edited down.
var hardDefaults = map[string]interface{}{
	"repository.cache_size": 64,
}

// Load merges configuration in order: hard defaults, embedded defaults,
// then an optional .assort.toml or assort.toml at the repository root.
func Load(repoRoot string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(hardDefaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	if repoRoot != "" {
		for _, filename := range []string{".assort.toml", "assort.toml"} {
			path := filepath.Join(repoRoot, filename)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, errors.Wrapf(err, errors.ErrConfigParse,
						"failed to load repository config from %s", path)
				}
				break
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Default returns the embedded default configuration
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// The embedded defaults are compiled in; failing to parse them
		// is a programming error.
		panic(err)
	}
	return cfg
}
