package skills

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/skillreg/skillreg/pkg/logger"
)

// Config is the "skills" section of the configuration
type Config struct {
	Enabled         bool     `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Allowed         []string `mapstructure:"allowed" json:"allowed" yaml:"allowed"`
	Dirs            []string `mapstructure:"dirs" json:"dirs" yaml:"dirs"`
	Strict          bool     `mapstructure:"strict" json:"strict" yaml:"strict"`
	CacheFileBodies bool     `mapstructure:"cache_file_bodies" json:"cache_file_bodies" yaml:"cache_file_bodies"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		Allowed:         []string{},
		Dirs:            []string{},
		Strict:          false,
		CacheFileBodies: true,
	}
}

// SetDefaults registers the skills defaults with viper so that environment
// variables for these keys are picked up
func SetDefaults() {
	defaults := DefaultConfig()
	viper.SetDefault("skills.enabled", defaults.Enabled)
	viper.SetDefault("skills.allowed", defaults.Allowed)
	viper.SetDefault("skills.dirs", defaults.Dirs)
	viper.SetDefault("skills.strict", defaults.Strict)
	viper.SetDefault("skills.cache_file_bodies", defaults.CacheFileBodies)
}

// LoadConfig decodes the skills section from viper. Comma separated strings
// (as set from the environment) are accepted for list keys.
func LoadConfig() (Config, error) {
	SetDefaults()

	config := DefaultConfig()
	raw, _ := viper.AllSettings()["skills"].(map[string]interface{})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return config, errors.Wrap(err, "failed to create skills config decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return config, errors.Wrap(err, "failed to decode skills config")
	}

	return config, nil
}

// DiscoveryOptions turns the configuration into discovery options. Extra
// directories are searched after the default ones.
func (c Config) DiscoveryOptions() []DiscoveryOption {
	opts := []DiscoveryOption{
		WithDefaultDirs(),
		WithAllowlist(c.Allowed...),
		WithStrict(c.Strict),
	}

	if len(c.Dirs) > 0 {
		extra := make([]SkillDir, 0, len(c.Dirs))
		for _, dir := range c.Dirs {
			extra = append(extra, SkillDir{Path: dir, Source: SourceUserGlobal})
		}
		opts = append(opts, WithAdditionalSkillDirs(extra...))
	}

	return opts
}

// Initialize builds the skill registry from configuration. It respects
// skills.enabled and the --no-skills flag (bound to no_skills in viper);
// when skills are disabled an empty registry is returned.
func Initialize(ctx context.Context) (*Registry, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if !config.Enabled || viper.GetBool("no_skills") {
		logger.G(ctx).Debug("skills are disabled")
		return Empty(WithFileBodyCache(config.CacheFileBodies)), nil
	}

	discovery, err := NewDiscovery(config.DiscoveryOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create skill discovery")
	}

	return New(ctx, discovery, WithFileBodyCache(config.CacheFileBodies))
}
