package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App     App     `mapstructure:"app"`
	Engine  Engine  `mapstructure:"engine"`
	Store   Store   `mapstructure:"store"`
	Logging Logging `mapstructure:"logging"`
}

// App holds general application configuration.
type App struct {
	DataDir string `mapstructure:"data_dir"`
}

// Engine holds the analytics thresholds. These values come from the tuned
// heuristic the engine must stay behaviorally compatible with; treat them as
// constants to override in exceptional cases, not knobs to re-derive.
type Engine struct {
	Clustering Clustering `mapstructure:"clustering"`
	Topics     Topics     `mapstructure:"topics"`
	Keywords   Keywords   `mapstructure:"keywords"`
}

// Clustering holds similarity clustering thresholds.
type Clustering struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	CategoryThreshold   float64 `mapstructure:"category_threshold"`
	MaxTerms            int     `mapstructure:"max_terms"`
}

// Topics holds topic discovery thresholds.
type Topics struct {
	MinArticles         int `mapstructure:"min_articles"`
	CategoryMinArticles int `mapstructure:"category_min_articles"`
}

// Keywords holds keyword extraction settings.
type Keywords struct {
	MinTermLength int `mapstructure:"min_term_length"`
}

// Store holds document store configuration.
type Store struct {
	Path string `mapstructure:"path"`
}

// Logging holds logging configuration.
type Logging struct {
	Level string `mapstructure:"level"`
}

var loaded *Config

// Load reads configuration from the optional config file, environment
// variables (NEWSLENS_ prefix), and a .env file if present, applying
// defaults for everything unset.
func Load(cfgFile string) (*Config, error) {
	// A missing .env is fine; it only supplies optional overrides.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NEWSLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".newslens")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	loaded = &cfg
	return loaded, nil
}

// Get returns the loaded configuration, loading defaults if Load was never
// called.
func Get() *Config {
	if loaded == nil {
		cfg, err := Load("")
		if err != nil {
			cfg = defaultConfig()
		}
		loaded = cfg
	}
	return loaded
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.data_dir", ".newslens")
	v.SetDefault("engine.clustering.similarity_threshold", 0.30)
	v.SetDefault("engine.clustering.category_threshold", 0.15)
	v.SetDefault("engine.clustering.max_terms", 20)
	v.SetDefault("engine.topics.min_articles", 3)
	v.SetDefault("engine.topics.category_min_articles", 2)
	v.SetDefault("engine.keywords.min_term_length", 4)
	v.SetDefault("store.path", "newslens.db")
	v.SetDefault("logging.level", "info")
}

func defaultConfig() *Config {
	return &Config{
		App: App{DataDir: ".newslens"},
		Engine: Engine{
			Clustering: Clustering{SimilarityThreshold: 0.30, CategoryThreshold: 0.15, MaxTerms: 20},
			Topics:     Topics{MinArticles: 3, CategoryMinArticles: 2},
			Keywords:   Keywords{MinTermLength: 4},
		},
		Store:   Store{Path: "newslens.db"},
		Logging: Logging{Level: "info"},
	}
}
