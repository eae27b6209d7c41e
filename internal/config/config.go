package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Renderer RendererConfig `mapstructure:"renderer"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
}

// RendererConfig locates the OpenSCAD binary and the fonts directory and
// bounds the render. Timeout 0 waits for the engine indefinitely.
type RendererConfig struct {
	OpenSCADPath string        `mapstructure:"openscad_path"`
	FontsDir     string        `mapstructure:"fonts_dir"`
	WorkDir      string        `mapstructure:"work_dir"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("KEYCHAIN")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Config file wins; fall back to the environment, then to a binary on PATH.
	if cfg.Renderer.OpenSCADPath == "" {
		if p := os.Getenv("OPENSCAD_PATH"); p != "" {
			cfg.Renderer.OpenSCADPath = p
		} else {
			cfg.Renderer.OpenSCADPath = "openscad"
		}
	}
	if cfg.Renderer.FontsDir == "" {
		cfg.Renderer.FontsDir = "./fonts"
	}

	return cfg, nil
}
