// Package config loads application configuration from TOML files,
// trying a list of candidate paths so the server can run from the
// repository root or from a cmd subdirectory.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig holds basic application settings.
type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Mode    string `toml:"mode"`   // "dev" or "release"
	UseTLS  bool   `toml:"useTls"` // enable the HTTPS redirect middleware
}

// MysqlConfig holds MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	Db       int    `toml:"db"`
}

// LogConfig configures zap output and lumberjack rotation.
type LogConfig struct {
	LogPath    string `toml:"logPath"`
	FileName   string `toml:"fileName"`
	MaxSize    int    `toml:"maxSize"` // MB per file
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"` // days
	Level      string `toml:"level"`
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret             string `toml:"secret"`
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // hours
}

// AdminConfig is the campaign-administration allow-list. Users whose
// email appears here may create and delete campaigns. It is deliberately
// configuration, not code, so it can be rotated without a rebuild.
type AdminConfig struct {
	Emails []string `toml:"emails"`
}

// Config aggregates all sections.
type Config struct {
	MainConfig  `toml:"mainConfig"`
	MysqlConfig `toml:"mysqlConfig"`
	RedisConfig `toml:"redisConfig"`
	LogConfig   `toml:"logConfig"`
	JWTConfig   `toml:"jwtConfig"`
	AdminConfig `toml:"adminConfig"`
}


// config is the lazily loaded singleton.
var config *Config

// LoadConfig tries each candidate path in order and stops at the first
// file that parses.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the global configuration, loading it on first use.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
	}
	return config
}
