// Package config загружает конфигурацию сервиса из TOML файла.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	WhatsApp  WhatsAppConfig  `toml:"whatsapp"`
	Site      SiteConfig      `toml:"site"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeoutSec  int    `toml:"read_timeout_sec"`
	WriteTimeoutSec int    `toml:"write_timeout_sec"`
	IdleTimeoutSec  int    `toml:"idle_timeout_sec"`
	AdminToken      string `toml:"admin_token"`
}

// Addr возвращает адрес для ListenAndServe
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ReadTimeout возвращает таймаут чтения запроса
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSec) * time.Second
}

// WriteTimeout возвращает таймаут записи ответа
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}

// IdleTimeout возвращает таймаут простоя keep-alive соединения
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSec) * time.Second
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Name         string `toml:"name"`
	SSLMode      string `toml:"sslmode"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

// RateLimitConfig настройки лимитера публичных бронирований
type RateLimitConfig struct {
	MaxRequests   int `toml:"max_requests"`
	WindowSeconds int `toml:"window_seconds"`
}

// Window возвращает длительность скользящего окна
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// WhatsAppConfig настройки Twilio WhatsApp уведомлений
type WhatsAppConfig struct {
	AccountSID  string `toml:"account_sid"`
	AuthToken   string `toml:"auth_token"`
	FromNumber  string `toml:"from_number"`
	AdminNumber string `toml:"admin_number"`
}

// SiteConfig настройки публичного сайта (ссылки в уведомлениях)
type SiteConfig struct {
	BaseURL string `toml:"base_url"`
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeoutSec:  10,
			WriteTimeoutSec: 15,
			IdleTimeoutSec:  60,
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		Logs: LogsConfig{
			File:  "booking-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "booking-service",
		},
		RateLimit: RateLimitConfig{
			MaxRequests:   5,
			WindowSeconds: 60,
		},
	}
}
