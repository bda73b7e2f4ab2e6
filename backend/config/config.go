package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string
}

type HTTP struct {
	Host string
	Port int
}

type Admin struct {
	Username string
	Password string
}

type Redis struct {
	Addr string
	Pass string
	DB   int
}

type Leaderboard struct {
	Limit    int
	CacheTTL time.Duration
}

type Config struct {
	HTTP        HTTP
	DB          DB
	Admin       Admin
	Redis       Redis
	Leaderboard Leaderboard
	JWT         struct {
		Secret   string
		Issuer   string
		ExpHours int
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.db.driver", "mysql")
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "ielts_db")
	v.SetDefault("server.db.path", "ieltsim.db")
	v.SetDefault("server.admin.username", "admin")
	v.SetDefault("server.admin.password", "admin123")
	v.SetDefault("server.leaderboard.limit", 10)
	v.SetDefault("server.leaderboard.cache_ttl", "30s")
	v.SetDefault("server.redis.addr", "")
	v.SetDefault("server.redis.pass", "")
	v.SetDefault("server.redis.db", 0)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("server.db.driver"),
			Host:   v.GetString("server.db.host"),
			Port:   v.GetInt("server.db.port"),
			User:   v.GetString("server.db.user"),
			Pass:   v.GetString("server.db.pass"),
			Name:   v.GetString("server.db.name"),
			Path:   v.GetString("server.db.path"),
		},
		Admin: Admin{
			Username: v.GetString("server.admin.username"),
			Password: v.GetString("server.admin.password"),
		},
		Redis: Redis{
			Addr: v.GetString("server.redis.addr"),
			Pass: v.GetString("server.redis.pass"),
			DB:   v.GetInt("server.redis.db"),
		},
		Leaderboard: Leaderboard{
			Limit:    v.GetInt("server.leaderboard.limit"),
			CacheTTL: v.GetDuration("server.leaderboard.cache_ttl"),
		},
	}
	cfg.JWT.Secret = v.GetString("server.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("server.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "ieltsim"
	}
	cfg.JWT.ExpHours = v.GetInt("server.jwt.exp_hours")
	if cfg.JWT.ExpHours <= 0 {
		cfg.JWT.ExpHours = 24
	}
	if cfg.Leaderboard.Limit <= 0 {
		cfg.Leaderboard.Limit = 10
	}
	return cfg, nil
}
