package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// 開発用のJWTシークレット（prodでは使えない）
const devJWTSecret = "dev_secret_change_me"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv       string // dev/test/prod
	StoreDriver string // postgres/memory

	JWTSecret string // JWT署名シークレット

	FEURL          string // フロントURL（CORS）
	MetricsEnabled bool   // /metrics を出すか
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		GoEnv:       strings.ToLower(getenv("GO_ENV", "dev")),
		StoreDriver: strings.ToLower(getenv("STORE_DRIVER", StoreDriverPostgres)),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		FEURL:       getenv("FE_URL", "*"),
	}

	metrics, err := parseBool("METRICS_ENABLED", true)
	if err != nil {
		return Config{}, err
	}
	cfg.MetricsEnabled = metrics

	//値チェック
	switch cfg.GoEnv {
	case "dev", "test", "prod":
	default:
		return Config{}, fmt.Errorf("GO_ENV must be dev, test or prod")
	}
	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be postgres or memory")
	}
	if _, err := strconv.Atoi(strings.TrimPrefix(cfg.Port, ":")); err != nil {
		return Config{}, fmt.Errorf("PORT must be number: %w", err)
	}

	//本番はシークレット必須
	if cfg.JWTSecret == "" {
		if cfg.IsProd() {
			return Config{}, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

// ":8080" 形式のアドレス
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func parseBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
}
