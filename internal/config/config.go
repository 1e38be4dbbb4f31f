package config

import (
	"fmt"
	"os"
	"strings"
)

type InterConfig struct {
	ClientID     string
	ClientSecret string
	CertPath     string
	KeyPath      string
	PixKey       string
	AuthURL      string
	APIURL       string
}

type Config struct {
	ServerPort string

	// Persistência: DATABASE_URL vazio → arquivo JSON local.
	DatabaseURL string
	DataFile    string
	AuditFile   string

	RedisURL string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	AdminToken        string

	AuthStrategy string
	JWTSecret    string

	Inter    InterConfig
	MockMode bool
}

const (
	DefaultInterAuthURL = "https://cdpj.partners.bancointer.com.br/oauth/v2/token"
	DefaultInterAPIURL  = "https://cdpj.partners.bancointer.com.br/pix/v2"
)

func Load() *Config {
	interClientID := getEnv("INTER_CLIENT_ID", "")

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "3000"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DataFile:    getEnv("DATA_FILE", "appointments.json"),
		AuditFile:   getEnv("AUDIT_FILE", "audit.log"),

		RedisURL: getEnv("REDIS_URL", ""),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminToken:        getEnv("ADMIN_TOKEN", "admin-token-secret-123"),

		AuthStrategy: getEnv("AUTH_STRATEGY", "static"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),

		Inter: InterConfig{
			ClientID:     interClientID,
			ClientSecret: getEnv("INTER_CLIENT_SECRET", ""),
			CertPath:     getEnv("INTER_CERT_PATH", "./certs/inter_cert.crt"),
			KeyPath:      getEnv("INTER_KEY_PATH", "./certs/inter_key.key"),
			PixKey:       getEnv("INTER_PIX_KEY", ""),
			AuthURL:      getEnv("INTER_AUTH_URL", DefaultInterAuthURL),
			APIURL:       getEnv("INTER_API_URL", DefaultInterAPIURL),
		},

		// Sem client_id não há como autenticar no banco: mock obrigatório.
		MockMode: getEnv("MOCK_MODE", "") == "true" || interClientID == "",
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
