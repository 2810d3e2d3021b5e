package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMongo    = "mongo"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Media    MediaConfig
	CORS     CORSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// IsProduction reports whether internal error detail must be hidden.
func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseConfig holds the relational database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// StoreConfig selects the profile store backend
type StoreConfig struct {
	Driver     string
	SQLitePath string
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis configuration. An empty URL disables redis.
type RedisConfig struct {
	URL      string
	Password string
}

// MediaConfig holds image hosting configuration
type MediaConfig struct {
	CloudinaryURL string
	Folder        string
	Dir           string
	PublicBaseURL string
}

// CORSConfig holds the origins the public site is served from
type CORSConfig struct {
	AllowedOrigins []string
}

var defaults = map[string]interface{}{
	"SERVER_PORT":           "5001",
	"SERVER_ENV":            "development",
	"DB_HOST":               "localhost",
	"DB_PORT":               "5432",
	"DB_USER":               "postgres",
	"DB_PASSWORD":           "postgres",
	"DB_NAME":               "msc_team",
	"DB_SSLMODE":            "disable",
	"STORE_DRIVER":          StoreDriverPostgres,
	"SQLITE_PATH":           "msc_team.db",
	"MONGO_URI":             "mongodb://localhost:27017",
	"MONGO_DATABASE":        "msc_team",
	"REDIS_URL":             "",
	"REDIS_PASSWORD":        "",
	"CLOUDINARY_URL":        "",
	"CLOUDINARY_FOLDER":     "msc-team",
	"MEDIA_DIR":             "uploads",
	"MEDIA_PUBLIC_BASE_URL": "http://localhost:5001",
	"CORS_ALLOWED_ORIGINS":  "http://localhost:5173,http://localhost:3000",
}

// Load loads configuration from environment variables, optionally layered
// over the file named by CONFIG_FILE.
func Load() *Config {
	v := newViper()

	return &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
			Env:  v.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     getInt(v, "DB_PORT", 5432),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(v.GetString("STORE_DRIVER")),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DATABASE"),
		},
		Redis: RedisConfig{
			URL:      v.GetString("REDIS_URL"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		Media: MediaConfig{
			CloudinaryURL: v.GetString("CLOUDINARY_URL"),
			Folder:        v.GetString("CLOUDINARY_FOLDER"),
			Dir:           v.GetString("MEDIA_DIR"),
			PublicBaseURL: strings.TrimRight(v.GetString("MEDIA_PUBLIC_BASE_URL"), "/"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config file %s not loaded, using environment only: %v", file, err)
		}
	}
	return v
}

func getInt(v *viper.Viper, key string, defaultValue int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key))); err == nil {
		return n
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
