package config

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

const (
	// DriverMySQL selects the MySQL store.
	DriverMySQL = "mysql"
	// DriverSQLite selects a local SQLite file.
	DriverSQLite = "sqlite"

	envPrefix = "PHARMACY"
)

// Config holds application level configuration loaded from file and environment.
type Config struct {
	DB         DBConfig
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	ServerPort string
	LogLevel   string
}

// DBConfig describes the store connection.
type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	// DSN overrides Host/Port/User/Password/Name when set.
	DSN  string
	Path string
}

// MySQLDSN returns DSN if set, otherwise a DSN assembled from the individual fields.
func (c DBConfig) MySQLDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", DriverMySQL)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "your_username")
	v.SetDefault("db.password", "your_password")
	v.SetDefault("db.name", "pharmacy_management")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.path", "pharmacy.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
}

// Load builds Config from an optional YAML file and PHARMACY_* environment
// variables with sensible defaults. An empty file searches the working
// directory for pharmacy.yaml; a missing file is not an error.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("pharmacy")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		DB: DBConfig{
			Driver:   strings.ToLower(v.GetString("db.driver")),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			DSN:      v.GetString("db.dsn"),
			Path:     v.GetString("db.path"),
		},
		RedisAddr:  v.GetString("redis.addr"),
		RedisDB:    v.GetInt("redis.db"),
		RedisPass:  v.GetString("redis.password"),
		ServerPort: v.GetString("server.port"),
		LogLevel:   v.GetString("log.level"),
	}

	switch cfg.DB.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported db.driver %q", cfg.DB.Driver)
	}

	return cfg, nil
}
