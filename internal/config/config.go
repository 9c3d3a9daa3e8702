// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件与环境变量加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体。
// 所有键都可以通过环境变量覆盖（点号替换为下划线，例如 MYSQL_HOST）。
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Secret  SecretConfig  `mapstructure:"secret"`
	MySQL   MySQLConfig   `mapstructure:"mysql"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Session SessionConfig `mapstructure:"session"`
	Ollama  OllamaConfig  `mapstructure:"ollama"`
	Log     LogConfig     `mapstructure:"log"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

// ServerConfig 存储 HTTP 服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// SecretConfig 存储会话签名密钥。
type SecretConfig struct {
	Key string `mapstructure:"key"`
}

// MySQLConfig 存储 MySQL 数据库的连接参数。
type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// DSN 根据连接参数拼装 GORM 使用的数据源名称。
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// RedisConfig 存储 Redis 的配置。
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig 存储会话令牌相关的配置。
type SessionConfig struct {
	CookieName  string `mapstructure:"cookie_name"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// OllamaConfig 存储本地推理服务相关的配置。
type OllamaConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	Model          string  `mapstructure:"model"`
	Temperature    float64 `mapstructure:"temperature"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// SeedConfig 存储初始管理员（moderator）的种子数据。
// 应用本身不提供管理员注册入口，管理员通过该配置在首次启动时写入。
type SeedConfig struct {
	ModID       string `mapstructure:"mod_id"`
	ModName     string `mapstructure:"mod_name"`
	ModPassword string `mapstructure:"mod_password"`
}

// setDefaults 注册全部配置项的默认值。
func setDefaults() {
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("secret.key", "dev-secret-key-change-in-production")
	viper.SetDefault("mysql.host", "localhost")
	viper.SetDefault("mysql.port", "3306")
	viper.SetDefault("mysql.user", "root")
	viper.SetDefault("mysql.password", "")
	viper.SetDefault("mysql.database", "college_chatbot")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("session.cookie_name", "campus_session")
	viper.SetDefault("session.expire_hours", 24)
	viper.SetDefault("ollama.base_url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "mistral")
	viper.SetDefault("ollama.temperature", 0.7)
	viper.SetDefault("ollama.timeout_seconds", 120)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("log.output_path", "")
	viper.SetDefault("seed.mod_id", "")
	viper.SetDefault("seed.mod_name", "")
	viper.SetDefault("seed.mod_password", "")
}

// Init 初始化配置加载，优先级：环境变量 > YAML 配置文件 > 默认值。
// configPath 为空或文件不存在时，仅使用默认值与环境变量。
func Init(configPath string) {
	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configPath != "" {
		viper.SetConfigFile(configPath)
		viper.SetConfigType("yaml")
		// 配置文件是可选的，读取失败时退回默认值 + 环境变量
		_ = viper.ReadInConfig()
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}
}
