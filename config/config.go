package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	conf *viper.Viper
	once sync.Once
)

// GetConfig - returns application configuration
func GetConfig() *viper.Viper {

	once.Do(func() {

		conf = viper.New()

		conf.SetConfigName("config")
		conf.SetConfigType("yaml")
		conf.AddConfigPath(".")
		conf.AddConfigPath("/etc/privacyguard")

		conf.SetEnvPrefix("pg")
		conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		conf.AutomaticEnv()

		// app
		conf.SetDefault("app.port", "5001")
		conf.SetDefault("app.environment", "development")
		conf.SetDefault("app.secret", "changeme")
		conf.SetDefault("app.log_path", "/var/log/privacyguard")

		// database
		conf.SetDefault("database.driver", "sqlite3")
		conf.SetDefault("database.dbname", "leads.db")

		// redis
		conf.SetDefault("redis.host", "127.0.0.1")
		conf.SetDefault("redis.port", "6379")

		// smtp
		conf.SetDefault("smtp.host", "smtp.gmail.com")
		conf.SetDefault("smtp.port", 587)
		conf.SetDefault("smtp.sender", "Luxury Automotive")

		// llm
		conf.SetDefault("llm.model", "llama3.2:3b")
		conf.SetDefault("llm.host", "http://127.0.0.1:11434")

		// all keys can come from config.yaml or PG_* env vars
		_ = conf.ReadInConfig()
	})

	return conf
}
