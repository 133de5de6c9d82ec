package config

import "github.com/spf13/viper"

// Config holds everything the process reads from the environment. It is
// built once in main and passed down explicitly; nothing else reads env
// vars.
type Config struct {
	AdminKey    string
	Port        int
	DatabaseURL string
	RedisAddr   string
	WebDist     string
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", 8080)
	v.SetDefault("WEB_DIST", "./web/dist")
	for _, key := range []string{"ADMIN_KEY", "DATABASE_URL", "REDIS_ADDR"} {
		_ = v.BindEnv(key)
	}

	return Config{
		AdminKey:    v.GetString("ADMIN_KEY"),
		Port:        v.GetInt("PORT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		WebDist:     v.GetString("WEB_DIST"),
	}
}
