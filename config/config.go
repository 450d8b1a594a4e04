// Package config loads process configuration with viper, the way the
// teacher's common/config/app_config.go does — but for a single rules
// engine instead of a fleet of connector/game/gate/hall node types, so
// there's one Config shape instead of six, and no server-type dispatch.
// Grounded on app_config.go's Load (viper.New + AutomaticEnv + env-key
// replacer) and fixed_config.go's WatchConfig/OnConfigChange for live
// reload of the tunables that are safe to change mid-process (log level,
// cache sizing) without restarting an in-progress round.
package config

import (
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// LogConf configures the ambient logger.
type LogConf struct {
	Level string `mapstructure:"level"`
}

// MongoConf configures the event-log persistence backend.
type MongoConf struct {
	URL         string `mapstructure:"url"`
	Db          string `mapstructure:"db"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	MinPoolSize int    `mapstructure:"minPoolSize"`
	MaxPoolSize int    `mapstructure:"maxPoolSize"`
}

// RedisConf configures the distributed tier of the shanten lookup cache.
type RedisConf struct {
	Addr         string `mapstructure:"addr"`
	Password     string `mapstructure:"password"`
	PoolSize     int    `mapstructure:"poolSize"`
	MinIdleConns int    `mapstructure:"minIdleConns"`
}

// NatsConf configures the event-stream publisher.
type NatsConf struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

// CacheConf configures the local ristretto tier.
type CacheConf struct {
	MaxCostBytes int64 `mapstructure:"maxCostBytes"`
	TTLSeconds   int   `mapstructure:"ttlSeconds"`
}

// GameConf holds the rule-variant tunables spec.md leaves configurable:
// player count, red-five count, and the starting score seats begin a
// game with.
type GameConf struct {
	NumPlayers     int  `mapstructure:"numPlayers"`
	RedFives       int  `mapstructure:"redFives"`
	StartingScore  int  `mapstructure:"startingScore"`
	HasKuitan      bool `mapstructure:"hasKuitan"`
	HasDoubleRiichi bool `mapstructure:"hasDoubleRiichi"`
}

// Config is the full process configuration.
type Config struct {
	Log   LogConf   `mapstructure:"log"`
	Mongo MongoConf `mapstructure:"mongo"`
	Redis RedisConf `mapstructure:"redis"`
	Nats  NatsConf  `mapstructure:"nats"`
	Cache CacheConf `mapstructure:"cache"`
	Game  GameConf  `mapstructure:"game"`
}

var (
	mu      sync.RWMutex
	current Config
)

// Load reads configFile into the process-wide Config and starts
// watching it for changes; onChange (optional) is called with the
// newly reloaded Config every time the file is rewritten.
func Load(configFile string, onChange func(Config)) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}

	mu.Lock()
	current = cfg
	mu.Unlock()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		var reloaded Config
		if err := v.Unmarshal(&reloaded); err != nil {
			return
		}
		mu.Lock()
		current = reloaded
		mu.Unlock()
		if onChange != nil {
			onChange(reloaded)
		}
	})

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.numPlayers", 4)
	v.SetDefault("game.redFives", 3)
	v.SetDefault("game.startingScore", 25000)
	v.SetDefault("game.hasKuitan", true)
	v.SetDefault("game.hasDoubleRiichi", true)
	v.SetDefault("cache.maxCostBytes", int64(1<<28))
	v.SetDefault("cache.ttlSeconds", 600)
	v.SetDefault("log.level", "info")
}

// Current returns the most recently loaded Config.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
