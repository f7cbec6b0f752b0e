package config

import (
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Corte struct {
		PaginaDemanda int `mapstructure:"pagina_demanda"`
	} `mapstructure:"corte"`

	Telegram struct {
		Token       string
		AlertChatID int64 `mapstructure:"alert_chat_id"`
	} `mapstructure:"telegram"`
}

func Load(path string) (Config, error) {
	// .env local sobrescreve antes do viper (token do Telegram, DSN etc.)
	_ = gotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	if c.Corte.PaginaDemanda <= 0 {
		c.Corte.PaginaDemanda = 1000
	}
	return c, nil
}
