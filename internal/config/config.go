package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB     DBConfig     `mapstructure:"db"`
	Repair RepairConfig `mapstructure:"repair"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type RepairConfig struct {
	AdminGroup string `mapstructure:"admin_group"`
}

func Load(configDir string) (*Config, error) {
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/configs")
	viper.SetConfigName("settings")
	viper.SetConfigType("yml")

	viper.SetDefault("repair.admin_group", "admin")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
