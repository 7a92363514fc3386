package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Advisor AdvisorConfig `mapstructure:"advisor"`
}

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Endpoint string `mapstructure:"endpoint"`
}

type AdvisorConfig struct {
	CatalogPath   string   `mapstructure:"catalog_path"`
	ModelPath     string   `mapstructure:"model_path"`
	TrainingRows  int      `mapstructure:"training_rows"`
	TrainingSeed  int64    `mapstructure:"training_seed"`
	MaxIterations int      `mapstructure:"max_iterations"`
	Training      Training `mapstructure:"training"`
}

// Training holds the value sets the synthesizer samples from. Empty slices
// fall back to the built-in defaults below.
type Training struct {
	Interests   []string `mapstructure:"interests"`
	CareerGoals []string `mapstructure:"career_goals"`
	SkillLevels []string `mapstructure:"skill_levels"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	// Seed 0 is a valid configuration, so its default cannot be a
	// post-unmarshal zero-value check like the others.
	viper.SetDefault("advisor.training_seed", 42)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Set default values
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Server.Endpoint == "" {
		config.Server.Endpoint = "/api"
	}
	if config.Advisor.CatalogPath == "" {
		config.Advisor.CatalogPath = "data/coursea_data.csv"
	}
	if config.Advisor.ModelPath == "" {
		config.Advisor.ModelPath = "course_model.json"
	}
	if config.Advisor.TrainingRows == 0 {
		config.Advisor.TrainingRows = 400
	}
	if config.Advisor.MaxIterations == 0 {
		config.Advisor.MaxIterations = 1000
	}

	return &config, nil
}
