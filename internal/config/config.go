package config

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adventsim/advent-calendar-go/internal/types"
)

type ConfigImpl struct{}

func (c *ConfigImpl) LoadConfig(path string) (types.ConfigCalendar, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.ConfigCalendar{}, err
	}
	defer file.Close()
	var cfg types.ConfigCalendar
	err = json.NewDecoder(file).Decode(&cfg)
	return cfg, err
}

func (c *ConfigImpl) LoadYAML(path string) (YAMLConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return YAMLConfig{}, err
	}
	defer file.Close()
	var cfg YAMLConfig
	err = yaml.NewDecoder(file).Decode(&cfg)
	return cfg, err
}
