package config

import "github.com/adventsim/advent-calendar-go/internal/types"

// YAMLConfig represents the application's configuration.
type YAMLConfig struct {
	Calendar types.ConfigCalendar `yaml:"calendar"`
}
