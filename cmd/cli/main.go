package main

import (
	"fmt"
	"log/slog"
	"os"

	bubbletea "github.com/charmbracelet/bubbletea"

	"github.com/adventsim/advent-calendar-go/cmd/cli/tui"
	"github.com/adventsim/advent-calendar-go/internal/calendar"
	"github.com/adventsim/advent-calendar-go/internal/config"
	"github.com/adventsim/advent-calendar-go/internal/types"
	"github.com/adventsim/advent-calendar-go/internal/utils"
)

const defaultConfigPath = "./samples/calendar.yaml"

func main() {
	configPath := defaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := (&config.ConfigImpl{}).LoadYAML(configPath)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if len(cfg.Calendar.Candies) == 0 {
		fmt.Println("Error loading config:", types.ErrEmptyCalendarConfig)
		os.Exit(1)
	}

	logChan := make(chan string, 16)
	u := utils.NewDefaultUtils(slog.LevelInfo, &tui.ChannelWriter{Ch: logChan})

	cal := calendar.New(cfg.Calendar.Candies)
	u.GetLogger().Info("calendar loaded", "doors", cal.MaxDays(), "config", configPath)

	model := tui.NewModel(cal, u.GetLogger(), logChan)
	p := bubbletea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
