package types

import "log/slog"

// Candy represents one reward hidden behind a calendar door.
type Candy struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Copy returns an independent duplicate of the candy.
// The calendar relies on this at construction and on every reset so that
// the working list never shares storage with the caller's input or the backup.
func (c Candy) Copy() Candy {
	return Candy{
		Name:     c.Name,
		Quantity: c.Quantity,
	}
}

// ConfigCalendar represents the construction input for a calendar
type ConfigCalendar struct {
	Candies []Candy `json:"candies" yaml:"candies"`
}

// Config interface
type Config interface {
	LoadConfig(path string) (ConfigCalendar, error)
}

// Utils interface for driver-side plumbing
type Utils interface {
	GetLogger() *slog.Logger
}

// Error
type errString string

func (e errString) Error() string {
	return string(e)
}

const ErrEmptyCalendarConfig = errString("calendar config contains no candies")
