package calendar

import (
	"fmt"
	"strings"

	"github.com/adventsim/advent-calendar-go/internal/types"
)

const (
	doorsPerLine    = 4
	doorFormat      = "[%s]"
	candyFormat     = "%dx%s"
	emptyDoorRender = "   "
)

// Calendar simulates an Advent calendar of candies. Doors are numbered from 1
// and become openable once the day counter has reached their number. The
// calendar owns its candy lists exclusively; the backup taken at construction
// is what Reset restores from.
//
// Single-owner use only. Callers needing concurrent access must synchronize
// externally.
type Calendar struct {
	currentDay int
	maxDays    int
	doors      []bool
	candies    []types.Candy
	backup     []types.Candy
}

// New creates a calendar holding the given candies, one per door.
// The input is copied; an empty or nil list yields a valid calendar with no
// doors. The initial day is 0, the day before door 1 becomes openable.
func New(candies []types.Candy) *Calendar {
	c := &Calendar{
		backup:  copyCandyList(candies),
		maxDays: len(candies),
	}
	c.Reset()
	return c
}

// Day returns the current day.
func (c *Calendar) Day() int {
	return c.currentDay
}

// MaxDays returns the number of doors in the calendar.
func (c *Calendar) MaxDays() int {
	return c.maxDays
}

// NextDay attempts to advance the current day by one.
// It reports whether the day was advanced.
func (c *Calendar) NextDay() bool {
	return c.NextDays(1)
}

// NextDays attempts to advance the current day by days.
// The day only moves forward and never past the last door: a non-positive
// days or an advance beyond MaxDays is refused and leaves the state
// unchanged. It reports whether the day was advanced.
func (c *Calendar) NextDays(days int) bool {
	if days <= 0 || c.currentDay+days > c.maxDays {
		return false
	}

	c.currentDay += days
	return true
}

// IsDoorOpen reports whether the door for the given day number is open.
// Numbers outside [1, MaxDays] report false.
func (c *Calendar) IsDoorOpen(number int) bool {
	return number >= 1 && number <= c.maxDays && c.doors[number-1]
}

// OpenDoor attempts to open the door with the given number and returns the
// candy behind it. It returns nil if the number is below 1, the door's day
// has not been reached yet, or the door is already open. The returned candy
// is a view into the calendar's working list; it stays valid until Reset.
func (c *Calendar) OpenDoor(number int) *types.Candy {
	if number < 1 || number > c.currentDay || c.IsDoorOpen(number) {
		return nil
	}

	c.doors[number-1] = true
	return &c.candies[number-1]
}

// OpenDoors attempts to open every door in numbers, in order, under the same
// rule as OpenDoor. Refused numbers are skipped without effect; the result
// holds only the candies behind doors that actually opened. A number appearing
// twice opens its door on the first occurrence only.
func (c *Calendar) OpenDoors(numbers []int) []*types.Candy {
	opened := make([]*types.Candy, 0, len(numbers))
	for _, number := range numbers {
		if candy := c.OpenDoor(number); candy != nil {
			opened = append(opened, candy)
		}
	}
	return opened
}

// NumberOfUnopenedDoors returns how many doors are still closed among the
// days reached so far. Doors beyond the current day are not counted.
func (c *Calendar) NumberOfUnopenedDoors() int {
	count := 0
	for i := 0; i < c.currentDay; i++ {
		if !c.doors[i] {
			count++
		}
	}
	return count
}

// Reset restores the calendar to its just-constructed state: day 0, every
// door closed, and the candies re-copied from the backup taken at
// construction. Candy pointers handed out by OpenDoor become stale.
func (c *Calendar) Reset() {
	c.currentDay = 0
	c.doors = make([]bool, c.maxDays)
	c.candies = copyCandyList(c.backup)
}

func copyCandyList(toCopy []types.Candy) []types.Candy {
	copied := make([]types.Candy, 0, len(toCopy))
	for _, candy := range toCopy {
		copied = append(copied, candy.Copy())
	}
	return copied
}

// String renders the calendar as a grid of doors, four per line. An open door
// shows an empty cell, a closed one the quantity and name of its candy.
func (c *Calendar) String() string {
	var lines []string
	var currentLine strings.Builder
	for i := 0; i < c.maxDays; i++ {
		if c.doors[i] {
			currentLine.WriteString(fmt.Sprintf(doorFormat, emptyDoorRender))
		} else {
			content := fmt.Sprintf(candyFormat, c.candies[i].Quantity, c.candies[i].Name)
			currentLine.WriteString(fmt.Sprintf(doorFormat, content))
		}

		if i%doorsPerLine == doorsPerLine-1 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
