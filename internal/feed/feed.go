// Package feed supplies gauge readings from outside the UI loop. Feeds run
// on their own goroutine and hand readings to the program as messages.
package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"weather-gauges.klederson.com/internal/gauge"
)

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// ReadingMsg carries one reading for every gauge of a kind.
type ReadingMsg struct {
	Kind   gauge.Kind
	Values []float64
}

// ClosedMsg reports that a feed stopped producing readings. Err is nil at a
// clean end of input.
type ClosedMsg struct {
	Source string
	Err    error
}
