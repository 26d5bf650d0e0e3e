package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/state"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/system"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleLabel = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("8"))
	styleBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	stateStyles = map[state.GameState]lipgloss.Style{
		state.StatePlaying:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		state.StateGameOver: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		state.StateCleared:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	}
)

// summary accumulates tick results from a headless run
type summary struct {
	Title    string
	Ticks    int
	State    state.GameState
	Fired    int
	Popped   int
	Spawned  int
	Vanished int
	Balls    int
}

func (s *summary) add(res system.TickResult) {
	s.Ticks = res.Tick
	s.State = res.State
	if res.Fired {
		s.Fired++
	}
	s.Popped += res.Pops.Popped
	s.Spawned += res.Pops.Spawned
	s.Vanished += res.Pops.Vanished
}

func (s summary) render() string {
	stateStyle, ok := stateStyles[s.State]
	if !ok {
		stateStyle = lipgloss.NewStyle()
	}

	rows := []struct {
		label string
		value string
	}{
		{"result", stateStyle.Render(s.State.String())},
		{"ticks", fmt.Sprint(s.Ticks)},
		{"shots", fmt.Sprint(s.Fired)},
		{"pops", fmt.Sprint(s.Popped)},
		{"spawned", fmt.Sprint(s.Spawned)},
		{"vanished", fmt.Sprint(s.Vanished)},
		{"balls", fmt.Sprint(s.Balls)},
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(s.Title))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(styleLabel.Render(r.label))
		b.WriteString(r.value)
	}
	return styleBox.Render(b.String())
}
