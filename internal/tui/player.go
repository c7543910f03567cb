package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qasmflow/internal/qasm"
)

type tickMsg time.Time

// Player steps through the recorded snapshots of a parsed circuit, one
// statement at a time, with optional autoplay.
type Player struct {
	timeline *qasm.Timeline
	indexes  []int
	pos      int
	playing  bool
	interval time.Duration

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewPlayer builds a player over the given timeline. The interval controls
// autoplay speed.
func NewPlayer(timeline *qasm.Timeline, interval time.Duration) *Player {
	return &Player{
		timeline: timeline,
		indexes:  timeline.Indexes(),
		interval: interval,
	}
}

func (p *Player) Init() tea.Cmd {
	return nil
}

func (p *Player) tick() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		bodyHeight := msg.Height - 6
		if bodyHeight < 3 {
			bodyHeight = 3
		}
		if !p.ready {
			p.viewport = viewport.New(msg.Width-4, bodyHeight)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width - 4
			p.viewport.Height = bodyHeight
		}
		p.viewport.SetContent(p.snapshotView())
		return p, nil

	case tickMsg:
		if !p.playing {
			return p, nil
		}
		if p.pos < len(p.indexes)-1 {
			p.pos++
			p.refresh()
			return p, p.tick()
		}
		p.playing = false
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "right", "l":
			if p.pos < len(p.indexes)-1 {
				p.pos++
				p.refresh()
			}
		case "left", "h":
			if p.pos > 0 {
				p.pos--
				p.refresh()
			}
		case "home", "r":
			p.pos = 0
			p.refresh()
		case "end":
			p.pos = len(p.indexes) - 1
			p.refresh()
		case " ":
			p.playing = !p.playing
			if p.playing {
				return p, p.tick()
			}
		case "up", "k":
			p.viewport.LineUp(1)
		case "down", "j":
			p.viewport.LineDown(1)
		}
	}
	return p, nil
}

func (p *Player) refresh() {
	if p.ready {
		p.viewport.SetContent(p.snapshotView())
		p.viewport.GotoTop()
	}
}

// snapshotView renders the current snapshot. Nodes and edges that were not
// present in the previous snapshot are highlighted.
func (p *Player) snapshotView() string {
	if len(p.indexes) == 0 {
		return dimStyle.Render("empty timeline")
	}

	idx := p.indexes[p.pos]
	graph, ok := p.timeline.Snapshot(idx)
	if !ok {
		return dimStyle.Render(fmt.Sprintf("missing snapshot %d", idx))
	}

	prevNodes, prevEdges := 0, 0
	if p.pos > 0 {
		if prev, ok := p.timeline.Snapshot(p.indexes[p.pos-1]); ok {
			prevNodes = len(prev.Nodes)
			prevEdges = len(prev.Edges)
		}
	}

	var b strings.Builder

	b.WriteString(sectionStyle.Render("Bits"))
	b.WriteString("\n")
	for i, node := range graph.Nodes {
		if node.IsGate() {
			continue
		}
		writer := "-"
		if node.LastWriter != nil {
			writer = *node.LastWriter
		}
		line := fmt.Sprintf("  %-8s %-14s last: %s", node.ID, node.Type, writer)
		if i >= prevNodes {
			line = newEntryStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Gates"))
	b.WriteString("\n")
	gates := 0
	for i, node := range graph.Nodes {
		if !node.IsGate() {
			continue
		}
		gates++
		label := fmt.Sprintf("  %-6s %-10s %s", node.ID, node.Name, node.Type)
		if node.GateInfo != "" {
			label += dimStyle.Render("  (" + formatGateInfo(node.GateInfo) + ")")
		}
		if i >= prevNodes {
			label = newEntryStyle.Render(label)
		} else {
			label = gateStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
	}
	if gates == 0 {
		b.WriteString(dimStyle.Render("  none yet"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Edges"))
	b.WriteString("\n")
	for i, edge := range graph.Edges {
		line := fmt.Sprintf("  %s -> %s", edge.Source, edge.Target)
		if i >= prevEdges {
			line = newEntryStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(graph.Edges) == 0 {
		b.WriteString(dimStyle.Render("  none yet"))
		b.WriteString("\n")
	}

	return b.String()
}

func (p *Player) View() string {
	if !p.ready {
		return "loading..."
	}

	idx := p.indexes[p.pos]
	title := titleStyle.Render("qasmflow") +
		dimStyle.Render(fmt.Sprintf("  step %d/%d  statement %d", p.pos+1, len(p.indexes), idx))

	status := "paused"
	if p.playing {
		status = "playing"
	}
	help := statusStyle.Render(status) +
		dimStyle.Render("  ←/→ step · home/end jump · space play · q quit")

	body := frameStyle.Render(p.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

// Run starts the player over the timeline in an alt-screen terminal session
// and blocks until the user quits.
func Run(timeline *qasm.Timeline, interval time.Duration) error {
	player := NewPlayer(timeline, interval)
	_, err := tea.NewProgram(player, tea.WithAltScreen()).Run()
	return err
}
