package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pipeline"
)

var (
	tuiHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	tuiBetaStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// BeatModel - Interactive placement browser
// =============================================================================

// BeatModel is the bubbletea model for browsing derived placements one
// beat at a time.
type BeatModel struct {
	Word   string
	Beats  []pipeline.BeatPlacement
	Cursor int
}

// NewBeatModel creates a beat browser over the given placements.
func NewBeatModel(word string, beats []pipeline.BeatPlacement) BeatModel {
	return BeatModel{Word: word, Beats: beats}
}

func (m BeatModel) Init() tea.Cmd {
	return nil
}

func (m BeatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "down", "j":
			if m.Cursor < len(m.Beats)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Beats) - 1
		}
	}
	return m, nil
}

func (m BeatModel) View() string {
	if len(m.Beats) == 0 {
		return StyleDim.Render("No beats to inspect.") + "\n"
	}

	beat := m.Beats[m.Cursor]

	var b strings.Builder
	title := fmt.Sprintf("Beat %d of %d", m.Cursor+1, len(m.Beats))
	if m.Word != "" {
		title = m.Word + " · " + title
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ beats  g/G first/last  q quit"))
	b.WriteString("\n\n")

	letter := fmt.Sprintf("%s (%s)", beat.Letter, beat.GridMode)
	if beat.EndsBeta {
		letter += "  " + tuiBetaStyle.Render("β")
	}
	b.WriteString(StyleHighlight.Render(letter))
	b.WriteString("\n\n")

	b.WriteString(renderBeatTable(beat))
	b.WriteString("\n")

	return b.String()
}

// renderBeatTable renders the two prop placements of one beat.
func renderBeatTable(beat pipeline.BeatPlacement) string {
	rows := [][]string{
		propRow(beat.Primary),
		propRow(beat.Secondary),
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Prop", "Location", "State", "Offset", "Rot", "Mirror", "Beta").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tuiHeaderStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	return t.Render()
}

// propRow formats one prop placement as a table row.
func propRow(p pipeline.PropPlacement) []string {
	loc := string(p.Location)
	if loc == "" {
		loc = "—"
	}
	return []string{
		string(p.Color),
		loc,
		p.State,
		formatPoint(p.Offset),
		strconv.Itoa(p.Rotation),
		formatBool(p.Mirrored),
		formatPoint(p.Beta),
	}
}

func formatPoint(p grid.Point) string {
	if p.X == 0 && p.Y == 0 {
		return "—"
	}
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
