package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecore/pkg/cube"
	"github.com/SeamusWaldron/cubecore/pkg/notation"
	"github.com/SeamusWaldron/cubecore/pkg/scramble"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a cube interactively in the terminal",
	Long: `Turn a cube interactively. Lower-case keys turn clockwise, upper-case
keys counter-clockwise.

  u r f d l b   face turns
  m e s         slice turns
  x y z         whole-cube rotations
  ← / →         undo / redo
  tab           scramble
  0             reset to solved
  q             quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var playState string

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVarP(&playState, "state", "s", "", "Starting cube string (default: solved)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	c, err := loadCube(playState)
	if err != nil {
		return err
	}

	model := newPlayModel(c, scramble.New(), cfg.ScrambleLength)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	return nil
}

// Play model
type playModel struct {
	cube      *cube.Cube
	scrambler *scramble.Generator
	length    int

	// steps mirrors the cube history: one entry per undoable step,
	// pos of them currently applied.
	steps    []string
	pos      int
	err      error
	quitting bool
}

func newPlayModel(c *cube.Cube, g *scramble.Generator, length int) *playModel {
	return &playModel{
		cube:      c,
		scrambler: g,
		length:    length,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

// keyMove maps a key to the move it triggers.
func keyMove(key string) (notation.Move, bool) {
	if len(key) != 1 {
		return notation.Move{}, false
	}
	lower := strings.ToLower(key)
	var face notation.Face
	switch lower {
	case "u", "r", "f", "d", "l", "b", "m", "e", "s":
		face = notation.Face(strings.ToUpper(lower))
	case "x", "y", "z":
		face = notation.Face(lower)
	default:
		return notation.Move{}, false
	}

	m := notation.Move{Face: face, Turns: notation.CW}
	if key != lower {
		m.Turns = notation.CCW
	}
	return m, true
}

func (m *playModel) push(step string) {
	m.steps = append(m.steps[:m.pos], step)
	m.pos++
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch k := key.String(); k {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "left", "ctrl+z":
		if m.cube.Undo() && m.pos > 0 {
			m.pos--
		}

	case "right", "ctrl+y":
		if m.cube.Redo() && m.pos < len(m.steps) {
			m.pos++
		}

	case "tab":
		moves, err := m.scrambler.Generate(m.length)
		if err != nil {
			m.err = err
			break
		}
		m.cube.Apply(moves...)
		m.push(notation.FormatSequence(moves))

	case "0":
		m.cube.Reset()
		m.steps = nil
		m.pos = 0

	default:
		if mv, ok := keyMove(k); ok {
			m.cube.ApplyMove(mv)
			m.push(mv.Notation())
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubecore"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.cube))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Status: %s\n", cubeStatus(m.cube)))

	h := m.cube.History()
	b.WriteString(statusStyle.Render(fmt.Sprintf("History: %d/%d", h.Position(), h.Len()-1)))
	b.WriteString("\n")

	if m.pos > 0 {
		b.WriteString("Moves: ")
		start := 0
		if m.pos > 20 {
			start = m.pos - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(strings.Join(m.steps[start:m.pos], " ")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("urfdlb mes xyz=turn (shift=ccw)  ←/→=undo/redo  tab=scramble  0=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
