package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubecore/pkg/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps each color to a terminal background.
var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("15"),
	cube.Red:    lipgloss.Color("160"),
	cube.Green:  lipgloss.Color("34"),
	cube.Yellow: lipgloss.Color("226"),
	cube.Orange: lipgloss.Color("208"),
	cube.Blue:   lipgloss.Color("27"),
	cube.Empty:  lipgloss.Color("238"),
}

func sticker(c cube.Color) string {
	return lipgloss.NewStyle().
		Background(stickerColors[c]).
		Foreground(lipgloss.Color("0")).
		Render(" " + c.String() + " ")
}

// renderNet draws the unfolded cube with colored stickers:
//
//	  U
//	L F R B
//	  D
func renderNet(c *cube.Cube) string {
	const pad = "         "
	var b strings.Builder

	row := func(f cube.Face, r int) {
		colors := c.FaceColors(f)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(colors[r*3+col]))
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(cube.U, r)
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, f := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			row(f, r)
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(cube.D, r)
		b.WriteString("\n")
	}
	return b.String()
}
