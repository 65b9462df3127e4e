package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the pricewalk banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"            _                         _ _    ", "#34d399"},
		{"  _ __ _ __(_) ___ _____      ____ _| | | __", "#2dd4bf"},
		{" | '_ \\| '__| |/ __/ _ \\ \\ /\\ / / _` | | |/ /", "#22d3ee"},
		{" | |_) | |  | | (_|  __/\\ V  V / (_| | |   < ", "#38bdf8"},
		{" | .__/|_|  |_|\\___\\___| \\_/\\_/ \\__,_|_|_|\\_\\", "#60a5fa"},
		{" |_|", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String(" v"+version).Faint())
	fmt.Fprintln(w)
}
