package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"       _                  _     ",
	"  __ _| | __ _  _____   _(_)____",
	" / _` | |/ _` |/ _ \\ \\ / / |_  /",
	"| (_| | | (_| | (_) \\ V /| |/ / ",
	" \\__,_|_|\\__, |\\___/ \\_/ |_/___|",
	"         |___/                  ",
}

var bannerColors = []string{"#34d399", "#2dd4bf", "#22d3ee", "#38bdf8", "#60a5fa", "#818cf8"}

// PrintBanner writes the algoviz banner to w, coloured when the terminal allows it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}
