package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{` ____                _ _      _   `, "#38bdf8"},
	{`|  _ \  ___ _ __ ___| (_) ___| |_ `, "#22d3ee"},
	{`| | | |/ _ \ '__/ _ \ | |/ __| __|`, "#2dd4bf"},
	{`| |_| |  __/ | |  __/ | | (__| |_ `, "#34d399"},
	{`|____/ \___|_|  \___|_|_|\___|\__|`, "#4ade80"},
}

// PrintBanner writes the game banner, coloured for the terminal's profile.
func PrintBanner(w io.Writer, title string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	if title != "" {
		fmt.Fprintln(w, termenv.String("  "+title).Faint())
	}
	fmt.Fprintln(w)
}
