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
	{" _             _             ", "#818cf8"},
	{"| |_ _   _ _ _(_)_ __   __ _ ", "#a78bfa"},
	{"| __| | | | '__| | '_ \\ / _` |", "#c084fc"},
	{"| |_| |_| | |  | | | | | (_| |", "#e879f9"},
	{" \\__|\\__,_|_|  |_|_| |_|\\__, |", "#f472b6"},
	{"                        |___/ ", "#fb7185"},
}

// PrintBanner outputs the ASCII art banner for turing to w.
func PrintBanner(w io.Writer, profile termenv.Profile) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	fmt.Fprintln(w)
}
