// SPDX-License-Identifier: MIT

package render

import "github.com/charmbracelet/lipgloss"

// Palette used by table output.
var (
	ColorAccent = lipgloss.Color("#2CD7C7") // titles, header row
	ColorBorder = lipgloss.Color("#16858E") // table borders
	ColorMuted  = lipgloss.Color("#2C4A54") // footnotes, unreachable lists
	ColorOK     = lipgloss.Color("#2CD7C7") // found / reachable
	ColorFail   = lipgloss.Color("#E74C3C") // not found
	ColorWarn   = lipgloss.Color("#F4D03F") // truncated enumerations
)

// Styles holds the pre-configured lipgloss styles.
var Styles = struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Number lipgloss.Style
	Border lipgloss.Style
	Muted  lipgloss.Style
	OK     lipgloss.Style
	Fail   lipgloss.Style
	Warn   lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Header: lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1),
	Cell:   lipgloss.NewStyle().Padding(0, 1),
	Number: lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	Border: lipgloss.NewStyle().Foreground(ColorBorder),
	Muted:  lipgloss.NewStyle().Foreground(ColorMuted),
	OK:     lipgloss.NewStyle().Bold(true).Foreground(ColorOK),
	Fail:   lipgloss.NewStyle().Bold(true).Foreground(ColorFail),
	Warn:   lipgloss.NewStyle().Foreground(ColorWarn),
}
