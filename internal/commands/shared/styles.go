// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tombee/schemaerr/internal/config"
)

// CLI style colors using lipgloss
var (
	// StatusOK styles success indicators
	StatusOK = lipgloss.NewStyle().Foreground(lipgloss.Color("42")) // green

	// StatusWarn styles warning indicators
	StatusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // orange

	// StatusError styles error indicators
	StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

	// Muted styles secondary/less important text
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray

	// Bold styles emphasized text
	Bold = lipgloss.NewStyle().Bold(true)

	// Header styles section headers
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")) // blue bold
)

// Symbols for status indicators
const (
	SymbolOK    = "✓"
	SymbolWarn  = "⚠"
	SymbolError = "✗"
	SymbolInfo  = "•"
)

// Palette renders styled text, or plain text when color is disabled.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette that styles output only when enabled.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// PaletteFor picks the palette for w according to a color mode.
func PaletteFor(w io.Writer, mode string) Palette {
	return NewPalette(ColorEnabled(w, mode))
}

// ColorEnabled reports whether output to w should be styled. In auto mode
// styling requires a terminal and an unset NO_COLOR.
func ColorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p Palette) render(style lipgloss.Style, s string) string {
	if !p.enabled {
		return s
	}
	return style.Render(s)
}

// OK renders a success message with green checkmark
func (p Palette) OK(msg string) string {
	return p.render(StatusOK, SymbolOK) + " " + msg
}

// Warn renders a warning message with orange symbol
func (p Palette) Warn(msg string) string {
	return p.render(StatusWarn, SymbolWarn) + " " + msg
}

// Error renders an error message with red X
func (p Palette) Error(msg string) string {
	return p.render(StatusError, SymbolError) + " " + msg
}

// Label renders a dim label (for key: value pairs)
func (p Palette) Label(label string) string {
	return p.render(Muted, label)
}

// Header renders a section header
func (p Palette) Header(s string) string {
	return p.render(Header, s)
}

// Bold renders emphasized text
func (p Palette) Bold(s string) string {
	return p.render(Bold, s)
}
