// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// printer writes outcome lines, coloured when the terminal allows it.
type printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// resolveColors maps --color (auto, always, never) to a yes/no decision.
func resolveColors(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		if os.Getenv("TERM") == "dumb" {
			return false, nil
		}
		return !color.NoColor, nil
	default:
		return false, fmt.Errorf("invalid color mode %q: must be auto, always, or never", mode)
	}
}

func (p *printer) success(format string, args ...any) {
	if p.useColors {
		paint(color.FgGreen).Fprintf(p.err, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[OK] "+format+"\n", args...)
}

func (p *printer) warning(format string, args ...any) {
	if p.useColors {
		paint(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
}

func (p *printer) error(format string, args ...any) {
	if p.useColors {
		paint(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
}

// paint returns a colour that is applied even when stderr is not a
// terminal; the printer has already decided to colour.
func paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}
