package viz

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/darray"
	"golang.org/x/term"
)

// Config holds parameters for console output.
type Config struct {
	// LineWidth is the target line length for wrapping long dumps,
	// measured in character positions.
	LineWidth int
}

// Palette maps the two kinds of output fragments to colors. It may be
// partially filled; missing colors render as plain text.
type Palette struct {
	Index *color.Color
	Value *color.Color
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Index: color.New(color.FgBlue),
		Value: color.New(color.FgRed),
	}
}

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			tracer().Debugf("terminal width = %d", w)
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 65
	}
	return config
}

// Dump writes all elements of a container to w in logical order, each
// prefixed with its logical index, wrapping lines at the configured width.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive). If palette is nil, a
// default palette is used.
func Dump[T any](d *darray.Darray[T], w io.Writer, config *Config, palette *Palette) error {
	if w == nil {
		w = os.Stdout
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if palette == nil {
		palette = makeDefaultPalette()
	}
	linelen := config.LineWidth
	if linelen <= 0 {
		linelen = 65
	}
	ccnt := 0
	for i, v := range d.Range() {
		idx := fmt.Sprintf("[%d]", i)
		val := fmt.Sprintf("%v", v)
		// 1 separating blank before the entry, 1 between index and value.
		entry := len(idx) + len(val) + 1
		if ccnt > 0 {
			if ccnt+entry+1 > linelen {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				ccnt = 0
			} else {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
				ccnt++
			}
		}
		if err := styledText(idx, palette.Index, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := styledText(val, palette.Value, w); err != nil {
			return err
		}
		ccnt += entry
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// styledText outputs one uniformly styled fragment. It uses colors to
// visualize the fragment kind.
func styledText(s string, c *color.Color, w io.Writer) error {
	if c != nil {
		_, err := c.Fprint(w, s)
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}
