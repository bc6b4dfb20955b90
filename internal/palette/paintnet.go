package palette

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/spritery/internal/canvas"
)

// ParsePaintNet reads the paint.net palette text format: ';' comment lines,
// optionally ";Palette Name: x" and ";Description: y", and one AARRGGBB
// hex color per line.
func ParsePaintNet(r io.Reader) (*Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	p := &Palette{}
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ";") {
			key, value, ok := strings.Cut(line[1:], ":")
			if !ok {
				continue
			}
			switch strings.TrimSpace(key) {
			case "Palette Name":
				p.Name = strings.TrimSpace(value)
			case "Description":
				p.Description = strings.TrimSpace(value)
			}
			continue
		}
		col, err := parseARGB(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		p.Swatches = append(p.Swatches, Swatch{Color: col})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func parseARGB(s string) (canvas.Color, error) {
	if len(s) != 8 {
		return canvas.Invisible, fmt.Errorf("invalid AARRGGBB color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return canvas.Invisible, fmt.Errorf("invalid AARRGGBB color %q", s)
	}
	return canvas.Color{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// WritePaintNet writes p in paint.net text format.
func WritePaintNet(w io.Writer, p *Palette) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ";paint.net Palette File")
	if p.Name != "" {
		fmt.Fprintf(bw, ";Palette Name: %s\n", p.Name)
	}
	if p.Description != "" {
		fmt.Fprintf(bw, ";Description: %s\n", p.Description)
	}
	fmt.Fprintf(bw, ";Colors: %d\n", len(p.Swatches))
	for _, s := range p.Swatches {
		c := s.Color
		fmt.Fprintf(bw, "%02X%02X%02X%02X\n", c.A, c.R, c.G, c.B)
	}
	return bw.Flush()
}
