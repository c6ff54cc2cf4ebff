package recordtable

import (
	"fmt"
	"io"
	"strings"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderASCII   BorderStyle = iota // +-+|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[BorderStyle]string{
	BorderASCII:   "ascii",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

var borderStyles = []BorderStyle{BorderASCII, BorderRounded, BorderHeavy, BorderDouble}

// String returns the style name.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// Borders returns all supported border styles.
func Borders() []BorderStyle {
	out := make([]BorderStyle, len(borderStyles))
	copy(out, borderStyles)
	return out
}

// ParseBorder parses a border style name as returned by [BorderStyle.String].
func ParseBorder(s string) (BorderStyle, error) {
	for _, b := range borderStyles {
		if borderNames[b] == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// renderTable writes the header and every row, each followed by a rule.
// Column widths must already fit every cell.
func renderTable(w io.Writer, cols []Column, rows [][]string, style BorderStyle) error {
	bc, ok := borderSets[style]
	if !ok {
		bc = borderSets[BorderASCII]
	}

	widths := make([]int, len(cols))
	aligns := make([]Alignment, len(cols))
	header := make([]string, len(cols))
	for i, col := range cols {
		widths[i] = col.Width
		aligns[i] = col.Alignment()
		header[i] = col.Name
	}

	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	// Headers are always flush-left.
	if err := drawBorderedRow(w, header, widths, make([]Alignment, len(cols)), bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}

	for i, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
		var err error
		if i < len(rows)-1 {
			err = drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
		} else {
			err = drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cells[i], width, aligns[i]))
		sb.WriteString(" ")
		sb.WriteString(vert)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - cellWidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
