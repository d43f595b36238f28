// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"strings"

	"golang.org/x/text/width"
)

// A Table is a table. Its first row is the header.
type Table struct {
	Align    []Align // per column; missing entries are AlignNone
	Children []Node  // rows
}

// A TableRow is a row of a [Table].
type TableRow struct {
	Children []Node // cells
}

// A TableCell is a cell of a [TableRow].
type TableCell struct {
	Children []Node
}

func (*Table) Type() string             { return "table" }
func (x *Table) ChildNodes() []Node     { return x.Children }
func (*TableRow) Type() string          { return "tableRow" }
func (x *TableRow) ChildNodes() []Node  { return x.Children }
func (*TableCell) Type() string         { return "tableCell" }
func (x *TableCell) ChildNodes() []Node { return x.Children }

func handleTable(n, _ Node, s *State, info Info) string {
	t := n.(*Table)
	exit := s.Enter("table")
	matrix := make([][]string, len(t.Children))
	for i, row := range t.Children {
		matrix[i] = s.tableRow(row, info)
	}
	exit()
	return s.formatTable(matrix, t.Align)
}

func handleTableRow(n, _ Node, s *State, info Info) string {
	// A lone row still gets a delimiter row; drop it.
	value := s.formatTable([][]string{s.tableRow(n, info)}, nil)
	row, _, _ := strings.Cut(value, "\n")
	return row
}

func handleTableCell(n, parent Node, s *State, info Info) string {
	return s.tableCell(n, parent, info)
}

func (s *State) tableRow(row Node, info Info) []string {
	defer s.Enter("tableRow")()
	p, ok := row.(Parent)
	if !ok {
		return []string{s.tableCell(row, nil, info)}
	}
	cells := make([]string, len(p.ChildNodes()))
	for i, c := range p.ChildNodes() {
		cells[i] = s.tableCell(c, row, info)
	}
	return cells
}

func (s *State) tableCell(cell, parent Node, info Info) string {
	defer s.Enter("tableCell")()
	defer s.Enter("phrasing")()
	around := " "
	if s.Options.TableNoPadding {
		around = "|"
	}
	p, ok := cell.(Parent)
	if !ok {
		return s.Handle(cell, parent, info.with(around, around, info.Position))
	}
	return s.ContainerPhrasing(p, info.with(around, around, info.Position))
}

// formatTable lays out rendered cells as table rows,
// inserting the delimiter row after the header.
func (s *State) formatTable(matrix [][]string, align []Align) string {
	padding := !s.Options.TableNoPadding
	aligned := !s.Options.TableNoAlign
	length := s.Options.StringLength

	cols := 0
	for _, row := range matrix {
		cols = max(cols, len(row))
	}
	longest := make([]int, cols)
	sizes := make([][]int, len(matrix))
	for i, row := range matrix {
		sizes[i] = make([]int, len(row))
		for j, cell := range row {
			if aligned {
				sizes[i][j] = length(cell)
				longest[j] = max(longest[j], sizes[i][j])
			}
		}
	}
	codes := make([]Align, cols)
	copy(codes, align)

	delim := make([]string, cols)
	delimSizes := make([]int, cols)
	for j, code := range codes {
		before, after := "", ""
		switch code {
		case AlignCenter:
			before, after = ":", ":"
		case AlignLeft:
			before = ":"
		case AlignRight:
			after = ":"
		}
		size := 1
		if aligned {
			size = max(1, longest[j]-len(before)-len(after))
		}
		delim[j] = before + strings.Repeat("-", size) + after
		if aligned {
			size += len(before) + len(after)
			longest[j] = max(longest[j], size)
			delimSizes[j] = size
		}
	}
	at := min(1, len(matrix))
	matrix = append(matrix[:at:at], append([][]string{delim}, matrix[at:]...)...)
	sizes = append(sizes[:at:at], append([][]int{delimSizes}, sizes[at:]...)...)

	lines := make([]string, len(matrix))
	for i, row := range matrix {
		var b strings.Builder
		for j := 0; j < cols; j++ {
			var cell string
			var size int
			if j < len(row) {
				cell = row[j]
			}
			if j < len(sizes[i]) {
				size = sizes[i][j]
			}
			if j == 0 {
				b.WriteByte('|')
			}
			if padding && (aligned || cell != "") {
				b.WriteByte(' ')
			}
			if aligned {
				b.WriteString(paddedCell(cell, codes[j], size, longest[j]))
			} else {
				b.WriteString(cell)
			}
			if padding {
				b.WriteByte(' ')
			}
			b.WriteByte('|')
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// paddedCell pads cell, whose display width is size,
// to width w according to align.
func paddedCell(cell string, align Align, size, w int) string {
	gap := w - size
	if gap <= 0 {
		return cell
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + cell
	case AlignCenter:
		left := (gap + 1) / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	}
	return cell + strings.Repeat(" ", gap)
}

// displayWidth returns the number of columns s occupies
// in a monospaced font; East Asian wide characters take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
