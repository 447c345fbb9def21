/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrsymbol

// cellState is the tagged state of one module during construction.
// Every cell starts Unset and must be Dark or Light by the time
// construction finishes; Reserved marks a cell whose value is written late
// (format information) but which must never be masked.
type cellState int8

const (
	cellUnset cellState = iota
	cellLight
	cellDark
	cellReserved
)

func (c cellState) dark() bool { return c == cellDark }

// symbolSize returns the module side length N for a Version in {1, 2}.
func symbolSize(version int) int { return 17 + 4*version }

// darkModulePosition returns the fixed dark-module coordinates for version.
func darkModulePosition(version int) (row, col int) { return 4*version + 9, 8 }

// alignmentCenters returns the alignment-pattern centre coordinates for the
// given version. Version 1 has none; Version 2 has a single centre at
// (18,18) per ISO/IEC 18004 Annex E.
func alignmentCenters(version int) []int {
	if version < 2 {
		return nil
	}
	return []int{18}
}

// formatInfoPrimaryCells lists the 15 ordered (row, col) cells around the
// top-left finder that carry the primary copy of the format bits, in bit
// order b[0..14].
var formatInfoPrimaryCells = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7},
	{8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// layout holds the function-pattern matrix and the accompanying function
// map for one QR version. The function map is derived purely from the
// version and is immutable once built.
type layout struct {
	version int
	size    int
	matrix  [][]cellState
	funcMap [][]bool
}

// buildLayout lays out all function patterns (finders, separators, timing,
// dark-module reservation, alignment, format-info reservations) for the
// given version, leaving every other cell Unset.
func buildLayout(version int) *layout {
	size := symbolSize(version)
	l := &layout{
		version: version,
		size:    size,
		matrix:  newCellGrid(size),
		funcMap: newBoolGrid(size),
	}

	l.drawFinderPattern(0, 0)
	l.drawFinderPattern(0, size-7)
	l.drawFinderPattern(size-7, 0)

	l.drawSeparators()
	l.drawTimingPatterns()
	l.reserveDarkModule()
	l.drawAlignmentPatterns()
	l.reserveFormatInfo()

	return l
}

func newCellGrid(size int) [][]cellState {
	grid := make([][]cellState, size)
	for i := range grid {
		grid[i] = make([]cellState, size)
	}
	return grid
}

func newBoolGrid(size int) [][]bool {
	grid := make([][]bool, size)
	for i := range grid {
		grid[i] = make([]bool, size)
	}
	return grid
}

// set marks a cell both in the module matrix and the function map. Used for
// every function pattern cell except format-info reservations, which carry
// no value yet.
func (l *layout) set(row, col int, dark bool) {
	if dark {
		l.matrix[row][col] = cellDark
	} else {
		l.matrix[row][col] = cellLight
	}
	l.funcMap[row][col] = true
}

// reserve marks a cell as Reserved in the matrix and true in the function
// map, without giving it a value yet.
func (l *layout) reserve(row, col int) {
	l.matrix[row][col] = cellReserved
	l.funcMap[row][col] = true
}

// finderPattern is the canonical 7x7 finder: outer dark ring, inner light
// ring, dark 3x3 core.
var finderPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

func (l *layout) drawFinderPattern(rowStart, colStart int) {
	for dr := 0; dr < 7; dr++ {
		for dc := 0; dc < 7; dc++ {
			l.set(rowStart+dr, colStart+dc, finderPattern[dr][dc])
		}
	}
}

// drawSeparators draws the single-module light strip on the data-facing
// edges of each finder, producing an 8x8 protected region per corner.
func (l *layout) drawSeparators() {
	size := l.size

	for i := 0; i < 8; i++ {
		l.set(i, 7, false)         // Top-left vertical.
		l.set(7, i, false)         // Top-left horizontal.
		l.set(i, size-8, false)    // Top-right vertical.
		l.set(7, size-1-i, false) // Top-right horizontal.
		l.set(size-8, i, false)   // Bottom-left horizontal.
		l.set(size-1-i, 7, false) // Bottom-left vertical.
	}
}

// drawTimingPatterns draws row 6 and column 6 between the finder bands,
// alternating dark/light: dark iff the variable coordinate is even.
func (l *layout) drawTimingPatterns() {
	for i := 8; i <= l.size-9; i++ {
		dark := i%2 == 0
		l.set(6, i, dark)
		l.set(i, 6, dark)
	}
}

// reserveDarkModule marks the fixed dark-module cell as Reserved; its value
// is forced to Dark only after format-info placement.
func (l *layout) reserveDarkModule() {
	row, col := darkModulePosition(l.version)
	l.reserve(row, col)
}

// alignmentPattern is the canonical 5x5 alignment pattern: dark outer ring,
// light inner ring, dark centre.
var alignmentPattern = [5][5]bool{
	{true, true, true, true, true},
	{true, false, false, false, true},
	{true, false, true, false, true},
	{true, false, false, false, true},
	{true, true, true, true, true},
}

// drawAlignmentPatterns draws every alignment-pattern candidate whose 5x5
// footprint does not overlap any 8x8 finder-plus-separator region.
func (l *layout) drawAlignmentPatterns() {
	for _, center := range alignmentCenters(l.version) {
		if l.alignmentOverlapsFinder(center, center) {
			continue
		}
		l.drawAlignmentPattern(center, center)
	}
}

func (l *layout) drawAlignmentPattern(centerRow, centerCol int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			l.set(centerRow+dr, centerCol+dc, alignmentPattern[dr+2][dc+2])
		}
	}
}

// alignmentOverlapsFinder reports whether a 5x5 alignment pattern centred
// at (row, col) overlaps any of the three 8x8 finder-plus-separator zones.
func (l *layout) alignmentOverlapsFinder(row, col int) bool {
	size := l.size
	zones := [3][4]int{
		{0, 0, 7, 7},
		{0, size - 8, 7, size - 1},
		{size - 8, 0, size - 1, 7},
	}

	rowStart, rowEnd := row-2, row+2
	colStart, colEnd := col-2, col+2
	for _, z := range zones {
		zRowStart, zColStart, zRowEnd, zColEnd := z[0], z[1], z[2], z[3]
		if rowEnd < zRowStart || rowStart > zRowEnd || colEnd < zColStart || colStart > zColEnd {
			continue
		}
		return true
	}
	return false
}

// reserveFormatInfo marks the 15 primary cells, the row-8 horizontal copy,
// and the column-8 vertical copy as Reserved. These cells carry no value
// until format.go writes the final bits.
func (l *layout) reserveFormatInfo() {
	for _, cell := range formatInfoPrimaryCells {
		if l.matrix[cell[0]][cell[1]] == cellUnset {
			l.reserve(cell[0], cell[1])
		}
	}

	size := l.size
	for i := 0; i < 8; i++ {
		if l.matrix[8][size-1-i] == cellUnset {
			l.reserve(8, size-1-i)
		}
	}
	for i := 0; i < 7; i++ {
		if l.matrix[size-1-i][8] == cellUnset {
			l.reserve(size-1-i, 8)
		}
	}
}
