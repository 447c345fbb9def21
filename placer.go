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

import "fmt"

// placeData fills every non-function cell of l.matrix with bits from the
// bitstream in zig-zag order: columns walked in pairs from right to
// left, skipping the vertical timing column, direction flipping at each
// column-pair boundary, right-hand column of each pair visited before the
// left-hand column. Exhausted bits are treated as zero. Mutates l.matrix in
// place.
func placeData(l *layout, bits []bool) error {
	size := l.size
	bitIndex := 0

	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0

		for vert := 0; vert < size; vert++ {
			for j := 0; j < 2; j++ {
				col := right - j

				var row int
				if upward {
					row = size - 1 - vert
				} else {
					row = vert
				}

				if l.funcMap[row][col] {
					continue
				}

				bit := false
				if bitIndex < len(bits) {
					bit = bits[bitIndex]
				}
				bitIndex++

				if bit {
					l.matrix[row][col] = cellDark
				} else {
					l.matrix[row][col] = cellLight
				}
			}
		}
	}

	nonFunctionCells := countNonFunctionCells(l.funcMap)
	if nonFunctionCells != len(bits) {
		return fmt.Errorf("%w: %d non-function cells, want %d", ErrInternalInvariant, nonFunctionCells, len(bits))
	}
	return nil
}

func countNonFunctionCells(funcMap [][]bool) int {
	count := 0
	for _, row := range funcMap {
		for _, isFunc := range row {
			if !isFunc {
				count++
			}
		}
	}
	return count
}
