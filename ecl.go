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

// ECL represents the error correction level of the QR code. This package
// only ever produces Level L symbols.
type ECL int8

// LevelL is the only error correction level this package produces
// (recovers ~7% of data).
const LevelL ECL = 0

// formatBits returns the 2-bit format indicator for the level.
func (e ECL) formatBits() int {
	switch e {
	case LevelL:
		return 1
	default:
		panic("unsupported error correction level")
	}
}
