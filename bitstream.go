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

// assembleBitstream concatenates data codewords then ECC codewords,
// MSB-first per byte, followed by remainderBits zero bits. There is
// no interleaving at V1/V2-L: both versions use a single Reed-Solomon
// block.
func assembleBitstream(dataCodewords, eccCodewords []byte, remainderBits int) ([]bool, error) {
	bits := make([]bool, 0, (len(dataCodewords)+len(eccCodewords))*8+remainderBits)
	for _, cw := range append(append([]byte{}, dataCodewords...), eccCodewords...) {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (cw>>uint(i))&1 == 1)
		}
	}
	for i := 0; i < remainderBits; i++ {
		bits = append(bits, false)
	}

	want := (len(dataCodewords)+len(eccCodewords))*8 + remainderBits
	if len(bits) != want {
		return nil, fmt.Errorf("%w: bitstream length %d, want %d", ErrInternalInvariant, len(bits), want)
	}
	return bits, nil
}
