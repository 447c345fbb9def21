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

// gfPrimitive is the GF(2^8) reducing polynomial x^8+x^4+x^3+x^2+1 used by
// every QR code Reed-Solomon computation.
const gfPrimitive = 0x11D

// gfExp and gfLog are the antilog/log tables for GF(256) under gfPrimitive,
// indexed by field element. gfExp holds 512 entries (the 255-entry cycle
// repeated) so that the sum of two logs indexes it directly, without a
// mod-255 reduction.
var (
	gfExp [512]byte
	gfLog [256]int
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitive
		}
	}
	for i := 255; i < 512; i++ {
		gfExp[i] = gfExp[i-255]
	}
}

// gfMultiply returns the GF(256) product of two field elements.
func gfMultiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[gfLog[a]+gfLog[b]]
}

// gfPolyScale multiplies every coefficient of a high-degree-first polynomial
// by a scalar field element.
func gfPolyScale(poly []byte, scalar byte) []byte {
	result := make([]byte, len(poly))
	for i, c := range poly {
		result[i] = gfMultiply(c, scalar)
	}
	return result
}

// gfPolyMultiply multiplies two high-degree-first polynomials over GF(256).
func gfPolyMultiply(a, b []byte) []byte {
	result := make([]byte, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			result[i+j] ^= gfMultiply(ca, cb)
		}
	}
	return result
}

// rsGeneratorPolynomials holds the precomputed generator polynomials for the
// ECC codeword counts this symbol range ever needs (E=7 for Version 1-L,
// E=10 for Version 2-L). Computed once in init, never recomputed per call.
var rsGeneratorPolynomials = map[int][]byte{}

func init() {
	for _, e := range []int{7, 10} {
		rsGeneratorPolynomials[e] = rsGeneratorPolynomial(e)
	}
}

// rsGeneratorPolynomial builds g_e(x) = product_{i=0}^{e-1} (x - alpha^i),
// represented high-degree first with the leading x^e coefficient implicit
// (always 1, so omitted, matching the standard generator-polynomial recurrence
// convention).
func rsGeneratorPolynomial(e int) []byte {
	result := make([]byte, e)
	result[e-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < e; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = gfMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMultiply(root, 0x02)
	}
	return result
}
