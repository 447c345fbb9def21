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

// rsComputeRemainder returns the Reed-Solomon ECC codewords for data under
// the generator polynomial for the given number of ECC codewords, via
// polynomial long division of data(x)*x^e by g_e(x).
func rsComputeRemainder(data []byte, eccCount int) []byte {
	divisor, ok := rsGeneratorPolynomials[eccCount]
	if !ok {
		divisor = rsGeneratorPolynomial(eccCount)
	}

	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := range result {
			result[i] ^= gfMultiply(divisor[i], factor)
		}
	}
	return result
}
