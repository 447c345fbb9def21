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

import "errors"

// Sentinel error kinds. Input errors (ErrInvalidCharacter, ErrPayloadTooLong)
// are expected failure modes a caller handles; ErrInternalInvariant indicates
// a bug in this package and is never produced by valid input alone.
var (
	// ErrInvalidCharacter is returned when the input text contains a
	// character outside the ISO-8859-1 repertoire.
	ErrInvalidCharacter = errors.New("qrsymbol: character outside ISO-8859-1 repertoire")

	// ErrPayloadTooLong is returned when the ISO-8859-1 byte length of the
	// input exceeds 32 bytes, the Version 2-L capacity.
	ErrPayloadTooLong = errors.New("qrsymbol: payload exceeds 32-byte Version 2-L capacity")

	// ErrInternalInvariant is returned when an internal contract (expected
	// codeword count, bitstream length, or full matrix coverage) was
	// violated. It is surfaced, never swallowed.
	ErrInternalInvariant = errors.New("qrsymbol: internal invariant violated")
)
