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

// Package qrsymbol implements the ISO/IEC 18004 symbol-construction pipeline
// for QR Code Version 1 and Version 2, Error Correction Level L: byte-mode
// bitstream assembly, Reed-Solomon error correction, function-pattern and
// data-module placement, 8-pattern mask scoring, and BCH(15,5) format
// information. It is a pure function of its input text — given identical
// input it returns byte-identical output, and every call is safe to run
// concurrently since no package-level state is mutated after init.
package qrsymbol

import "fmt"

// Result is the finalized output of the encode pipeline.
type Result struct {
	Matrix  [][]bool // Matrix[r][c] true means a dark module.
	Version int      // 1 or 2.
	MaskID  int      // 0..7.
}

// Stages holds snapshots of the matrix at the observability checkpoints
// EncodeWithStages exposes to visualization collaborators. Every field is a
// deep copy; mutating one cannot affect the encode that produced it.
type Stages struct {
	PreMask  [][]bool // After data placement, before masking.
	PostMask [][]bool // After masking, before format-info placement.
	Final    [][]bool // Identical to the returned Result.Matrix.
}

// Encode runs the full pipeline on text and returns the finalized module
// matrix, the version chosen to hold it, and the mask id selected.
func Encode(text string) (Result, error) {
	result, _, err := encode(text, false)
	return result, err
}

// EncodeWithStages runs the full pipeline like Encode, additionally
// returning snapshots after data placement, after masking, and at the end.
func EncodeWithStages(text string) (Result, Stages, error) {
	return encode(text, true)
}

func encode(text string, withStages bool) (Result, Stages, error) {
	dataCodewords, spec, err := encodeByteMode(text)
	if err != nil {
		return Result{}, Stages{}, err
	}

	eccCodewords := rsComputeRemainder(dataCodewords, spec.eccCodewords)
	if len(eccCodewords) != spec.eccCodewords {
		return Result{}, Stages{}, fmt.Errorf("%w: %d ECC codewords, want %d", ErrInternalInvariant, len(eccCodewords), spec.eccCodewords)
	}

	bits, err := assembleBitstream(dataCodewords, eccCodewords, spec.remainderBits)
	if err != nil {
		return Result{}, Stages{}, err
	}

	l := buildLayout(spec.version)
	if err := placeData(l, bits); err != nil {
		return Result{}, Stages{}, err
	}

	var stages Stages
	if withStages {
		stages.PreMask = cellGridToBool(l.matrix)
	}

	best := selectBestMask(l.matrix, l.funcMap)
	if withStages {
		stages.PostMask = cellGridToBool(best.matrix)
	}

	masked := &layout{version: l.version, size: l.size, matrix: best.matrix, funcMap: l.funcMap}
	if err := placeFormatInfo(masked, best.maskID); err != nil {
		return Result{}, Stages{}, err
	}

	finalMatrix, err := finalizeMatrix(masked.matrix)
	if err != nil {
		return Result{}, Stages{}, err
	}
	if withStages {
		stages.Final = make([][]bool, len(finalMatrix))
		for r, row := range finalMatrix {
			stages.Final[r] = append([]bool(nil), row...)
		}
	}

	return Result{Matrix: finalMatrix, Version: spec.version, MaskID: best.maskID}, stages, nil
}

// finalizeMatrix converts a fully-constructed cellState grid into a plain
// bool matrix, enforcing the invariant that every cell is Dark or Light.
func finalizeMatrix(matrix [][]cellState) ([][]bool, error) {
	out := make([][]bool, len(matrix))
	for r, row := range matrix {
		out[r] = make([]bool, len(row))
		for c, cell := range row {
			if cell == cellUnset || cell == cellReserved {
				return nil, fmt.Errorf("%w: cell (%d,%d) left unresolved", ErrInternalInvariant, r, c)
			}
			out[r][c] = cell == cellDark
		}
	}
	return out, nil
}

func cellGridToBool(matrix [][]cellState) [][]bool {
	out := make([][]bool, len(matrix))
	for r, row := range matrix {
		out[r] = make([]bool, len(row))
		for c, cell := range row {
			out[r][c] = cell == cellDark
		}
	}
	return out
}
