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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertDimensionsAndFinders(t *testing.T, result Result) {
	t.Helper()

	size := 17 + 4*result.Version
	assert.Equal(t, size, len(result.Matrix))
	for _, row := range result.Matrix {
		assert.Equal(t, size, len(row))
	}

	corners := [][2]int{{0, 0}, {0, size - 7}, {size - 7, 0}}
	for _, corner := range corners {
		for dr := 0; dr < 7; dr++ {
			for dc := 0; dc < 7; dc++ {
				assert.Equal(t, finderPattern[dr][dc], result.Matrix[corner[0]+dr][corner[1]+dc])
			}
		}
	}

	for i := 8; i <= size-9; i++ {
		assert.Equal(t, i%2 == 0, result.Matrix[6][i])
		assert.Equal(t, i%2 == 0, result.Matrix[i][6])
	}

	row, col := darkModulePosition(result.Version)
	assert.True(t, result.Matrix[row][col])
}

func TestEncodeScenarioHelloWorld(t *testing.T) {
	result, err := Encode("HELLO WORLD")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Version)
	assertDimensionsAndFinders(t, result)

	again, err := Encode("HELLO WORLD")
	assert.NoError(t, err)
	assert.Equal(t, result.MaskID, again.MaskID)
	assert.Equal(t, result.Matrix, again.Matrix)
}

func TestEncodeScenarioEmpty(t *testing.T) {
	result, err := Encode("")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Version)
	assertDimensionsAndFinders(t, result)
}

func TestEncodeScenarioSingleByte(t *testing.T) {
	result, err := Encode("A")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Version)
	assertDimensionsAndFinders(t, result)
}

func TestEncodeScenarioVersionBoundary(t *testing.T) {
	result17, err := Encode(strings.Repeat("x", 17))
	assert.NoError(t, err)
	assert.Equal(t, 1, result17.Version)
	assertDimensionsAndFinders(t, result17)

	result18, err := Encode(strings.Repeat("x", 18))
	assert.NoError(t, err)
	assert.Equal(t, 2, result18.Version)
	assertDimensionsAndFinders(t, result18)
}

func TestEncodeScenarioPayloadTooLong(t *testing.T) {
	_, err := Encode(strings.Repeat("x", 33))
	assert.ErrorIs(t, err, ErrPayloadTooLong)
}

func TestEncodeScenarioInvalidCharacter(t *testing.T) {
	_, err := Encode("price: 5€")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestEncodeMaskIsLocallyOptimal(t *testing.T) {
	result, err := Encode("HELLO WORLD")
	assert.NoError(t, err)

	l := buildLayout(result.Version)
	dataCodewords, spec, err := encodeByteMode("HELLO WORLD")
	assert.NoError(t, err)
	ecc := rsComputeRemainder(dataCodewords, spec.eccCodewords)
	bits, err := assembleBitstream(dataCodewords, ecc, spec.remainderBits)
	assert.NoError(t, err)
	assert.NoError(t, placeData(l, bits))

	best := selectBestMask(l.matrix, l.funcMap)
	assert.Equal(t, result.MaskID, best.maskID)

	for id := 0; id < 8; id++ {
		masked := applyMask(l.matrix, l.funcMap, id)
		score := scoreMatrix(masked)
		assert.GreaterOrEqual(t, score, best.score)
	}
}

func TestEncodeWithStagesShapes(t *testing.T) {
	result, stages, err := EncodeWithStages("HELLO WORLD")
	assert.NoError(t, err)

	size := len(result.Matrix)
	assert.Equal(t, size, len(stages.PreMask))
	assert.Equal(t, size, len(stages.PostMask))
	assert.Equal(t, size, len(stages.Final))
	assert.Equal(t, result.Matrix, stages.Final)

	// Pre-mask and post-mask snapshots differ at least at one data cell:
	// every mask predicate holds at some data cell, and a flip changes that
	// cell whatever its value was.
	differs := false
	for r := range stages.PreMask {
		for c := range stages.PreMask[r] {
			if stages.PreMask[r][c] != stages.PostMask[r][c] {
				differs = true
			}
		}
	}
	assert.True(t, differs)
}

func TestEncodeWithStagesFinalIsIndependentCopy(t *testing.T) {
	result, stages, err := EncodeWithStages("A")
	assert.NoError(t, err)

	stages.Final[0][0] = !stages.Final[0][0]
	assert.NotEqual(t, stages.Final[0][0], result.Matrix[0][0])
}

func TestEncodeRejectsOversizeAndInvalidBeforeTouchingLayout(t *testing.T) {
	_, _, err := EncodeWithStages(strings.Repeat("x", 40))
	assert.ErrorIs(t, err, ErrPayloadTooLong)

	_, _, err = EncodeWithStages("€")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}
