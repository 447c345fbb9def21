// Package render turns a finalized qrsymbol matrix into a scalable vector
// graphics document. It is an external collaborator per qrsymbol's design:
// it consumes a qrsymbol.Result through the matrix alone and never mutates
// the slice it is given.
package render

import (
	"fmt"
	"strings"

	"github.com/qrforge/qrsymbol"
)

// SVG renders result's module matrix as a standalone SVG document with the
// given quiet-zone border (in modules). Dark modules are emitted as a
// single <path> built from one unit-square command per cell.
func SVG(result qrsymbol.Result, border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("render: border must be non-negative, got %d", border)
	}

	size := len(result.Matrix)
	total := size + border*2

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", total)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")

	first := true
	for r, row := range result.Matrix {
		for c, dark := range row {
			if !dark {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", c+border, r+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
