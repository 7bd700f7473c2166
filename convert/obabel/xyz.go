// SPDX-License-Identifier: MIT

package obabel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/molalign/core"
)

// ErrMalformedXYZ reports XYZ text that cannot be parsed.
var ErrMalformedXYZ = errors.New("obabel: malformed XYZ")

// ReadXYZ parses one XYZ record (count line, comment line, then one
// "Symbol x y z" line per atom, Angstrom) into a Molecule without bonds.
// Trailing records are ignored.
func ReadXYZ(r io.Reader) (*core.Molecule, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("obabel: read XYZ: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrMalformedXYZ)
	}
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: line 1: atom count %q", ErrMalformedXYZ, head)
	}
	if _, ok = next(); !ok {
		return nil, fmt.Errorf("%w: missing comment line", ErrMalformedXYZ)
	}

	symbols := make([]string, 0, n)
	coords := make([]core.Vec3, 0, n)
	for len(symbols) < n {
		text, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: %d of %d atoms", ErrMalformedXYZ, len(symbols), n)
		}
		fields := strings.Fields(text)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedXYZ, line, text)
		}
		var p core.Vec3
		for k := 0; k < 3; k++ {
			if p[k], err = strconv.ParseFloat(fields[k+1], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedXYZ, line, err)
			}
		}
		symbols = append(symbols, fields[0])
		coords = append(coords, p)
	}

	m, err := core.NewMolecule(symbols, coords, core.WithUnit(core.Angstrom))
	if err != nil {
		return nil, fmt.Errorf("obabel: XYZ: %w", err)
	}

	return m, nil
}

// WriteXYZ writes s as one XYZ record in Angstrom with the given comment.
func WriteXYZ(w io.Writer, s *core.AtomSet, comment string) error {
	coords, err := s.InUnit(core.Angstrom)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%s\n", s.Len(), strings.ReplaceAll(comment, "\n", " "))
	for i, z := range s.Numbers {
		sym, err := core.SymbolOf(z)
		if err != nil {
			return err
		}
		c := coords[i]
		fmt.Fprintf(bw, "%-2s %15.8f %15.8f %15.8f\n", sym, c[0], c[1], c[2])
	}

	return bw.Flush()
}
