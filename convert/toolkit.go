// SPDX-License-Identifier: MIT
// File: toolkit.go
// Role: the seam to an external SMILES toolkit. This package validates what
// crosses the seam and never interprets the chemistry itself.

package convert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/metrics"
)

// Conversion directions, used as ConversionError.Op and metric labels.
const (
	OpSMILESToStructure = "smiles_to_structure"
	OpStructureToSMILES = "structure_to_smiles"
)

var validate = validator.New()

// Toolkit is anything that converts between SMILES and 3D structures.
// Implementations own the chemistry; callers go through SMILESToStructure
// and StructureToSMILES, which validate both directions.
type Toolkit interface {
	SMILESToStructure(ctx context.Context, smiles string, opts Options) (core.Structure, error)
	StructureToSMILES(ctx context.Context, s core.Structure, opts Options) (string, error)
}

// Options is the flat set of toolkit knobs. Values are passed through to
// the Toolkit unmodified; only their shape is checked here.
type Options struct {
	// EmbeddingMethod names the toolkit's 3D embedding method ("" = toolkit default).
	EmbeddingMethod string `yaml:"embedding_method" validate:"omitempty,alphanum,max=32"`
	// AddHydrogens requests explicit hydrogens in generated structures.
	AddHydrogens bool `yaml:"add_hydrogens"`
	// RandomSeed seeds 3D embedding; -1 leaves the toolkit default.
	RandomSeed int `yaml:"random_seed" validate:"gte=-1"`
	// Extra holds toolkit-specific flags, passed through as-is.
	Extra map[string]string `yaml:"extra" validate:"omitempty,dive,keys,required,endkeys,printascii"`
}

// DefaultOptions returns explicit hydrogens and the toolkit's own seed.
func DefaultOptions() Options {
	return Options{AddHydrogens: true, RandomSeed: -1}
}

// Validate checks the option shapes.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

// SMILESToStructure asks tk for a 3D structure and checks it is usable:
// at least one atom, one coordinate per atom, finite coordinates, known
// elements and unit.
//
// Errors:
//   - ErrNilToolkit, ErrInvalidOptions for caller mistakes.
//   - *ConversionError (errors.Is core.ErrConversionFailure) for an empty
//     SMILES, a toolkit failure or a malformed result.
func SMILESToStructure(ctx context.Context, tk Toolkit, smiles string, opts Options) (core.Structure, error) {
	if tk == nil {
		return nil, ErrNilToolkit
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	fail := func(err error) (core.Structure, error) {
		metrics.ConversionsTotal.WithLabelValues(OpSMILESToStructure, "error").Inc()
		return nil, &ConversionError{Op: OpSMILESToStructure, Input: smiles, Err: err}
	}
	if strings.TrimSpace(smiles) == "" {
		return fail(ErrEmptyNotation)
	}

	start := time.Now()
	s, err := tk.SMILESToStructure(ctx, smiles, opts)
	metrics.ConversionDurationSeconds.WithLabelValues(OpSMILESToStructure).Observe(time.Since(start).Seconds())
	if err != nil {
		return fail(err)
	}
	if err = checkStructure(s); err != nil {
		return fail(err)
	}
	metrics.ConversionsTotal.WithLabelValues(OpSMILESToStructure, "ok").Inc()

	return s, nil
}

// StructureToSMILES asks tk for the SMILES of s and checks it is non-empty.
// The returned string is trimmed of surrounding whitespace.
//
// Errors:
//   - ErrNilToolkit, ErrNilStructure, ErrInvalidOptions and structure
//     validation errors for caller mistakes.
//   - *ConversionError for a toolkit failure or an empty result.
func StructureToSMILES(ctx context.Context, tk Toolkit, s core.Structure, opts Options) (string, error) {
	if tk == nil {
		return "", ErrNilToolkit
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	set, _, err := Extract(s)
	if err != nil {
		return "", err
	}
	fail := func(err error) (string, error) {
		metrics.ConversionsTotal.WithLabelValues(OpStructureToSMILES, "error").Inc()
		return "", &ConversionError{Op: OpStructureToSMILES, Input: Formula(set.Numbers), Err: err}
	}

	start := time.Now()
	out, err := tk.StructureToSMILES(ctx, s, opts)
	metrics.ConversionDurationSeconds.WithLabelValues(OpStructureToSMILES).Observe(time.Since(start).Seconds())
	if err != nil {
		return fail(err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return fail(ErrEmptyNotation)
	}
	metrics.ConversionsTotal.WithLabelValues(OpStructureToSMILES, "ok").Inc()

	return out, nil
}

// checkStructure is the well-formedness gate for toolkit output.
func checkStructure(s core.Structure) error {
	if s == nil {
		return fmt.Errorf("%w: no structure returned", ErrMalformedStructure)
	}
	set, _, err := Extract(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedStructure, err)
	}
	if set.Len() == 0 {
		return fmt.Errorf("%w: no atoms", ErrMalformedStructure)
	}

	return nil
}
