// SPDX-License-Identifier: MIT
// File: toolkit.go
// Role: convert.Toolkit backed by the Open Babel command-line tool.
// Protocol:
//   - SMILES -> 3D:  obabel -:<smiles> -oxyz --gen3d [--<method>] [-h] [extra...]
//   - 3D -> SMILES:  obabel -ixyz -ocan [extra...]   (XYZ on stdin)
// Open Babel perceives bonds from distances on the way back; XYZ output
// carries no bonds, so generated structures have no bond graph.
// Failure isolation:
//   - Toolkits built with New wrap every run in a circuit breaker. After
//     BreakerFailures consecutive broken runs (crashes or timeouts)
//     calls fail fast with ErrUnavailable until BreakerCooldown has passed.
//   - A clean run that converts nothing is an input problem and does not
//     count against the breaker, nor does the caller cancelling its context.

package obabel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/katalvlaran/molalign/config"
	"github.com/katalvlaran/molalign/convert"
	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/metrics"
)

// DefaultBinary is the executable looked up in PATH when Binary is empty.
const DefaultBinary = "obabel"

// waitDelay bounds how long a cancelled run waits for obabel's pipes to close.
const waitDelay = time.Second

var (
	// ErrNoOutput reports a run that exited cleanly but converted nothing.
	ErrNoOutput = errors.New("obabel: no molecule converted")

	// ErrUnavailable reports a run rejected by an open circuit breaker.
	ErrUnavailable = errors.New("obabel: toolkit unavailable")
)

// gen3dSpeeds are the embedding methods Open Babel's --gen3d understands.
var gen3dSpeeds = map[string]bool{
	"fastest": true, "fast": true, "medium": true, "better": true, "best": true,
}

// Toolkit runs obabel as a subprocess. The zero value uses DefaultBinary,
// no timeout, no circuit breaker and a no-op logger.
type Toolkit struct {
	// Binary is the obabel executable path or name.
	Binary string
	// Timeout bounds one invocation; 0 leaves only the caller's context.
	Timeout time.Duration
	// Logger receives debug lines for every invocation.
	Logger *zap.Logger

	breaker *gobreaker.CircuitBreaker
}

var _ convert.Toolkit = (*Toolkit)(nil)

// New returns a Toolkit configured from cfg. A nil logger discards output.
// cfg.BreakerFailures > 0 enables the circuit breaker.
func New(cfg config.ObabelConfig, logger *zap.Logger) *Toolkit {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Toolkit{Binary: cfg.Binary, Timeout: cfg.Timeout, Logger: logger}
	if cfg.BreakerFailures > 0 {
		t.breaker = newBreaker(cfg, logger)
	}

	return t
}

// newBreaker trips after cfg.BreakerFailures consecutive broken runs and
// half-opens for a single trial call after cfg.BreakerCooldown.
func newBreaker(cfg config.ObabelConfig, logger *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "obabel",
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.ToolkitBreakerTransitionsTotal.WithLabelValues(name, to.String()).Inc()
			logger.Warn("toolkit circuit breaker state changed",
				zap.String("toolkit", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNoOutput) ||
				errors.Is(err, context.Canceled)
		},
	})
}

// SMILESToStructure embeds smiles in 3D. opts.RandomSeed is ignored:
// Open Babel's coordinate generation takes no seed.
func (t *Toolkit) SMILESToStructure(ctx context.Context, smiles string, opts convert.Options) (core.Structure, error) {
	args := []string{"-:" + smiles, "-oxyz", "--gen3d"}
	if m := strings.ToLower(opts.EmbeddingMethod); m != "" {
		if !gen3dSpeeds[m] {
			return nil, fmt.Errorf("obabel: embedding method %q: %w", opts.EmbeddingMethod, convert.ErrInvalidOptions)
		}
		args = append(args, "--"+m)
	}
	if opts.AddHydrogens {
		args = append(args, "-h")
	}
	args = append(args, extraArgs(opts.Extra)...)

	out, err := t.run(ctx, args, nil)
	if err != nil {
		return nil, err
	}
	m, err := ReadXYZ(bytes.NewReader(out))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// StructureToSMILES writes s as XYZ and returns Open Babel's canonical SMILES.
func (t *Toolkit) StructureToSMILES(ctx context.Context, s core.Structure, opts convert.Options) (string, error) {
	set, _, err := convert.Extract(s)
	if err != nil {
		return "", err
	}
	var in bytes.Buffer
	if err = WriteXYZ(&in, set, convert.Formula(set.Numbers)); err != nil {
		return "", err
	}

	args := append([]string{"-ixyz", "-ocan"}, extraArgs(opts.Extra)...)
	out, err := t.run(ctx, args, &in)
	if err != nil {
		return "", err
	}
	// "<smiles>\t<title>"
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return "", ErrNoOutput
	}

	return fields[0], nil
}

// run executes obabel through the breaker when one is configured.
func (t *Toolkit) run(ctx context.Context, args []string, stdin *bytes.Buffer) ([]byte, error) {
	if t.breaker == nil {
		return t.invoke(ctx, args, stdin)
	}
	out, err := t.breaker.Execute(func() (interface{}, error) {
		return t.invoke(ctx, args, stdin)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err != nil {
		return nil, err
	}

	return out.([]byte), nil
}

// invoke runs obabel once with args, feeding stdin when non-nil, and returns stdout.
func (t *Toolkit) invoke(ctx context.Context, args []string, stdin *bytes.Buffer) ([]byte, error) {
	bin := t.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	log := t.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	if stdin != nil {
		cmd.Stdin = stdin
	}

	start := time.Now()
	err := cmd.Run()
	log.Debug("obabel invocation",
		zap.String("binary", bin),
		zap.Strings("args", args),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("stderr", strings.TrimSpace(stderr.String())),
		zap.Error(err),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("obabel: %w", ctxErr)
		}
		return nil, fmt.Errorf("obabel: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 || strings.Contains(stderr.String(), "0 molecules converted") {
		return nil, fmt.Errorf("%w: %s", ErrNoOutput, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// extraArgs flattens opts.Extra in key order: each key, then its value if non-empty.
func extraArgs(extra map[string]string) []string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		out = append(out, k)
		if v := extra[k]; v != "" {
			out = append(out, v)
		}
	}

	return out
}
