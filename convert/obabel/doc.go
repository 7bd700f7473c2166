// Package obabel implements convert.Toolkit on top of the Open Babel
// command-line program. Each conversion is one obabel subprocess started
// with exec.CommandContext, so callers cancel or time-bound it through the
// context (or Toolkit.Timeout). Structures cross the process boundary as XYZ
// text; ReadXYZ and WriteXYZ are exported for callers that need the same
// format elsewhere. Toolkits built with New also sit behind a circuit
// breaker (sony/gobreaker) that fails fast with ErrUnavailable while the
// binary keeps crashing or timing out.
package obabel
