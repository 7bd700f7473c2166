// Package config loads molalign settings from MOLALIGN_* environment
// variables (Load, or LoadFiles to seed the environment from dotenv files)
// or a YAML document (Decode). Both start from the same
// defaults and run the same validation, so a Config that reaches the engine
// is always usable.
//
//	MOLALIGN_SYMMETRY=true
//	MOLALIGN_SUPERPOSITION=true
//	MOLALIGN_LENGTH_UNIT=bohr
//	MOLALIGN_MAX_CANDIDATES=4096
//	MOLALIGN_TIE_TOLERANCE=1e-9
//	MOLALIGN_FILTER_THRESHOLD=1.0
//	MOLALIGN_BACKEND=molalign
//	MOLALIGN_LOG_FORMAT=json
//	MOLALIGN_LOG_LEVEL=info
//	MOLALIGN_OBABEL_BINARY=obabel
//	MOLALIGN_OBABEL_TIMEOUT=30s
//	MOLALIGN_OBABEL_BREAKER_FAILURES=5
//	MOLALIGN_OBABEL_BREAKER_COOLDOWN=30s
package config
