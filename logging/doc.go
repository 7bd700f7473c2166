// Package logging builds the zap loggers used across molalign.
//
// Library packages never construct loggers on their own: they accept a
// *zap.Logger through an option and fall back to DiscardLogger. Applications
// call NewLogger once, typically from config.Config.Log.
package logging
