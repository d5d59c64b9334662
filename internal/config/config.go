// Package config holds the small set of constants the rest of the module
// shares (exported vars/consts) plus LoadCLIConfig for the CLI's optional
// .decafrc.yaml; it is not a general-purpose settings system.
package config

// Version is the current decaf toolchain version.
var Version = "0.1.0"

// SourceFileExt is the canonical Decaf source extension.
const SourceFileExt = ".decaf"

// MaxIdentifierLength mirrors token.MaxIdentifierLength; kept here too so
// CLI help text and config validation don't need to import the lexer's
// token package just to cite the number.
const MaxIdentifierLength = 31

// IsTestMode is set by test-mode entry points so output can normalize
// anything environment-dependent — e.g. the CLI's --verbose cache-hit line
// substitutes a fixed placeholder for the real "last analyzed" timestamp so
// golden-file tests stay deterministic.
var IsTestMode = false
