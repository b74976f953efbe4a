// Package wasmkit reads, writes and validates WebAssembly binary modules and
// lexes the WebAssembly text format; it does not parse or write text.
//
// The subpackages are independently useful: wasm holds the typed AST and the
// feature set, wasm/binary the streaming decoder and encoder, wasm/text the
// text format lexer, and wasm/validate the type checker. This package ties
// the common pipeline together: decode a byte slice, then validate the
// result.
package wasmkit

import (
	"go.uber.org/zap"

	"github.com/wasmkit/wasmkit/wasm"
	"github.com/wasmkit/wasmkit/wasm/binary"
	"github.com/wasmkit/wasmkit/wasm/validate"
)

// Config adjusts the decode and validate pipeline. The zero value handles a
// WebAssembly 1.0 module.
type Config struct {
	// Features gates the post-MVP grammar, ex. wasm.FeaturesV2.
	Features wasm.Features
	// Log receives debug traces. Defaults to a no-op logger.
	Log *zap.Logger
}

// DecodeModule decodes a binary module, returning the typed AST and every
// decode diagnostic combined into one error.
func DecodeModule(buf []byte, config Config) (*wasm.Module, error) {
	return binary.DecodeModule(buf, binary.DecoderConfig{
		Features: config.Features,
		Log:      config.Log,
	})
}

// ValidateModule type-checks a decoded module, returning every diagnostic
// combined into one error, or nil if the module is valid.
func ValidateModule(m *wasm.Module, config Config) error {
	return validate.Module(m, validate.Config{
		Features: config.Features,
		Log:      config.Log,
	})
}

// DecodeAndValidate runs the full pipeline on a binary module. The module is
// returned best effort even when the error is non-nil.
func DecodeAndValidate(buf []byte, config Config) (*wasm.Module, error) {
	sink := &wasm.ErrorList{}
	m, _ := binary.DecodeModule(buf, binary.DecoderConfig{
		Features: config.Features,
		Sink:     sink,
		Log:      config.Log,
	})
	_ = validate.Module(m, validate.Config{
		Features: config.Features,
		Sink:     sink,
		Log:      config.Log,
	})
	return m, sink.Err()
}
