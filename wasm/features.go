package wasm

import (
	"fmt"
	"strings"
)

// Features is a bit flag of WebAssembly specification features. See
// https://github.com/WebAssembly/proposals for proposals and their status.
//
// Every opcode and text keyword outside the MVP carries the feature bit that
// gates it; a decoder, lexer or validator rejects a construct whose bit is
// not in its configured set.
//
// Note: Numeric values are not intended to be interpreted except as bit flags.
type Features uint32

const (
	// FeatureMutableGlobal allows globals to be mutable. The MVP shipped with
	// this enabled, so it is part of FeaturesV1.
	FeatureMutableGlobal Features = 1 << iota

	// FeatureSignExtensionOps adds the i32.extend8_s family.
	//
	// See https://github.com/WebAssembly/spec/blob/wg-2.0.draft1/proposals/sign-extension-ops/Overview.md
	FeatureSignExtensionOps

	// FeatureSaturatingFloatToInt adds the non-trapping i32.trunc_sat_f32_s
	// family behind the 0xfc escape.
	//
	// See https://github.com/WebAssembly/spec/blob/wg-2.0.draft1/proposals/nontrapping-float-to-int-conversion/Overview.md
	FeatureSaturatingFloatToInt

	// FeatureMultiValue lifts the single-result limit on function and block
	// types.
	//
	// See https://github.com/WebAssembly/spec/blob/wg-2.0.draft1/proposals/multi-value/Overview.md
	FeatureMultiValue

	// FeatureBulkMemory adds memory.init, memory.copy, memory.fill,
	// data.drop, table.init, table.copy and elem.drop, plus passive segments
	// and the data count section.
	//
	// See https://github.com/WebAssembly/spec/blob/wg-2.0.draft1/proposals/bulk-memory-operations/Overview.md
	FeatureBulkMemory

	// FeatureReferenceTypes adds funcref and externref as value types, the
	// ref.* instructions, table.get/set and the table.* misc instructions,
	// typed select, and lifts the single-table limit.
	//
	// See https://github.com/WebAssembly/spec/blob/wg-2.0.draft1/proposals/reference-types/Overview.md
	FeatureReferenceTypes

	// FeatureSIMD adds the v128 value type and the vector instructions behind
	// the 0xfd escape.
	//
	// See https://github.com/WebAssembly/spec/blob/wg-2.0.draft1/proposals/simd/SIMD.md
	FeatureSIMD

	// FeatureThreads adds shared memories and the atomic instructions behind
	// the 0xfe escape.
	//
	// See https://github.com/WebAssembly/threads/blob/main/proposals/threads/Overview.md
	FeatureThreads

	// FeatureTailCall adds return_call and return_call_indirect.
	//
	// See https://github.com/WebAssembly/tail-call/blob/main/proposals/tail-call/Overview.md
	FeatureTailCall

	// FeatureExceptions adds events, try/catch/throw/rethrow and br_on_exn.
	//
	// See https://github.com/WebAssembly/exception-handling
	FeatureExceptions
)

// FeaturesV1 is the feature set of the WebAssembly Core Specification 1.0
// (20191205).
const FeaturesV1 = FeatureMutableGlobal

// FeaturesV2 adds the proposals merged into the WebAssembly Core
// Specification 2.0 draft.
const FeaturesV2 = FeaturesV1 |
	FeatureSignExtensionOps |
	FeatureSaturatingFloatToInt |
	FeatureMultiValue |
	FeatureBulkMemory |
	FeatureReferenceTypes |
	FeatureSIMD

// SetEnabled enables or disables the feature or group of features.
func (f Features) SetEnabled(feature Features, val bool) Features {
	if val {
		return f | feature
	}
	return f &^ feature
}

// IsEnabled returns true if the feature (or group of features) is enabled.
func (f Features) IsEnabled(feature Features) bool {
	return f&feature != 0
}

// RequireEnabled returns an error naming the feature if it is not enabled.
func (f Features) RequireEnabled(feature Features) error {
	if f&feature == 0 {
		return fmt.Errorf("feature %q is disabled", feature)
	}
	return nil
}

// String implements fmt.Stringer by returning each enabled feature.
func (f Features) String() string {
	var builder strings.Builder
	for i := 0; i < 32; i++ {
		target := Features(1 << i)
		if f.IsEnabled(target) {
			if name := featureName(target); name != "" {
				if builder.Len() > 0 {
					builder.WriteByte('|')
				}
				builder.WriteString(name)
			}
		}
	}
	return builder.String()
}

func featureName(f Features) string {
	switch f {
	case FeatureMutableGlobal:
		return "mutable-global"
	case FeatureSignExtensionOps:
		return "sign-extension-ops"
	case FeatureSaturatingFloatToInt:
		return "nontrapping-float-to-int-conversion"
	case FeatureMultiValue:
		return "multi-value"
	case FeatureBulkMemory:
		return "bulk-memory-operations"
	case FeatureReferenceTypes:
		return "reference-types"
	case FeatureSIMD:
		return "simd"
	case FeatureThreads:
		return "threads"
	case FeatureTailCall:
		return "tail-call"
	case FeatureExceptions:
		return "exception-handling"
	}
	return ""
}
