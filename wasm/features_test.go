package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeatures_ZeroIsInvalid(t *testing.T) {
	f := Features(0)
	require.False(t, f.IsEnabled(0))
	require.False(t, f.IsEnabled(FeatureMutableGlobal))
	require.Equal(t, "", f.String())
}

func TestFeatures_SetEnabled(t *testing.T) {
	tests := []struct {
		name     string
		feature  Features
		expected string
	}{
		{name: "mutable-global", feature: FeatureMutableGlobal, expected: "mutable-global"},
		{name: "sign-extension-ops", feature: FeatureSignExtensionOps, expected: "sign-extension-ops"},
		{name: "multi-value", feature: FeatureMultiValue, expected: "multi-value"},
		{name: "simd", feature: FeatureSIMD, expected: "simd"},
		{name: "threads", feature: FeatureThreads, expected: "threads"},
		{name: "tail-call", feature: FeatureTailCall, expected: "tail-call"},
		{name: "exception-handling", feature: FeatureExceptions, expected: "exception-handling"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			f := Features(0).SetEnabled(tc.feature, true)
			require.True(t, f.IsEnabled(tc.feature))
			require.Equal(t, tc.expected, f.String())

			require.False(t, f.SetEnabled(tc.feature, false).IsEnabled(tc.feature))
		})
	}
}

func TestFeatures_RequireEnabled(t *testing.T) {
	require.NoError(t, FeaturesV2.RequireEnabled(FeatureBulkMemory))

	err := FeaturesV1.RequireEnabled(FeatureSIMD)
	require.EqualError(t, err, `feature "simd" is disabled`)
}

func TestFeatures_V2IncludesV1(t *testing.T) {
	require.True(t, FeaturesV2.IsEnabled(FeaturesV1))
	require.False(t, FeaturesV2.IsEnabled(FeatureThreads))
	require.False(t, FeaturesV2.IsEnabled(FeatureTailCall))
	require.False(t, FeaturesV2.IsEnabled(FeatureExceptions))
}

func TestFeatures_String_Multiple(t *testing.T) {
	f := FeatureMutableGlobal | FeatureSIMD
	require.Equal(t, "mutable-global|simd", f.String())
}
