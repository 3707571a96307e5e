package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Standard function", "github.com/chunkforge/pngchunk/pkg/chunk.Parse", "Parse"},
		{"Method with pointer receiver", "github.com/chunkforge/pngchunk/pkg/chunk.(*Chunk).Bytes", "Bytes"},
		{"Anonymous function", "github.com/chunkforge/pngchunk/pkg/chunk.Parse.func1", "Parse"},
		{"Simple function", "main.main", "main"},
		{"No package path", "MyFunction", "MyFunction"},
		{"Empty string", "", ""},
		{"Just a dot", ".", "."},
		// A trailing dot leaves no method segment, so the input comes back unchanged.
		{"Trailing dot", "some.package.", "some.package."},
		{"Leading dot", ".some.package", "package"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := MethodName(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}
