package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"codebird.dev/codebird/internal/utils"
)

func TestContainsString(t *testing.T) {
	require.True(t, utils.ContainsString([]string{"a", "b"}, "b"))
	require.False(t, utils.ContainsString([]string{"a", "b"}, "c"))
	require.False(t, utils.ContainsString(nil, "a"))
}
