package bigfixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/bigfixed/digit"
)

func TestDivideAlwaysReturnsDivideByZero(t *testing.T) {
	a := FromInt32[digit.Word8](10)
	b := FromInt32[digit.Word8](2)
	_, err := Divide(a, b)
	require.NotNil(t, err)
	assert.Equal(t, KindDivideByZero, err.Kind)
}
