package supplement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cobalt/pkg/domain-errors"
)

type flag string

const (
	flagEverything flag = "EVERYTHING"
	flagMinimal    flag = "MINIMAL"
)

func TestParse(t *testing.T) {
	s, err := Parse(" everything , ,Minimal", flagEverything, flagMinimal)
	require.NoError(t, err)
	assert.True(t, s.Has(flagEverything))
	assert.True(t, s.Has(flagMinimal))

	empty, err := Parse("", flagEverything)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.False(t, empty.HasAny(flagEverything, flagMinimal))

	_, err = Parse("everything,bogus", flagEverything)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.ErrorContains(t, err, `unknown supplement "bogus"`)

	_, err = Parse("a,b,c,d,e,f,g,h,i", flagEverything)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestOf(t *testing.T) {
	s := Of(flagMinimal)
	assert.True(t, s.HasAny(flagEverything, flagMinimal))
	assert.False(t, s.Has(flagEverything))

	var zero Set[flag]
	assert.False(t, zero.Has(flagMinimal))
}
