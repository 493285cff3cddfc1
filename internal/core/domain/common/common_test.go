package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)

	assert.Equal(NewOptional("bar", true), Some("bar"))
	assert.False(None[int]().IsPresent)
}

func TestOptionalString(t *testing.T) {
	assert := require.New(t)

	present := Some(7)
	assert.Equal("[7]", present.String())

	missing := None[int]()
	assert.Equal("[-]", missing.String())
}

func TestEmail(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Email("alice@x.com"), NewEmail("  Alice@X.com "))
	assert.True(Email("").IsEmpty())
	assert.True(Email("   ").IsEmpty())
	assert.False(Email("a@b.c").IsEmpty())
}
