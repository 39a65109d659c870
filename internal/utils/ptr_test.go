package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOrNil(t *testing.T) {
	assert.Nil(t, StringOrNil(""))
	assert.Nil(t, StringOrNil("  \t"))
	require.NotNil(t, StringOrNil(" big hand "))
	assert.Equal(t, "big hand", *StringOrNil(" big hand "))
}

func TestParseOptionalUUID(t *testing.T) {
	id, err := ParseOptionalUUID("")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	want := uuid.New()
	id, err = ParseOptionalUUID(" " + want.String())
	require.NoError(t, err)
	assert.Equal(t, want, id)

	_, err = ParseOptionalUUID("not-a-uuid")
	assert.Error(t, err)
}
