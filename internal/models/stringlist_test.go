package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan([]byte(`["mapping","gis"]`)))
	assert.Equal(t, StringList{"mapping", "gis"}, list)

	require.NoError(t, list.Scan(`["petrology"]`))
	assert.Equal(t, StringList{"petrology"}, list)

	require.NoError(t, list.Scan(nil))
	assert.Nil(t, list)

	assert.Error(t, list.Scan(42))
}

func TestStringListValue(t *testing.T) {
	value, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(value.([]byte)))

	value, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}
