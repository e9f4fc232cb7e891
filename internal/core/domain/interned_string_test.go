package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("fs:/project")
	is2 := domain.NewInternedString("fs:/project")

	assert.Equal(t, is1.Value(), is2.Value())
	assert.Equal(t, "fs:/project", is1.String())
	assert.False(t, is1.IsZero())
}

func TestInternedString_Zero(t *testing.T) {
	var is domain.InternedString

	assert.True(t, is.IsZero())
	assert.Empty(t, is.String())
}

func TestInternedStringJSON(t *testing.T) {
	type importerRecord struct {
		ID domain.InternedString `json:"id"`
	}

	original := importerRecord{ID: domain.NewInternedString("fs:/styles")}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"fs:/styles"}`, string(data))

	var decoded importerRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.ID.Value(), decoded.ID.Value())
}

func TestNewInternedStrings(t *testing.T) {
	interned := domain.NewInternedStrings([]string{"/a/b", "/a/c", "/a/b"})

	require.Len(t, interned, 3)
	assert.Equal(t, "/a/c", interned[1].String())
	assert.Equal(t, interned[0].Value(), interned[2].Value())
	assert.Empty(t, domain.NewInternedStrings(nil))
}
