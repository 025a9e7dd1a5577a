package transport

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_DecodeAbsentNullValue(t *testing.T) {
	var req PatchProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"categoryId":null,"nameEn":"Phone"}`), &req))

	assert.True(t, req.CategoryID.Set)
	assert.Nil(t, req.CategoryID.Value)
	assert.True(t, req.NameEn.Set)
	require.NotNil(t, req.NameEn.Value)
	assert.Equal(t, "Phone", *req.NameEn.Value)
	assert.False(t, req.VideoURL.Set)
}

func TestOptional_ApplyTo(t *testing.T) {
	old := "old"
	dst := &old

	Optional[string]{}.ApplyTo(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "old", *dst)

	Null[string]().ApplyTo(&dst)
	assert.Nil(t, dst)

	Some("new").ApplyTo(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "new", *dst)
}

func TestOptional_EncodeOmitsAbsent(t *testing.T) {
	data, err := json.Marshal(PatchProductRequest{IsActive: ptr(false), VideoURL: Null[string](), NameEn: Some("Phone")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"isActive":false,"videoUrl":null,"nameEn":"Phone"}`, string(data))

	data, err = json.Marshal(PatchCategoryRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestValidator_OptionalString(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&PatchCategoryRequest{NameEn: Null[string]()}))
	assert.NoError(t, v.Validate(&PatchCategoryRequest{NameEn: Some("Watches")}))

	err := v.Validate(&PatchCategoryRequest{NameEn: Some(strings.Repeat("x", 256))})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Len(t, fe, 1)
	assert.Equal(t, "nameEn", fe[0].Field)
	assert.Equal(t, "max", fe[0].Tag)
}
