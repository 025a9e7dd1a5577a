package translate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_KnownEntries(t *testing.T) {
	tbl := Default()
	assert.Equal(t, 38, tbl.Len())

	cases := map[string]string{
		"إلكترونيات":         "Electronics",
		"ملابس":              "Clothing",
		"أجهزة منزلية":       "Home Appliances",
		"شاشة قابلة للدوران": "Rotatable screen",
		"GPS مدمج":           "Built-in GPS",
	}
	for in, want := range cases {
		assert.Equal(t, want, tbl.Lookup(in), in)
	}
}

func TestLookup_MissReturnsInput(t *testing.T) {
	tbl := Default()
	assert.Equal(t, "غير معروف", tbl.Lookup("غير معروف"))
	assert.Equal(t, "", tbl.Lookup(""))
	assert.Equal(t, " إلكترونيات", tbl.Lookup(" إلكترونيات"))
}

func TestTranslateAll(t *testing.T) {
	tbl := Default()

	got := tbl.TranslateAll([]string{"إلكترونيات", "x", ""})
	assert.Equal(t, []string{"Electronics", "x", ""}, got)

	empty := tbl.TranslateAll(nil)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\"قطة\": \"Cat\"\n"), 0o600))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, "Cat", tbl.Lookup("قطة"))
	assert.Equal(t, "إلكترونيات", tbl.Lookup("إلكترونيات"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	def, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 38, def.Len())
}
