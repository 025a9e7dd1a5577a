package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Skotchmaster/storefront/internal/models"
)

func TestWriteProducts(t *testing.T) {
	en := "Smart Phone"
	cat := "c1"
	products := []models.Product{
		{
			Base:       models.Base{ID: "p1"},
			NameAr:     "هاتف ذكي",
			NameEn:     &en,
			CategoryID: &cat,
			FeaturesAr: []string{"شاشة", "كاميرا"},
			Order:      3,
			IsActive:   true,
		},
		{Base: models.Base{ID: "p2"}, NameAr: "ساعة"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProducts(&buf, products))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "IsActive", rows[0][11])

	assert.Equal(t, []string{
		"p1", "هاتف ذكي", "Smart Phone", "", "", "c1", "", "",
		"شاشة | كاميرا", "", "3", "true",
	}, rows[1])
	assert.Equal(t, "ساعة", rows[2][1])
	assert.Equal(t, "false", rows[2][11])
}

func TestWriteProducts_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProducts(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
