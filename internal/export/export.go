package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/util"
)

const (
	SheetName   = "Products"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	featureSep  = " | "
)

var header = []any{
	"ID", "NameAr", "NameEn", "DescriptionAr", "DescriptionEn", "CategoryID",
	"ImageURL", "VideoURL", "FeaturesAr", "FeaturesEn", "Order", "IsActive",
}

// Products builds a workbook with a header row and one row per product.
func Products(products []models.Product) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []any{
			p.ID,
			p.NameAr,
			util.Deref(p.NameEn),
			util.Deref(p.DescriptionAr),
			util.Deref(p.DescriptionEn),
			util.Deref(p.CategoryID),
			util.Deref(p.ImageURL),
			util.Deref(p.VideoURL),
			strings.Join(p.FeaturesAr, featureSep),
			strings.Join(p.FeaturesEn, featureSep),
			p.Order,
			strconv.FormatBool(p.IsActive),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

func WriteProducts(w io.Writer, products []models.Product) error {
	f, err := Products(products)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
