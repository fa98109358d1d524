package pricesheet

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"studioportal/internal/domain"
)

func testPackage() *domain.Package {
	parent := uuid.New()
	return &domain.Package{
		ID:          uuid.New(),
		Name:        "Senior Portraits",
		Description: "Outdoor session",
		Price:       25000,
		Items: domain.PackageItems{
			{
				ID:    uuid.New(),
				Name:  "Wallets",
				Order: 2,
				Kind:  domain.ItemKindTiered,
				Statements: []string{
					"x <= 5 = 10",
					"x > 5 = 5",
				},
			},
			{
				ID:          parent,
				Name:        "Digital downloads",
				Description: "High-res files",
				Order:       0,
				Kind:        domain.ItemKindDefault,
				Quantities:  10,
			},
			{
				ID:      uuid.New(),
				Name:    "Extra prints",
				Order:   1,
				Kind:    domain.ItemKindPriced,
				Max:     5,
				Price:   1500,
				HardCap: true,
			},
			{
				ID:         uuid.New(),
				Name:       "Print releases",
				Order:      3,
				Kind:       domain.ItemKindDependent,
				Quantities: 1,
				Dependent:  &parent,
			},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(testPackage())
	require.Len(t, rows, 6)

	for _, row := range rows {
		assert.Len(t, row, len(columns))
		assert.Equal(t, "Senior Portraits", row[0])
	}

	assert.Equal(t, "$250.00", rows[0][8])
	assert.Equal(t, "Outdoor session", rows[0][9])

	assert.Equal(t, []string{"Senior Portraits", "Digital downloads", "default", "0", "10", "", "", "", "", "High-res files"}, rows[1])
	assert.Equal(t, []string{"Senior Portraits", "Extra prints", "priced", "1", "", "5", "Yes", "", "$15.00", ""}, rows[2])

	assert.Equal(t, "1", rows[3][7])
	assert.Equal(t, "$10.00", rows[3][8])
	assert.Equal(t, "5 or less items is $10.00", rows[3][9])
	assert.Equal(t, "2", rows[4][7])
	assert.Equal(t, "more than 5 items is $5.00", rows[4][9])

	assert.Equal(t, "1 per Digital downloads", rows[5][9])
}

func TestRows_MalformedTiers(t *testing.T) {
	pkg := testPackage()
	pkg.Items = pkg.Items[:1]
	pkg.Items[0].Statements = []string{"x <= 5 = 10", "garbage"}

	rows := Rows(pkg)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[1][7])
	assert.Equal(t, "No valid price tiers", rows[1][9])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testPackage()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, BOM))

	records, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, columns, records[0])
	assert.Equal(t, "Wallets", records[4][1])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testPackage()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, SheetName, f.GetSheetName(0))
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "Package", rows[0][0])
	assert.Equal(t, "Description", rows[0][9])
	assert.Equal(t, "more than 5 items is $5.00", rows[5][9])
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testPackage(), domain.ExportFormat("pdf"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
	assert.Zero(t, buf.Len())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Senior", "Senior"},
		{"spaces", "Senior Portraits 2026", "Senior_Portraits_2026"},
		{"symbols", "Mini & Me!! (Fall)", "Mini_Me_Fall"},
		{"empty", "***", "package"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Senior_Portraits_price_sheet_2026-03-09.csv", BuildFilename("Senior Portraits", domain.ExportFormatCSV, now))
	assert.Equal(t, "Senior_Portraits_price_sheet_2026-03-09.xlsx", BuildFilename("Senior Portraits", domain.ExportFormatXLSX, now))
}
