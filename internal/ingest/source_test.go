package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"debtscope/internal/common"
)

func TestOpenDispatchesByExtension(t *testing.T) {
	src, err := Open("")
	require.NoError(t, err)
	assert.IsType(t, EmbeddedSource{}, src)

	src, err = Open("ledger.json")
	require.NoError(t, err)
	assert.IsType(t, JSONSource{}, src)

	src, err = Open("Ledger.XLSX")
	require.NoError(t, err)
	assert.IsType(t, XLSXSource{}, src)

	_, err = Open("ledger.csv")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestEmbeddedSourceLoads(t *testing.T) {
	records, err := EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, records)

	// The resident dataset exercises the whole raw contract.
	var sawPadded, sawExtra, sawOrigin bool
	for _, r := range records {
		if r.TotalPadded != nil {
			sawPadded = true
		}
		if r.Extra != "" {
			sawExtra = true
		}
		if r.Status == "Origem do Parcelamento" {
			sawOrigin = true
		}
	}
	assert.True(t, sawPadded, "dataset should carry a padded total variant")
	assert.True(t, sawExtra, "dataset should carry a secondary free-text column")
	assert.True(t, sawOrigin, "dataset should carry installment origin rows")
}

func TestJSONSourceMixedTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	payload := `[
		{"EMPRESA": "Acme", "Nome do Débito": "IRPJ 2024", "Total": "1.500,00", "Situação": "Vencido", "Vencimento Original": "01/15/24"},
		{"EMPRESA": "Acme", "Nome do Débito": "ISS abril", "Total": 982.4, "Principal": 982.4, "Situação": "A Vencer", "Vencimento Original": "05/10/24"},
		{"EMPRESA": "Beta", "Nome do Débito": "COFINS", "Total": "", " Total ": "5.606,77", "Situação": "Vencido", "Vencimento Original": "02/23/24"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	records, err := JSONSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "1.500,00", records[0].Total)
	assert.Equal(t, 982.4, records[1].Total)
	assert.Equal(t, "5.606,77", records[2].ResolvedTotal())
}

func TestJSONSourceErrors(t *testing.T) {
	_, err := JSONSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = JSONSource{Path: path}.Load(context.Background())
	assert.Error(t, err)
}

func TestXLSXSourceMapsHeadersVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []any{"EMPRESA", "Nome do Débito", "Competência", "Vencimento Original", "Principal", "Multa", "Juros", "Total", " Total ", "Situação", "Column10"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))

	row1 := []any{"Acme", "IRPJ 2024", "jan-24", "01/15/24", "1.200,00", "240,00", "60,00", "1.500,00", "", "Vencido", ""}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row1))
	row2 := []any{"Beta", "COFINS", "feb-24", "02/23/24", "", "", "", "", "5.606,77", "Vencido", "saldo devedor 1.000,00"}
	require.NoError(t, f.SetSheetRow(sheet, "A3", &row2))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := XLSXSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, "IRPJ 2024", records[0].DebtName)
	assert.Equal(t, "1.500,00", records[0].ResolvedTotal())

	// The padded header maps to its own column and wins when populated.
	assert.Equal(t, "5.606,77", records[1].ResolvedTotal())
	assert.Equal(t, "saldo devedor 1.000,00", records[1].Extra)
}

func TestJSONAndXLSXAgreeOnEquivalentContent(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "ledger.json")
	payload := `[
		{"EMPRESA": "Acme", "Nome do Débito": "IRPJ 2024", "Competência": "jan-24",
		 "Vencimento Original": "01/15/24", "Principal": "1.200,00", "Multa": "240,00",
		 "Juros": "60,00", "Total": "1.500,00", "Situação": "Vencido"},
		{"EMPRESA": "Beta", "Nome do Débito": "COFINS", "Competência": "feb-24",
		 "Vencimento Original": "02/23/24", " Total ": "5.606,77", "Situação": "Vencido",
		 "Column10": "saldo devedor 1.000,00"}
	]`
	require.NoError(t, os.WriteFile(jsonPath, []byte(payload), 0o600))

	xlsxPath := filepath.Join(dir, "ledger.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []any{"EMPRESA", "Nome do Débito", "Competência", "Vencimento Original", "Principal", "Multa", "Juros", "Total", " Total ", "Situação", "Column10"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Acme", "IRPJ 2024", "jan-24", "01/15/24", "1.200,00", "240,00", "60,00", "1.500,00", "", "Vencido", ""}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Beta", "COFINS", "feb-24", "02/23/24", "", "", "", "", "5.606,77", "Vencido", "saldo devedor 1.000,00"}))
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	fromJSON, err := JSONSource{Path: jsonPath}.Load(context.Background())
	require.NoError(t, err)
	fromXLSX, err := XLSXSource{Path: xlsxPath}.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, fromXLSX, len(fromJSON))
	for i := range fromJSON {
		assert.Equal(t, fromJSON[i].Company, fromXLSX[i].Company)
		assert.Equal(t, fromJSON[i].DebtName, fromXLSX[i].DebtName)
		assert.Equal(t, fromJSON[i].Competence, fromXLSX[i].Competence)
		assert.Equal(t, fromJSON[i].DueDate, fromXLSX[i].DueDate)
		assert.Equal(t, fromJSON[i].Status, fromXLSX[i].Status)
		assert.Equal(t, fromJSON[i].Extra, fromXLSX[i].Extra)
		assert.Equal(t, fromJSON[i].ResolvedTotal(), fromXLSX[i].ResolvedTotal())
	}
}

func TestXLSXSourceMissingFile(t *testing.T) {
	_, err := XLSXSource{Path: filepath.Join(t.TempDir(), "missing.xlsx")}.Load(context.Background())
	assert.Error(t, err)
}
