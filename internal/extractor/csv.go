package extractor

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"KonkurRankPredictor/internal/models"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WriteCSV writes rows as UTF-8 CSV with a leading byte order mark.
// There is no header or index column and short rows are not padded.
func WriteCSV(w io.Writer, rows []models.Row) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)
	for i, row := range rows {
		// a lone empty field would be written as a blank line, which readers skip
		if len(row) == 1 && row[0] == "" {
			cw.Flush()
			if _, err := io.WriteString(bw, "\"\"\n"); err != nil {
				return fmt.Errorf("WriteCSV(): row %d: %w", i, err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV(): row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Close()
}

// SaveCSV creates (or truncates) path and writes rows to it.
func SaveCSV(path string, rows []models.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV reads a file produced by WriteCSV, stripping the BOM and
// allowing rows of different lengths.
func ReadCSV(r io.Reader) ([]models.Row, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := make([]models.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, models.Row(rec))
	}
	return rows, nil
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
