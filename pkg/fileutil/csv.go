package fileutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVReader provides a helper/utility to stream CSV file(s)
type CSVReader struct {
	FilePath string
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		FilePath: fp,
	}
}

// ReadAndProcessByRow opens the file once, hands the header row to headerFn and
// then every data row to rowFn together with its line number. Lines starting
// with '#' are skipped and rows may have differing field counts; rowFn decides
// what to do with short rows.
func (r *CSVReader) ReadAndProcessByRow(headerFn func([]string) error, rowFn func(line int, row []string) error) error {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("reading CSV header: file is empty")
	}
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}

	if err := headerFn(header); err != nil {
		return err
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if err := rowFn(line, row); err != nil {
			return err
		}
	}

	return nil
}
