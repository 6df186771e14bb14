// Package dataset defines the raw record type and the CSV loader.
//
// The engine's contract begins once a []RawPoint is in memory; this package
// owns everything before that point (parsing, validation, fetching).
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/clusterstep/dataset/source"
)

// RawPoint is one record of the input dataset: weekly study hours and
// nightly sleep hours. Both features are non-negative. Records are
// immutable once loaded; cluster labels are owned by the engine and kept
// positionally, never on the record itself.
type RawPoint struct {
	StudyHours float64
	SleepHours float64
}

// ErrDataLoad is the single user-facing load failure. The underlying cause
// (I/O, parse, shape) can be accessed via errors.Unwrap.
type ErrDataLoad struct {
	cause error
}

func (e *ErrDataLoad) Error() string {
	return fmt.Sprintf("dataset load failed: %v", e.cause)
}

func (e *ErrDataLoad) Unwrap() error { return e.cause }

// LoadCSV parses tabular text with a header row naming the two fields.
// Any malformed row, non-numeric cell or negative feature value fails the
// whole load with *ErrDataLoad; there is no partial result.
func LoadCSV(r io.Reader) ([]RawPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &ErrDataLoad{cause: fmt.Errorf("read header: %w", err)}
	}
	if len(header) != 2 {
		return nil, &ErrDataLoad{cause: fmt.Errorf("expected 2 columns, header has %d", len(header))}
	}

	var points []RawPoint
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ErrDataLoad{cause: err}
		}

		p, err := parseRecord(record)
		if err != nil {
			return nil, &ErrDataLoad{cause: err}
		}

		points = append(points, p)
	}

	if len(points) == 0 {
		return nil, &ErrDataLoad{cause: fmt.Errorf("no data rows after header")}
	}

	return points, nil
}

func parseRecord(record []string) (RawPoint, error) {
	study, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return RawPoint{}, fmt.Errorf("parse study hours %q: %w", record[0], err)
	}

	sleep, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return RawPoint{}, fmt.Errorf("parse sleep hours %q: %w", record[1], err)
	}

	if study < 0 || sleep < 0 {
		return RawPoint{}, fmt.Errorf("negative feature value (%v, %v)", study, sleep)
	}

	return RawPoint{StudyHours: study, SleepHours: sleep}, nil
}

// Load fetches the CSV bytes from src and parses them.
func Load(ctx context.Context, src source.Source) ([]RawPoint, error) {
	rc, err := src.Fetch(ctx)
	if err != nil {
		return nil, &ErrDataLoad{cause: err}
	}
	defer rc.Close()

	return LoadCSV(rc)
}
