package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/vk/tcgprice/internal/ctxlog"
	"github.com/vk/tcgprice/internal/model"
	"github.com/vk/tcgprice/internal/pricing"
)

// firstDataRow is the row number of the first record; the header is row 1.
const firstDataRow = 2

// sheet is a fully transformed input file held in memory.
type sheet struct {
	header  *model.Header
	records []*model.Record
	floored int
}

func readSheet(ctx context.Context, path string, floor float64) (*sheet, error) {
	ctx = ctxlog.With(ctx, "input", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(FileNotFound, path, err)
		}
		return nil, newError(Unexpected, path, err)
	}
	defer f.Close()

	return transformSheet(ctx, f, path, floor)
}

// transformSheet parses CSV data from r and applies the price floor to each
// record in file order, stopping at the first failure.
func transformSheet(ctx context.Context, r io.Reader, path string, floor float64) (*sheet, error) {
	logger := ctxlog.FromContext(ctx)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, newError(MissingHeader, path, nil)
	}
	if err != nil {
		return nil, newError(Unexpected, path, fmt.Errorf("failed to read header: %w", err))
	}
	if err := checkUTF8(names); err != nil {
		return nil, newError(Unexpected, path, fmt.Errorf("header: %w", err))
	}

	header := model.NewHeader(names)
	if missing := header.Missing(RequiredColumns...); len(missing) > 0 {
		logger.Debug("Header is missing required columns.", "missing", missing, "header", names)
		return nil, &Error{Kind: MissingColumns, Path: path, Missing: missing}
	}
	logger.Debug("Header validated.", "columns", header.Len())

	s := &sheet{header: header}
	for row := firstDataRow; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, newError(Unexpected, path, err)
		}

		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newError(Unexpected, path, fmt.Errorf("failed to read row %d: %w", row, err))
		}
		if err := checkUTF8(fields); err != nil {
			return nil, newError(Unexpected, path, fmt.Errorf("row %d: %w", row, err))
		}

		rec, err := model.NewRecord(header, fields)
		if err != nil {
			return nil, newError(Unexpected, path, fmt.Errorf("row %d: %w", row, err))
		}

		out, err := pricing.Apply(rec, floor, row)
		if err != nil {
			var rowErr *pricing.RowError
			if errors.As(err, &rowErr) {
				logger.Debug("Malformed row.", "row", row, "product", rowErr.ProductName, "value", rowErr.Value)
				return nil, newError(MalformedRow, path, err)
			}
			return nil, newError(Unexpected, path, err)
		}
		if out.Floored {
			s.floored++
		}
		s.records = append(s.records, rec)
	}

	return s, nil
}

func checkUTF8(fields []string) error {
	for i, field := range fields {
		if !utf8.ValidString(field) {
			return fmt.Errorf("field %d is not valid UTF-8", i+1)
		}
	}
	return nil
}
