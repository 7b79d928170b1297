package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vk/tcgprice/internal/fsutil"
)

const outputPerm = 0o644

func writeSheet(path string, s *sheet) error {
	return fsutil.WriteFileAtomic(path, outputPerm, func(w io.Writer) error {
		return encodeSheet(w, s)
	})
}

// encodeSheet writes the header and every record in order. Fields are quoted
// only when they contain a delimiter, quote or line break.
func encodeSheet(w io.Writer, s *sheet) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(s.header.Names()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, rec := range s.records {
		if err := cw.Write(rec.Fields()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+firstDataRow, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
