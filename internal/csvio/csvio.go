// Package csvio reads and writes the delimited-text artifacts of a
// reconciliation run: the semicolon-separated Latin-1 ERP extract and
// the UTF-8 marketplace CSV exports, including chunked emission for
// platforms that cap rows per file.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/jugandoyeducando/marketmaster/pkg/errors"
)

// utf8BOM is prepended to output files so spreadsheet tools detect the
// encoding (the utf-8-sig convention the marketplaces expect).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadOptions configures delimited-text parsing.
type ReadOptions struct {
	// Comma is the field separator, ',' when zero.
	Comma rune

	// SkipRows drops that many leading rows before data begins.
	SkipRows int

	// Latin1 decodes the input from ISO 8859-1 instead of UTF-8.
	Latin1 bool
}

// Read parses delimited text into raw rows. Rows may have varying
// field counts; the caller's schema decides how they are interpreted.
func Read(r io.Reader, opts ReadOptions) ([][]string, error) {
	if opts.Latin1 {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}

	cr := csv.NewReader(r)
	cr.Comma = ','
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.NewParseError("csv", "", err.Error(), err)
	}

	if opts.SkipRows >= len(rows) {
		return nil, nil
	}
	return rows[opts.SkipRows:], nil
}

// ReadFile parses a delimited-text file.
func ReadFile(path string, opts ReadOptions) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer f.Close()

	rows, err := Read(f, opts)
	if err != nil {
		return nil, errors.NewParseError("csv", path, err.Error(), err)
	}
	return rows, nil
}

// WriteOptions configures delimited-text emission.
type WriteOptions struct {
	// Comma is the field separator, ',' when zero.
	Comma rune

	// BOM prepends a UTF-8 byte order mark.
	BOM bool
}

// WriteFile writes header plus rows to path atomically: the file is
// assembled under a temporary name in the target directory and renamed
// into place only on success, so a failed run leaves no partial artifact.
func WriteFile(path string, header []string, rows [][]string, opts WriteOptions) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".marketmaster-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := write(tmp, header, rows, opts); err != nil {
		tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// WriteChunks splits rows into independent complete files of at most
// chunkSize rows, each with its own header. File names derive from path
// by inserting a part suffix before the extension; a row count at or
// under the chunk size produces the single unsuffixed file. The
// returned paths are in part order.
func WriteChunks(path string, header []string, rows [][]string, chunkSize int, opts WriteOptions) ([]string, error) {
	if chunkSize <= 0 || len(rows) <= chunkSize {
		if err := WriteFile(path, header, rows, opts); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	parts := (len(rows) + chunkSize - 1) / chunkSize
	paths := make([]string, 0, parts)
	for i := 0; i < parts; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > len(rows) {
			end = len(rows)
		}
		p := chunkPath(path, i+1)
		if err := WriteFile(p, header, rows[start:end], opts); err != nil {
			// Drop already-written parts so a failed run emits nothing.
			for _, written := range paths {
				os.Remove(written)
			}
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// chunkPath derives the name of part n from the base output path.
func chunkPath(path string, n int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_parte_%d%s", base, n, ext)
}

func write(w io.Writer, header []string, rows [][]string, opts WriteOptions) error {
	if opts.BOM {
		if _, err := w.Write(utf8BOM); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	cw.Comma = ','
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}

	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
