package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tsawler/docweave/logging"
)

// zipEpoch is the modification time stamped on every part so that the same
// document always serializes to the same bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// WriteError reports a failure to write the package to its destination.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Bytes returns the complete zip archive.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range p.parts() {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return nil, fmt.Errorf("creating part %s: %w", part.name, err)
		}
		if _, err := part.doc.WriteTo(w); err != nil {
			return nil, fmt.Errorf("encoding part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTo writes the archive to w.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	data, err := p.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Serialize writes pkg to path in a single step. The archive is written to a
// temporary file in the destination directory and renamed into place, so
// path either holds the complete document or is left untouched. No retry is
// attempted.
func Serialize(pkg *Package, path string) error {
	logger := logging.GetLogger("docx.serializer")
	done := logging.LogOperationStart(logger, "serialize")
	defer done()

	data, err := pkg.Bytes()
	if err != nil {
		return &WriteError{Path: path, Op: "encode", Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".docweave-*.tmp")
	if err != nil {
		return &WriteError{Path: path, Op: "create", Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return &WriteError{Path: path, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Op: "close", Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Op: "chmod", Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Op: "rename", Err: err}
	}

	logger.Info().Str("path", path).Int("bytes", len(data)).Int("fragments", pkg.Len()).Msg("Package written")
	return nil
}
