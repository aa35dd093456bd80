package export

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
)

// File is a buffered output file, optionally gzip-compressed.
type File struct {
	Path string

	f  *os.File
	gz *pgzip.Writer
	bw *bufio.Writer
}

// Create creates dir/name+ext, appending ".gz" when compress is set.
func Create(dir, name, ext string, compress bool) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}
	path := filepath.Join(dir, name+ext)
	if compress {
		path += ".gz"
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}

	out := &File{Path: path, f: f}
	var w io.Writer = f
	if compress {
		out.gz = pgzip.NewWriter(f)
		w = out.gz
	}
	out.bw = bufio.NewWriterSize(w, 1<<20)
	return out, nil
}

func (o *File) Write(p []byte) (int, error) {
	return o.bw.Write(p)
}

// Flush pushes buffered bytes to the file. Compressed blocks still pending in
// the gzip writer are flushed too.
func (o *File) Flush() error {
	if err := o.bw.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", o.Path)
	}
	if o.gz != nil {
		if err := o.gz.Flush(); err != nil {
			return errors.Wrapf(err, "flush gzip %s", o.Path)
		}
	}
	return nil
}

// Close flushes and closes the file.
func (o *File) Close() error {
	if err := o.bw.Flush(); err != nil {
		_ = o.f.Close()
		return errors.Wrapf(err, "flush %s", o.Path)
	}
	if o.gz != nil {
		if err := o.gz.Close(); err != nil {
			_ = o.f.Close()
			return errors.Wrapf(err, "close gzip %s", o.Path)
		}
	}
	if err := o.f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", o.Path)
	}
	return nil
}
