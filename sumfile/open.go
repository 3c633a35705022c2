// Package sumfile reads summary statistics files from local disk or Google
// Storage, decompresses them, guesses their dialect and streams them through
// a sumstats.Parser.
package sumfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// File is an open, transparently decompressed summary statistics file.
type File struct {
	io.Reader

	Path string

	// Size is the stored (possibly compressed) size in bytes.
	Size        int64
	Compression DataType

	closers []io.Closer
}

// Open opens path for reading. Paths that start with gs:// are read from Google
// Storage through client, which may be nil for local-only use. A leading ~ is
// expanded to the user's home directory.
func Open(ctx context.Context, path string, client *storage.Client) (*File, error) {
	out := &File{Path: path}

	var raw io.ReadCloser
	if IsGoogleStoragePath(path) {
		if client == nil {
			return nil, fmt.Errorf("%s: a storage client is required to read from Google Storage", path)
		}

		rdr, size, err := openGoogleStorage(ctx, path, client)
		if err != nil {
			return nil, err
		}
		raw, out.Size = rdr, size
	} else {
		expanded, err := ExpandHome(path)
		if err != nil {
			return nil, err
		}

		f, err := os.Open(expanded)
		if err != nil {
			return nil, pfx.Err(err)
		}
		fstat, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		raw, out.Size = f, fstat.Size()
	}

	decompressed, dt, err := MaybeDecompress(raw)
	if err != nil {
		raw.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	out.Reader = decompressed
	out.Compression = dt
	out.closers = []io.Closer{decompressed, raw}

	return out, nil
}

// Close releases the decompressor and the underlying file or object reader.
func (f *File) Close() error {
	var firstErr error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
