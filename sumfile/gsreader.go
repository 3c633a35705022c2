package sumfile

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path names an object in a Google
// Storage bucket.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// splitGoogleStoragePath turns gs://bucket/path/to/obj into its bucket and
// object names.
func splitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// openGoogleStorage opens a streaming reader over a whole object and reports
// the object's stored size.
func openGoogleStorage(ctx context.Context, path string, client *storage.Client) (*storage.Reader, int64, error) {
	bucketName, pathName, err := splitGoogleStoragePath(path)
	if err != nil {
		return nil, 0, err
	}

	handle := client.Bucket(bucketName).Object(pathName)

	// Make a hard call to get the filesize
	attrs, err := handle.Attrs(ctx)
	if err != nil {
		return nil, 0, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	// Objects uploaded with Content-Encoding: gzip are otherwise decompressed
	// by the client, which would hide the compression from MaybeDecompress.
	rdr, err := handle.ReadCompressed(true).NewReader(ctx)
	if err != nil {
		return nil, 0, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return rdr, attrs.Size, nil
}
