package sumfile

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/zlib"
	"io"

	"github.com/klauspost/pgzip"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZlib
	DataTypeBZip2
)

func (d DataType) String() string {
	switch d {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZlib:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}

	return "invalid"
}

// Ordered so that the longest signatures are tried first.
var byteCodeSigs = []struct {
	DataType
	Sig []byte
}{
	{DataTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{DataTypeZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{DataTypeGzip, []byte{0x1f, 0x8b, 0x08}},
	{DataTypeBZip2, []byte{0x42, 0x5a, 0x68}},
	{DataTypeZlib, []byte{0x78, 0x01}},
	{DataTypeZlib, []byte{0x78, 0x9c}},
	{DataTypeZlib, []byte{0x78, 0xda}},
}

// DetectDataType identifies the compression of a stream from its first bytes.
// Byte code signatures from https://stackoverflow.com/a/19127748/199475
func DetectDataType(head []byte) DataType {
	for _, sig := range byteCodeSigs {
		if bytes.HasPrefix(head, sig.Sig) {
			return sig.DataType
		}
	}

	return DataTypeNoCompression
}

// MaybeDecompress peeks at the start of r and, if it carries a known
// compression signature, wraps it in the matching decompressor. bgzip output
// is read as multi-member gzip. The returned ReadCloser does not close r.
func MaybeDecompress(r io.Reader) (io.ReadCloser, DataType, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(6)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, DataTypeInvalid, err
	}

	dt := DetectDataType(head)

	switch dt {
	case DataTypeGzip:
		gz, err := pgzip.NewReader(br)
		if err != nil {
			return nil, DataTypeInvalid, err
		}
		return gz, dt, nil
	case DataTypeZip:
		// Only the first member of an archive is read.
		zr := zipstream.NewReader(br)
		if _, err := zr.Next(); err != nil {
			return nil, DataTypeInvalid, err
		}
		return io.NopCloser(zr), dt, nil
	case DataTypeBZip2:
		return io.NopCloser(bzip2.NewReader(br)), dt, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(br, 0)
		if err != nil {
			return nil, DataTypeInvalid, err
		}
		return io.NopCloser(reader), dt, nil
	case DataTypeZlib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, DataTypeInvalid, err
		}
		return zr, dt, nil
	}

	return io.NopCloser(br), dt, nil
}
