package accessor

import (
	"compress/bzip2"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

type codec int

const (
	codecNone codec = iota
	codecGzip
	codecBzip2
	codecXz
	codecZstd
)

var magicSignatures = []struct {
	codec codec
	bytes []byte
}{
	{codecGzip, []byte{0x1F, 0x8B}},
	{codecBzip2, []byte{0x42, 0x5A, 0x68}},
	{codecXz, []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}},
	{codecZstd, []byte{0x28, 0xB5, 0x2F, 0xFD}},
}

var extensionCodecs = map[string]codec{
	".gz":  codecGzip,
	".bz2": codecBzip2,
	".xz":  codecXz,
	".zst": codecZstd,
}

// detectCodec sniffs the leading bytes of a file, falling back to the file
// extension when the magic bytes don't match any known signature.
func detectCodec(path string) (codec, error) {
	f, err := os.Open(path)
	if err != nil {
		return codecNone, err
	}
	defer f.Close()

	head := make([]byte, 6)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return codecNone, err
	}
	head = head[:n]

	for _, sig := range magicSignatures {
		if len(head) >= len(sig.bytes) && string(head[:len(sig.bytes)]) == string(sig.bytes) {
			return sig.codec, nil
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := extensionCodecs[ext]; ok {
		return c, nil
	}
	return codecNone, nil
}

// decompressToTemp streams a compressed file to a temporary file and returns
// its path. The caller owns cleanup of the returned path.
func decompressToTemp(path string, c codec) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	var reader io.Reader
	switch c {
	case codecGzip:
		gz, err := gzip.NewReader(src)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		reader = gz
	case codecBzip2:
		reader = bzip2.NewReader(src)
	case codecXz:
		xr, err := xz.NewReader(src)
		if err != nil {
			return "", err
		}
		reader = xr
	case codecZstd:
		zr, err := zstd.NewReader(src)
		if err != nil {
			return "", err
		}
		defer zr.Close()
		reader = zr
	default:
		return "", ErrUnsupportedCodec
	}

	tmp, err := os.CreateTemp("", "hugeless-decompressed-*")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, reader); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
