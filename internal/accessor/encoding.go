package accessor

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
)

// textEncoding is the byte-level encoding of a file's content, detected
// from a leading sample by BOM, since a general-purpose statistical
// detector would be too fragile to run over gigabytes of arbitrary log
// content.
type textEncoding int

const (
	encodingUTF8 textEncoding = iota // includes plain ASCII and UTF-8 without a BOM
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

const encodingSampleSize = 4

func detectTextEncoding(path string) (textEncoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return encodingUTF8, err
	}
	defer f.Close()

	sample := make([]byte, encodingSampleSize)
	n, err := f.Read(sample)
	if err != nil && err != io.EOF {
		return encodingUTF8, err
	}
	sample = sample[:n]

	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM, nil
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE, nil
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE, nil
		}
	}
	return encodingUTF8, nil
}

// transcodeToUTF8Temp rewrites path as plain UTF-8 (BOM stripped, UTF-16
// transcoded) into a new temp file, so every downstream byte offset in the
// accessor addresses real UTF-8 bytes and a bare '\n' always means a line
// break. UTF-16 line endings are not a single 0x0A byte, so trying to
// byte-scan a UTF-16 file directly would misplace every line boundary.
func transcodeToUTF8Temp(path string, enc textEncoding) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	switch enc {
	case encodingUTF8BOM:
		if _, err := src.Seek(3, io.SeekStart); err != nil {
			return "", err
		}
	case encodingUTF16LE, encodingUTF16BE:
		if _, err := src.Seek(2, io.SeekStart); err != nil {
			return "", err
		}
	}

	dst, err := os.CreateTemp("", "hugeless-utf8-*")
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if enc == encodingUTF16LE || enc == encodingUTF16BE {
		endian := unicode.LittleEndian
		if enc == encodingUTF16BE {
			endian = unicode.BigEndian
		}
		// The BOM bytes were already consumed above via Seek, so the
		// decoder never sees them and IgnoreBOM is exactly what's wanted.
		decoder := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
		reader := decoder.Reader(src)
		if _, err := io.Copy(dst, reader); err != nil {
			os.Remove(dst.Name())
			return "", err
		}
		return dst.Name(), nil
	}

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}
