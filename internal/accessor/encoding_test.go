package accessor

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempBytes(t *testing.T, content []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.log")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestDetectTextEncoding_Plain(t *testing.T) {
	path := writeTempBytes(t, []byte("alpha\nbeta\n"))
	enc, err := detectTextEncoding(path)
	if err != nil {
		t.Fatalf("detectTextEncoding: %v", err)
	}
	if enc != encodingUTF8 {
		t.Fatalf("enc = %v, want encodingUTF8", enc)
	}
}

func TestDetectTextEncoding_UTF8BOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("alpha\n")...)
	path := writeTempBytes(t, content)
	enc, err := detectTextEncoding(path)
	if err != nil {
		t.Fatalf("detectTextEncoding: %v", err)
	}
	if enc != encodingUTF8BOM {
		t.Fatalf("enc = %v, want encodingUTF8BOM", enc)
	}
}

func TestDetectTextEncoding_UTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 'a', 0x00, 0x0A, 0x00}
	path := writeTempBytes(t, content)
	enc, err := detectTextEncoding(path)
	if err != nil {
		t.Fatalf("detectTextEncoding: %v", err)
	}
	if enc != encodingUTF16LE {
		t.Fatalf("enc = %v, want encodingUTF16LE", enc)
	}
}

func TestTranscodeToUTF8Temp_StripsBOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("alpha\nbeta\n")...)
	path := writeTempBytes(t, content)

	out, err := transcodeToUTF8Temp(path, encodingUTF8BOM)
	if err != nil {
		t.Fatalf("transcodeToUTF8Temp: %v", err)
	}
	defer os.Remove(out)

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "alpha\nbeta\n" {
		t.Fatalf("got %q, want %q", got, "alpha\nbeta\n")
	}
}

func TestTranscodeToUTF8Temp_UTF16LE(t *testing.T) {
	// "hi\n" encoded as UTF-16LE with a leading BOM.
	content := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, 0x0A, 0x00}
	path := writeTempBytes(t, content)

	out, err := transcodeToUTF8Temp(path, encodingUTF16LE)
	if err != nil {
		t.Fatalf("transcodeToUTF8Temp: %v", err)
	}
	defer os.Remove(out)

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hi\n" {
		t.Fatalf("got %q, want %q", got, "hi\n")
	}
}

func TestOpen_UTF16File(t *testing.T) {
	content := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, 0x0A, 0x00}
	path := writeTempBytes(t, content)

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	result, err := a.ReadFromByte(0, 10, nil)
	if err != nil {
		t.Fatalf("ReadFromByte: %v", err)
	}
	if len(result.Lines) != 1 || result.Lines[0].Text != "hi" {
		t.Fatalf("unexpected lines: %+v", result.Lines)
	}
}
