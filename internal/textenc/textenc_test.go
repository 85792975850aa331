package textenc

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/japanese"
)

func TestDecodeUTF8(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Lyric=あ")...)
	got, err := Decode(in)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if string(got) != "Lyric=あ" {
		t.Errorf("Decode = %q, want %q", got, "Lyric=あ")
	}
}

func TestDecodeShiftJIS(t *testing.T) {
	sjis, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("Lyric=きゃ"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "score.ust")
	if err := os.WriteFile(path, sjis, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != "Lyric=きゃ" {
		t.Errorf("ReadFile = %q, want %q", got, "Lyric=きゃ")
	}
}
