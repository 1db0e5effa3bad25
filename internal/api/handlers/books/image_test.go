package books

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestDecodeImage_Bare(t *testing.T) {
	raw := []byte("fake image bytes")
	data, ct, err := decodeImage(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(data) != string(raw) {
		t.Fatalf("payload mismatch: %q", data)
	}
	if ct != "image/jpeg" {
		t.Fatalf("want default image/jpeg, got %q", ct)
	}
}

func TestDecodeImage_DataURI(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	data, ct, err := decodeImage(payload)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ct != "image/png" {
		t.Fatalf("want image/png, got %q", ct)
	}
	if len(data) != len(raw) {
		t.Fatalf("payload mismatch: %v", data)
	}
}

func TestDecodeImage_Invalid(t *testing.T) {
	for _, payload := range []string{"", "!!not base64!!", "data:image/png;base64"} {
		if _, _, err := decodeImage(payload); err == nil {
			t.Fatalf("expected error for %q", payload)
		}
	}
}

func TestObjectKey_Shape(t *testing.T) {
	k1 := objectKey("image/png")
	k2 := objectKey("image/png")
	if !strings.HasPrefix(k1, "books/") || !strings.HasSuffix(k1, ".png") {
		t.Fatalf("unexpected key shape: %q", k1)
	}
	if k1 == k2 {
		t.Fatal("keys must be random")
	}
	if ext := objectKey("image/jpeg"); !strings.HasSuffix(ext, ".jpg") {
		t.Fatalf("unexpected jpeg key: %q", ext)
	}
}
