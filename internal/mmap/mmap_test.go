package mmap

import (
	"testing"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(4096)
	if err != nil {
		t.Fatalf("MapAnon failed: %v", err)
	}
	defer m.Close()

	data := m.Bytes()
	if len(data) != 4096 {
		t.Fatalf("expected 4096 bytes, got %d", len(data))
	}
	if m.Size() != 4096 {
		t.Errorf("expected size 4096, got %d", m.Size())
	}

	// Anonymous mappings are zeroed by the OS.
	for i, b := range data {
		if b != 0 {
			t.Fatalf("expected zeroed memory, byte %d is %#x", i, b)
		}
	}

	data[0] = 0xff
	data[4095] = 0xff
}

func TestMapAnon_InvalidSize(t *testing.T) {
	if _, err := MapAnon(0); err != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := MapAnon(-1); err != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestMapping_CloseIdempotent(t *testing.T) {
	m, err := MapAnon(4096)
	if err != nil {
		t.Fatalf("MapAnon failed: %v", err)
	}

	if err := m.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if m.Bytes() != nil {
		t.Errorf("expected nil bytes after Close")
	}
}
