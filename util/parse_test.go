package util

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"10MB", 10 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"2048", 2048},
		{" 5mb ", 5 * 1024 * 1024},
		{"", 42},
		{"banana", 42},
	}
	for _, tc := range cases {
		if got := ParseSize(tc.in, 42); got != tc.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("supersecretvalue", 4); got != "supe***" {
		t.Errorf("unexpected mask: %q", got)
	}
	if got := MaskSecret("ab", 4); got != "***" {
		t.Errorf("short secrets must be fully masked, got %q", got)
	}
}
