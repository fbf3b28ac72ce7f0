package core

import "testing"

func TestFormatSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{-5, "0 B"},
	}
	for _, c := range cases {
		if got := FormatSize(c.in); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(52400); got != "52,400" {
		t.Errorf("FormatCount(52400) = %q", got)
	}
	if got := FormatCount(7); got != "7" {
		t.Errorf("FormatCount(7) = %q", got)
	}
}
