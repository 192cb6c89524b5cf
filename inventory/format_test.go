package inventory

import (
	"testing"
)

func TestConvertSize(t *testing.T) {
	cases := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{10551256003, "9.83 GB"},
		{1 << 20, "1 MB"},
		{1 << 30, "1 GB"},
		{1 << 40, "1 TB"},
		{1 << 50, "1 PB"},
		{1 << 60, "1 EB"},
	}
	for _, tc := range cases {
		if got := ConvertSize(tc.bytes); got != tc.want {
			t.Errorf("ConvertSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}
