package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStyle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStyle(t *testing.T) {
	path := writeStyle(t, `
jitter = 2.5
repeats = 4
fill = "#fde8d0"
stroke = "#4a3f35"
stroke-width = 1.5
background = "white"
`)
	st, err := loadStyle(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Jitter == nil || *st.Jitter != 2.5 {
		t.Errorf("jitter = %v, want 2.5", st.Jitter)
	}
	if st.Repeats == nil || *st.Repeats != 4 {
		t.Errorf("repeats = %v, want 4", st.Repeats)
	}

	attrs := st.attrs()
	if attrs["fill"] != "#fde8d0" || attrs["stroke"] != "#4a3f35" || attrs["stroke-width"] != "1.5" {
		t.Errorf("attrs = %v", attrs)
	}
	if len(st.options()) != 2 {
		t.Errorf("options = %d, want 2", len(st.options()))
	}
}

func TestLoadStyle_Empty(t *testing.T) {
	st, err := loadStyle("")
	if err != nil {
		t.Fatal(err)
	}
	if st.Jitter != nil || st.Repeats != nil {
		t.Errorf("empty path should give zero style, got %+v", st)
	}
	if len(st.options()) != 0 || len(st.attrs()) != 0 {
		t.Errorf("zero style should produce no options or attrs")
	}
}

func TestLoadStyle_ZeroJitterExplicit(t *testing.T) {
	// An explicit zero differs from an absent key: it must produce a
	// WithJitter(0) option.
	st, err := loadStyle(writeStyle(t, "jitter = 0.0"))
	if err != nil {
		t.Fatal(err)
	}
	if st.Jitter == nil || *st.Jitter != 0 {
		t.Fatalf("jitter = %v, want explicit 0", st.Jitter)
	}
	if len(st.options()) != 1 {
		t.Errorf("options = %d, want 1", len(st.options()))
	}
}

func TestLoadStyle_UnknownKey(t *testing.T) {
	if _, err := loadStyle(writeStyle(t, "wobble = 3")); err == nil {
		t.Error("want error for unknown style key")
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1,2,3", 3, false},
		{" 4 , 5 ", 2, false},
		{"7", 1, false},
		{"1,,2", 2, false},
		{"", 0, true},
		{"a,b", 0, true},
	}

	for _, tt := range tests {
		got, err := parseValues(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseValues(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && len(got) != tt.want {
			t.Errorf("parseValues(%q) = %v, want %d values", tt.in, got, tt.want)
		}
	}
}
