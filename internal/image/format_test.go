package image

import (
	"errors"
	"testing"
)

func TestFormat_Channels(t *testing.T) {
	tests := []struct {
		format Format
		want   int
	}{
		{FormatGray, 1},
		{FormatRGB, 3},
		{Format(99), 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Channels(); got != tt.want {
				t.Errorf("Channels() = %d, want %d", got, tt.want)
			}
			if got := tt.format.BytesPerPixel(); got != tt.want {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormat_IsGrayscale(t *testing.T) {
	if !FormatGray.IsGrayscale() {
		t.Error("FormatGray.IsGrayscale() = false")
	}
	if FormatRGB.IsGrayscale() {
		t.Error("FormatRGB.IsGrayscale() = true")
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatGray, "Gray"},
		{FormatRGB, "RGB"},
		{formatCount, "Unknown"},
		{Format(255), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_IsValid(t *testing.T) {
	if !FormatGray.IsValid() || !FormatRGB.IsValid() {
		t.Error("known formats reported invalid")
	}
	if formatCount.IsValid() || Format(200).IsValid() {
		t.Error("unknown formats reported valid")
	}
}

func TestFormatForChannels(t *testing.T) {
	tests := []struct {
		n       int
		want    Format
		wantErr bool
	}{
		{1, FormatGray, false},
		{3, FormatRGB, false},
		{0, 0, true},
		{2, 0, true},
		{4, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		got, err := FormatForChannels(tt.n)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("FormatForChannels(%d) error = %v, want ErrInvalidParameter", tt.n, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("FormatForChannels(%d) failed: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("FormatForChannels(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatGray, FormatRGB} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFormat("rgba"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseFormat(rgba) error = %v, want ErrInvalidFormat", err)
	}
}

func TestFormat_RowBytes(t *testing.T) {
	if got := FormatRGB.RowBytes(100); got != 300 {
		t.Errorf("RGB.RowBytes(100) = %d, want 300", got)
	}
	if got := FormatGray.RowBytes(100); got != 100 {
		t.Errorf("Gray.RowBytes(100) = %d, want 100", got)
	}
}

func TestFormat_ImageBytes(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		w, h   int
		want   int
		wantOK bool
	}{
		{"gray", FormatGray, 10, 20, 200, true},
		{"rgb", FormatRGB, 10, 20, 600, true},
		{"zero width", FormatRGB, 0, 20, 0, false},
		{"negative height", FormatGray, 10, -1, 0, false},
		{"invalid format", Format(9), 10, 10, 0, false},
		{"overflow", FormatRGB, maxInt / 2, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.format.ImageBytes(tt.w, tt.h)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ImageBytes(%d, %d) = %d, %v, want %d, %v", tt.w, tt.h, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFormat_Info_InvalidFormat(t *testing.T) {
	info := Format(99).Info()
	if info.Channels != 0 || info.IsGrayscale {
		t.Errorf("Info() for invalid format = %+v, want zero value", info)
	}
}
