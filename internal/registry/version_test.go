package registry

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b    string
		want    int
		wantErr bool
	}{
		{"1.0.0", "1.0.0", 0, false},
		{"1.0.0", "1.1.0", -1, false},
		{"2.0.0", "1.9.9", 1, false},
		{"v1.2.0", "1.2.0", 0, false},
		{"1.0.0-rc.1", "1.0.0", -1, false},
		{"garbage", "1.0.0", 0, true},
	}

	for _, tt := range tests {
		got, err := CompareVersions(tt.a, tt.b)
		if tt.wantErr {
			if err == nil {
				t.Errorf("CompareVersions(%q, %q): expected error", tt.a, tt.b)
			}
			continue
		}
		if err != nil {
			t.Errorf("CompareVersions(%q, %q): %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsStale(t *testing.T) {
	tests := []struct {
		installed string
		registry  string
		want      bool
	}{
		{"1.0.0", "1.1.0", true},
		{"1.1.0", "1.1.0", false},
		{"1.2.0", "1.1.0", false},
		{"", "1.1.0", false},        // never installed
		{"garbage", "1.1.0", false}, // advisory only
	}

	for _, tt := range tests {
		if got := IsStale(tt.installed, tt.registry); got != tt.want {
			t.Errorf("IsStale(%q, %q) = %v, want %v", tt.installed, tt.registry, got, tt.want)
		}
	}
}
