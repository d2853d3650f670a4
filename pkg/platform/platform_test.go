package platform_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/shkit/pkg/platform"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		sysname string
		machine string
		want    platform.Platform
		label   string
	}{
		{"linux uname", "Linux", "x86_64", platform.Platform{Family: platform.Linux, Bits: 64}, "linux-64"},
		{"linux goos", "linux", "amd64", platform.Platform{Family: platform.Linux, Bits: 64}, "linux-64"},
		{"linux arm32", "Linux", "armv7l", platform.Platform{Family: platform.Linux, Bits: 32}, "linux-32"},
		{"darwin arm", "Darwin", "arm64", platform.Platform{Family: platform.Darwin, Bits: 64}, "darwin-64"},
		{"cygwin", "CYGWIN_NT-10.0", "x86_64", platform.Platform{Family: platform.Windows, Bits: 64}, "windows-64"},
		{"mingw 32", "MINGW32_NT-6.1", "i686", platform.Platform{Family: platform.Windows, Bits: 32}, "windows-32"},
		{"msys", "MSYS_NT-10.0", "x86_64", platform.Platform{Family: platform.Windows, Bits: 64}, "windows-64"},
		{"goos windows", "windows", "386", platform.Platform{Family: platform.Windows, Bits: 32}, "windows-32"},
		{"freebsd", "FreeBSD", "amd64", platform.Platform{Family: platform.FreeBSD, Bits: 64}, "freebsd-64"},
		{"unknown machine", "Linux", "vax", platform.Platform{Family: platform.Linux, Bits: 0}, "linux"},
		{"sunos", "SunOS", "i86pc", platform.Platform{Family: platform.Unsupported, Bits: 0}, "unsupported"},
		{"empty", "", "", platform.Platform{Family: platform.Unsupported, Bits: 0}, "unsupported"},
		{"whitespace", "  Linux\n", " x86_64 ", platform.Platform{Family: platform.Linux, Bits: 64}, "linux-64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := platform.Classify(tt.sysname, tt.machine)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.String())
		})
	}
}

func TestClassifyClosedSet(t *testing.T) {
	closed := map[platform.Family]bool{
		platform.Linux:       true,
		platform.Darwin:      true,
		platform.Windows:     true,
		platform.FreeBSD:     true,
		platform.Unsupported: true,
	}

	inputs := []string{"Linux", "Darwin", "OpenBSD", "Haiku", "AIX", "\x00", "🐧", "MINGW", "windows"}
	for _, in := range inputs {
		p := platform.Classify(in, "x86_64")
		assert.True(t, closed[p.Family], "family %q for %q is outside the closed set", p.Family, in)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, platform.Classify("Linux", "x86_64").Supported())
	assert.False(t, platform.Classify("Plan9", "x86_64").Supported())
}

func TestDetect(t *testing.T) {
	p := platform.Detect(context.Background())
	assert.NotEmpty(t, p.String())
}
