package target

import (
	"testing"
)

func TestParseTriple(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Triple
		wantErr bool
	}{
		{
			name: "four components",
			in:   "x86_64-unknown-linux-gnu",
			want: Triple{Arch: "x86_64", Vendor: "unknown", OS: "linux", Env: "gnu"},
		},
		{
			name: "three components",
			in:   "aarch64-apple-darwin",
			want: Triple{Arch: "aarch64", Vendor: "apple", OS: "darwin"},
		},
		{
			name: "extra env components",
			in:   "arm-unknown-linux-musl-eabihf",
			want: Triple{Arch: "arm", Vendor: "unknown", OS: "linux", Env: "musl-eabihf"},
		},
		{
			name:    "too short",
			in:      "x86_64-linux",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTriple(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTriple(%q) succeeded", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTriple(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseTriple(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestTripleIntoDiagArg(t *testing.T) {
	tr := Triple{Arch: "riscv64", Vendor: "unknown", OS: "linux", Env: "gnu"}
	if got := tr.IntoDiagArg().Str(); got != "riscv64-unknown-linux-gnu" {
		t.Fatalf("arg = %q", got)
	}
}

func TestTripleExpectations(t *testing.T) {
	tr := Triple{Arch: "s390x", Vendor: "ibm", OS: "linux"}
	if tr.Endian() != BigEndian {
		t.Fatal("s390x must be big-endian")
	}
	bits, ok := tr.PointerBits()
	if !ok || bits != 64 {
		t.Fatalf("PointerBits() = %d, %v", bits, ok)
	}
	if _, ok := (Triple{Arch: "mystery"}).PointerBits(); ok {
		t.Fatal("unknown arch must report no expectation")
	}
}
