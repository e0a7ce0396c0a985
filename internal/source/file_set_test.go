package source

import (
	"testing"
)

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.lm", []byte("let a = 1\nlet b = 2\nfn main() {}\n"))

	tests := []struct {
		name  string
		span  Span
		start LineCol
		end   LineCol
	}{
		{
			name:  "start of file",
			span:  Span{File: id, Start: 0, End: 3},
			start: LineCol{Line: 1, Col: 1},
			end:   LineCol{Line: 1, Col: 4},
		},
		{
			name:  "second line",
			span:  Span{File: id, Start: 10, End: 13},
			start: LineCol{Line: 2, Col: 1},
			end:   LineCol{Line: 2, Col: 4},
		},
		{
			name:  "newline belongs to the line it ends",
			span:  Span{File: id, Start: 9, End: 10},
			start: LineCol{Line: 1, Col: 10},
			end:   LineCol{Line: 2, Col: 1},
		},
		{
			name:  "third line identifier",
			span:  Span{File: id, Start: 23, End: 27},
			start: LineCol{Line: 3, Col: 4},
			end:   LineCol{Line: 3, Col: 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.start || end != tt.end {
				t.Fatalf("Resolve() = %v, %v, want %v, %v", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestFileSet_ResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("one.lm", []byte("abc"))
	start, _ := fs.Resolve(Span{File: id, Start: 2, End: 3})
	if start != (LineCol{Line: 1, Col: 3}) {
		t.Fatalf("Resolve() start = %v, want 1:3", start)
	}
}

func TestFileSet_ResolveUnknownFile(t *testing.T) {
	fs := NewFileSet()
	start, end := fs.Resolve(Span{File: 99, Start: 0, End: 1})
	if start != (LineCol{}) || end != (LineCol{}) {
		t.Fatalf("Resolve() on unknown file = %v, %v, want zero positions", start, end)
	}
}

func TestFileSet_LatestWinsForSamePath(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("dup.lm", []byte("old"))
	second := fs.AddVirtual("dup.lm", []byte("new"))
	if first == second {
		t.Fatal("re-adding a path must mint a fresh FileID")
	}
	latest, ok := fs.GetLatest("dup.lm")
	if !ok || latest != second {
		t.Fatalf("GetLatest() = %d, %v, want %d, true", latest, ok, second)
	}
	if fs.Get(first) == nil || string(fs.Get(first).Content) != "old" {
		t.Fatal("older version must stay addressable by its FileID")
	}
}

func TestFileSet_HashDiffersByContent(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.lm", []byte("x"))
	b := fs.AddVirtual("b.lm", []byte("y"))
	if fs.Get(a).Hash == fs.Get(b).Hash {
		t.Fatal("distinct content must hash differently")
	}
}
