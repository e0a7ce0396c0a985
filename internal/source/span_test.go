package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint later span extends end",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "earlier span extends start",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 2, End: 5},
			expected: Span{File: 1, Start: 2, End: 20},
		},
		{
			name:     "contained span is a no-op",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 12, End: 15},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "different file is ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "covering empty span",
			span:     Span{File: 1, Start: 10, End: 10},
			other:    Span{File: 1, Start: 8, End: 12},
			expected: Span{File: 1, Start: 8, End: 12},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Fatalf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	if !(Span{File: 1, Start: 5, End: 5}).Empty() {
		t.Fatal("zero-length span must be empty")
	}
	if (Span{File: 1, Start: 5, End: 6}).Empty() {
		t.Fatal("non-empty span reported empty")
	}
	if got := (Span{Start: 3, End: 10}).Len(); got != 7 {
		t.Fatalf("Len() = %d, want 7", got)
	}
}
