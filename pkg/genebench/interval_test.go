package genebench

import (
	"math"
	"testing"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIoU(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want float64
	}{
		{
			name: "identical",
			a:    Interval{100, 200},
			b:    Interval{100, 200},
			want: 1.0,
		},
		{
			name: "disjoint",
			a:    Interval{100, 200},
			b:    Interval{300, 400},
			want: 0.0,
		},
		{
			name: "half overlap",
			a:    Interval{100, 200},
			b:    Interval{150, 250},
			want: 50.0 / 150.0,
		},
		{
			name: "containment",
			a:    Interval{100, 400},
			b:    Interval{200, 300},
			want: 100.0 / 300.0,
		},
		{
			name: "touching endpoints",
			a:    Interval{100, 200},
			b:    Interval{200, 300},
			want: 0.0,
		},
		{
			name: "zero length against itself",
			a:    Interval{100, 100},
			b:    Interval{100, 100},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IoU(tt.a, tt.b)
			if !floatEq(got, tt.want) {
				t.Errorf("IoU(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// IoU is symmetric in its arguments.
			rev := IoU(tt.b, tt.a)
			if !floatEq(got, rev) {
				t.Errorf("IoU(%v, %v) = %v, reversed = %v", tt.a, tt.b, got, rev)
			}
			if got < 0 || got > 1 {
				t.Errorf("IoU(%v, %v) = %v, outside [0, 1]", tt.a, tt.b, got)
			}
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "disjoint stay separate",
			in:   []Interval{{1, 5}, {10, 20}},
			want: []Interval{{1, 5}, {10, 20}},
		},
		{
			name: "overlapping coalesce",
			in:   []Interval{{1, 10}, {5, 15}},
			want: []Interval{{1, 15}},
		},
		{
			name: "adjacent coalesce",
			in:   []Interval{{1, 5}, {6, 9}},
			want: []Interval{{1, 9}},
		},
		{
			name: "unsorted input",
			in:   []Interval{{30, 40}, {1, 5}, {3, 10}},
			want: []Interval{{1, 10}, {30, 40}},
		},
		{
			name: "contained interval absorbed",
			in:   []Interval{{1, 100}, {20, 30}},
			want: []Interval{{1, 100}},
		},
		{
			name: "duplicates collapse",
			in:   []Interval{{5, 10}, {5, 10}},
			want: []Interval{{5, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeIntervals(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("mergeIntervals(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("mergeIntervals(%v)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMergeIntervalsLeavesInputUntouched(t *testing.T) {
	in := []Interval{{30, 40}, {1, 5}}
	mergeIntervals(in)
	if in[0] != (Interval{30, 40}) || in[1] != (Interval{1, 5}) {
		t.Errorf("input modified: %v", in)
	}
}

func TestCoveredLength(t *testing.T) {
	merged := mergeIntervals([]Interval{{1, 10}, {5, 15}, {20, 20}})
	if got := coveredLength(merged); got != 16 {
		t.Errorf("coveredLength = %d, want 16", got)
	}
	if got := coveredLength(nil); got != 0 {
		t.Errorf("coveredLength(nil) = %d, want 0", got)
	}
}

func TestIntersectionLength(t *testing.T) {
	tests := []struct {
		name string
		a    []Interval
		b    []Interval
		want int
	}{
		{
			name: "disjoint",
			a:    []Interval{{1, 10}},
			b:    []Interval{{20, 30}},
			want: 0,
		},
		{
			name: "identical",
			a:    []Interval{{1, 10}},
			b:    []Interval{{1, 10}},
			want: 10,
		},
		{
			name: "single shared position",
			a:    []Interval{{1, 10}},
			b:    []Interval{{10, 20}},
			want: 1,
		},
		{
			name: "multiple segments",
			a:    []Interval{{1, 10}, {20, 30}},
			b:    []Interval{{5, 25}},
			want: 12,
		},
		{
			name: "one side empty",
			a:    nil,
			b:    []Interval{{1, 10}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intersectionLength(tt.a, tt.b); got != tt.want {
				t.Errorf("intersectionLength(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := intersectionLength(tt.b, tt.a); got != tt.want {
				t.Errorf("intersectionLength(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
