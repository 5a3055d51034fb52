package genericrange_test

import (
	"testing"

	"github.com/chemacortes/lazyseq"
	"github.com/chemacortes/lazyseq/genericrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(pos int) int64 {
	return int64(pos) * int64(pos)
}

func TestNew(t *testing.T) {
	_, err := genericrange.New(0, 10, 0, nil)
	var idxErr *lazyseq.IndexError
	assert.ErrorAs(t, err, &idxErr)

	r, err := genericrange.New(0, 5, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, r.Values(), "nil mapping is the identity")
}

func TestRange_Len(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		want              int
	}{
		{name: "simple", start: 0, stop: 10, step: 1, want: 10},
		{name: "with step", start: 0, stop: 10, step: 3, want: 4},
		{name: "empty", start: 5, stop: 5, step: 1, want: 0},
		{name: "inverted", start: 9, stop: 2, step: 1, want: 0},
		{name: "negative step", start: 10, stop: 0, step: -2, want: 5},
		{name: "negative step empty", start: 0, stop: 10, step: -1, want: 0},
		{name: "offset", start: 3, stop: 11, step: 2, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := genericrange.New(tt.start, tt.stop, tt.step, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Len())
		})
	}
}

func TestRange_At(t *testing.T) {
	r, err := genericrange.New(0, 10, 1, square)
	require.NoError(t, err)

	tests := []struct {
		name    string
		index   int
		want    int64
		wantErr bool
	}{
		{name: "first", index: 0, want: 0},
		{name: "middle", index: 3, want: 9},
		{name: "last", index: 9, want: 81},
		{name: "negative counts from end", index: -1, want: 81},
		{name: "negative middle", index: -3, want: 49},
		{name: "out of range", index: 10, wantErr: true},
		{name: "negative out of range", index: -11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.At(tt.index)
			if tt.wantErr {
				var idxErr *lazyseq.IndexError
				assert.ErrorAs(t, err, &idxErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRange_Slice(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		want              []int64
	}{
		{name: "prefix", start: 0, stop: 3, step: 1, want: []int64{0, 1, 4}},
		{name: "middle", start: 2, stop: 5, step: 1, want: []int64{4, 9, 16}},
		{name: "stepped", start: 1, stop: 10, step: 3, want: []int64{1, 16, 49}},
		{name: "negative bounds", start: -3, stop: -1, step: 1, want: []int64{49, 64}},
		{name: "clamped stop", start: 7, stop: 100, step: 1, want: []int64{49, 64, 81}},
		{name: "empty", start: 4, stop: 4, step: 1, want: []int64{}},
		{name: "reversed", start: 3, stop: 0, step: -1, want: []int64{9, 4, 1}},
		{name: "reversed full", start: -1, stop: -100, step: -4, want: []int64{81, 25, 1}},
	}

	r, err := genericrange.New(0, 10, 1, square)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := r.Slice(tt.start, tt.stop, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub.Values())
		})
	}
}

func TestRange_Slice_OfSlice(t *testing.T) {
	r, err := genericrange.New(0, 20, 1, square)
	require.NoError(t, err)

	// Take every second element, then every second of those.
	half, err := r.Slice(0, 20, 2)
	require.NoError(t, err)
	quarter, err := half.Slice(0, half.Len(), 2)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 16, 64, 144, 256}, quarter.Values())
}

func TestRange_Slice_ZeroStep(t *testing.T) {
	r, err := genericrange.New(0, 10, 1, nil)
	require.NoError(t, err)

	_, err = r.Slice(0, 5, 0)
	var idxErr *lazyseq.IndexError
	assert.ErrorAs(t, err, &idxErr)
}

func TestRange_String(t *testing.T) {
	r, err := genericrange.New(2, 12, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "Range(2, 12, 2)", r.String())
}
