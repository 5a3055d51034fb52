package lazyseq_test

import (
	"iter"
	"testing"

	"github.com/chemacortes/lazyseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naturals yields 0, 1, 2, ... forever.
func naturals() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := int64(0); ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// upto yields 0, 1, ..., n-1 and then stops.
func upto(n int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := int64(0); i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestSequence_At(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		want     int64
		wantSize int
	}{
		{name: "first element", index: 0, want: 0, wantSize: 1},
		{name: "forces up to index", index: 9, want: 9, wantSize: 10},
		{name: "cached hit does not force", index: 3, want: 3, wantSize: 10},
		{name: "forces further", index: 20, want: 20, wantSize: 21},
	}

	s := lazyseq.New(naturals())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.At(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSize, s.Size())
		})
	}
}

func TestSequence_At_NegativeIndex(t *testing.T) {
	s := lazyseq.New(naturals())
	_, err := s.At(-1)

	var idxErr *lazyseq.IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, -1, idxErr.Index)
}

func TestSequence_At_Idempotent(t *testing.T) {
	s := lazyseq.New(naturals())

	first, err := s.At(42)
	require.NoError(t, err)
	size := s.Size()

	second, err := s.At(42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, size, s.Size(), "repeated access must not grow the cache")
}

func TestSequence_PullNext(t *testing.T) {
	s := lazyseq.New(upto(2))

	v, err := s.PullNext()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	v, err = s.PullNext()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = s.PullNext()
	assert.ErrorIs(t, err, lazyseq.ErrExhausted)

	// The cache keeps everything produced before exhaustion.
	assert.Equal(t, 2, s.Size())
}

func TestSequence_At_Exhausted(t *testing.T) {
	s := lazyseq.New(upto(3))

	_, err := s.At(10)
	assert.ErrorIs(t, err, lazyseq.ErrExhausted)

	// Indices within the produced prefix are still served.
	v, err := s.At(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestSequence_Slice(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		want              []int64
		wantErr           bool
	}{
		{name: "plain range", start: 2, stop: 6, step: 1, want: []int64{2, 3, 4, 5}},
		{name: "stepped range", start: 0, stop: 10, step: 3, want: []int64{0, 3, 6, 9}},
		{name: "empty range", start: 4, stop: 4, step: 1, want: []int64{}},
		{name: "stop before start", start: 5, stop: 2, step: 1, want: []int64{}},
		{name: "negative start", start: -1, stop: 4, step: 1, wantErr: true},
		{name: "negative stop", start: 0, stop: -1, step: 1, wantErr: true},
		{name: "zero step", start: 0, stop: 4, step: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := lazyseq.New(naturals())
			got, err := s.Slice(tt.start, tt.stop, tt.step)

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

func TestSequence_Slice_MatchesAt(t *testing.T) {
	s := lazyseq.New(naturals())

	got, err := s.Slice(3, 8, 1)
	require.NoError(t, err)

	for i, v := range got {
		want, err := s.At(3 + i)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestSequence_All_Restartable(t *testing.T) {
	s := lazyseq.New(naturals())

	collect := func(n int) []int64 {
		out := make([]int64, 0, n)
		for v := range s.All() {
			out = append(out, v)
			if len(out) == n {
				break
			}
		}
		return out
	}

	first := collect(5)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, first)

	// A second iteration re-yields the cache from the start, then continues.
	second := collect(8)
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7}, second)
	assert.Equal(t, 8, s.Size())
}

func TestSequence_All_FiniteProducer(t *testing.T) {
	s := lazyseq.New(upto(4))

	var out []int64
	for v := range s.All() {
		out = append(out, v)
	}
	assert.Equal(t, []int64{0, 1, 2, 3}, out)
}

func TestSequence_From(t *testing.T) {
	s := lazyseq.New(naturals())

	var out []int64
	for v := range s.From(10) {
		out = append(out, v)
		if len(out) == 3 {
			break
		}
	}
	assert.Equal(t, []int64{10, 11, 12}, out)
}

func TestSequence_LastAndSize(t *testing.T) {
	s := lazyseq.New(naturals())

	_, ok := s.Last()
	assert.False(t, ok, "empty cache has no last value")
	assert.Equal(t, 0, s.Size())

	_, err := s.At(5)
	require.NoError(t, err)

	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, int64(5), last)
	assert.Equal(t, 6, s.Size())
}

func TestSequence_Cached(t *testing.T) {
	s := lazyseq.New(naturals())

	_, ok := s.Cached(0)
	assert.False(t, ok, "Cached must not force the producer")
	assert.Equal(t, 0, s.Size())

	_, err := s.At(2)
	require.NoError(t, err)

	v, ok := s.Cached(1)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	_, ok = s.Cached(3)
	assert.False(t, ok)
}

func TestSequence_NewWithPrefix(t *testing.T) {
	// Producer continues the sequence after the seeded prefix.
	cont := func(yield func(int64) bool) {
		for i := int64(2); ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	seeded := lazyseq.NewWithPrefix([]int64{0, 1}, cont)
	assert.Equal(t, 2, seeded.Size())

	v, err := seeded.At(4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)
}

func TestSequence_Stop(t *testing.T) {
	s := lazyseq.New(naturals())

	_, err := s.At(3)
	require.NoError(t, err)

	s.Stop()

	_, err = s.At(10)
	assert.ErrorIs(t, err, lazyseq.ErrExhausted)

	// Cached values remain readable.
	v, err := s.At(3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

// countingMetrics records calls for assertions.
type countingMetrics struct {
	hits  int
	pulls int
	size  int
}

func (m *countingMetrics) Hit()       { m.hits++ }
func (m *countingMetrics) Pull()      { m.pulls++ }
func (m *countingMetrics) Size(n int) { m.size = n }

func TestSequence_Metrics(t *testing.T) {
	m := &countingMetrics{}
	s := lazyseq.New(naturals(), lazyseq.WithMetrics(m))

	_, err := s.At(4)
	require.NoError(t, err)
	assert.Equal(t, 5, m.pulls)
	assert.Equal(t, 5, m.size)
	assert.Equal(t, 0, m.hits)

	_, err = s.At(2)
	require.NoError(t, err)
	assert.Equal(t, 1, m.hits)
	assert.Equal(t, 5, m.pulls)
}
