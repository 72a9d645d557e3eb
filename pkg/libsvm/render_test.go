package libsvm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-libsvm/pkg/libsvm"
)

func TestRender_PlainRows(t *testing.T) {
	opts := libsvm.DefaultOptions()
	opts.IndexingMode = libsvm.IndexingZeroBased
	block, err := libsvm.ParseWithOptions("1 1:1 3:1\n-1 2:0.5\n", opts)
	require.NoError(t, err)

	out, err := libsvm.Render(block)
	require.NoError(t, err)
	assert.Equal(t, "1 1:1 3:1\n-1 2:0.5\n", string(out))
}

func TestRender_WeightAndQID(t *testing.T) {
	opts := libsvm.DefaultOptions()
	opts.IndexingMode = libsvm.IndexingZeroBased
	block, err := libsvm.ParseWithOptions("1:2.5 qid:10 5:1 7:2\n0:1 qid:20 3:0.5\n", opts)
	require.NoError(t, err)

	out, err := libsvm.Render(block)
	require.NoError(t, err)
	assert.Equal(t, "1:2.5 qid:10 5:1 7:2\n0:1 qid:20 3:0.5\n", string(out))
}

func TestRender_OneBasedAndCRLF(t *testing.T) {
	opts := libsvm.DefaultOptions()
	opts.IndexingMode = libsvm.IndexingZeroBased
	block, err := libsvm.ParseWithOptions("1 0:1 2:2\n", opts)
	require.NoError(t, err)

	wopts := libsvm.DefaultWriterOptions()
	wopts.OneBased = true
	wopts.UseCRLF = true
	out, err := libsvm.RenderWithOptions(block, wopts)
	require.NoError(t, err)
	assert.Equal(t, "1 1:1 3:2\r\n", string(out))
}

func TestRender_Empty(t *testing.T) {
	out, err := libsvm.Render(&libsvm.RowBlock{})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = libsvm.Render(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRender_RejectsBrokenColumns(t *testing.T) {
	tests := []struct {
		name  string
		block *libsvm.RowBlock
	}{
		{
			name: "offset length mismatch",
			block: &libsvm.RowBlock{
				Label:  []float32{1},
				Offset: []uint64{0},
			},
		},
		{
			name: "weight length mismatch",
			block: &libsvm.RowBlock{
				Label:  []float32{1, -1},
				Weight: []float32{0.5},
				Offset: []uint64{0, 0, 0},
			},
		},
		{
			name: "value shorter than index",
			block: &libsvm.RowBlock{
				Label:  []float32{1},
				Index:  []uint64{1},
				Value:  []float32{},
				Offset: []uint64{0, 1},
			},
		},
		{
			name: "decreasing offsets",
			block: &libsvm.RowBlock{
				Label:  []float32{1, -1},
				Index:  []uint64{1, 2},
				Value:  []float32{1, 2},
				Offset: []uint64{0, 2, 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := libsvm.Render(tt.block)
			assert.Error(t, err)
		})
	}
}

// Parse → Render → Parse must reproduce the columns exactly.
func TestRender_RoundTrip(t *testing.T) {
	opts := libsvm.DefaultOptions()
	opts.IndexingMode = libsvm.IndexingZeroBased

	inputs := []string{
		"1 0:1.5 4:-2.25 9:1e3\n-1 2:0.5\n0 7:0.125\n",
		"0.5:1.5 qid:3 1:0.25\n-0.5:2.5 qid:4 2:0.75\n",
		"1\n-1 3:2\n",
	}
	for _, input := range inputs {
		block, err := libsvm.ParseWithOptions(input, opts)
		require.NoError(t, err)

		text, err := libsvm.Render(block)
		require.NoError(t, err)

		again, err := libsvm.ParseWithOptions(string(text), opts)
		require.NoError(t, err)
		assert.Equal(t, block, again, "round trip of %q via %q", input, text)
	}
}
