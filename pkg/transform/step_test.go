package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/transform"
)

func TestStepMap(t *testing.T) {
	t.Parallel()

	replace := transform.Step{From: 5, To: 14, Size: 9}
	shrink := transform.Step{From: 5, To: 14, Size: 4}
	insert := transform.Step{From: 10, To: 10, Size: 3}

	tests := []struct {
		name    string
		step    transform.Step
		pos     int
		assoc   transform.Assoc
		want    int
		deleted bool
	}{
		{name: "before is unchanged", step: shrink, pos: 3, assoc: transform.AssocAfter, want: 3},
		{name: "after shifts by delta", step: shrink, pos: 20, assoc: transform.AssocBefore, want: 15},
		{name: "start stays at start", step: shrink, pos: 5, assoc: transform.AssocAfter, want: 5},
		{name: "end moves past replacement", step: shrink, pos: 14, assoc: transform.AssocBefore, want: 9},
		{name: "inside with assoc after", step: shrink, pos: 8, assoc: transform.AssocAfter, want: 9, deleted: true},
		{name: "inside with assoc before", step: shrink, pos: 8, assoc: transform.AssocBefore, want: 5, deleted: true},
		{name: "same size replacement end", step: replace, pos: 14, assoc: transform.AssocBefore, want: 14},
		{name: "insertion pushes assoc after", step: insert, pos: 10, assoc: transform.AssocAfter, want: 13},
		{name: "insertion keeps assoc before", step: insert, pos: 10, assoc: transform.AssocBefore, want: 10},
		{name: "after insertion", step: insert, pos: 11, assoc: transform.AssocBefore, want: 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.step.MapResult(tc.pos, tc.assoc)
			assert.Equal(t, tc.want, got.Pos)
			assert.Equal(t, tc.deleted, got.Deleted)
			assert.Equal(t, tc.want, tc.step.Map(tc.pos, tc.assoc))
		})
	}
}

func TestMappingMapsThroughStepsInOrder(t *testing.T) {
	t.Parallel()

	m := transform.NewBuilder().
		Insert(0, 2).     // positions >= 0 with assoc after shift by 2
		Delete(10, 12).   // in post-insert coordinates
		Replace(3, 4, 5). // grows by 4
		Mapping()

	require.Len(t, m.Steps, 3)
	assert.Equal(t, 2+(-2)+4, m.Delta())
	assert.False(t, m.IsEmpty())

	// 1 -> 3 (insert) -> 3 (before delete) -> 3 is the start of the replacement.
	assert.Equal(t, 3, m.Map(1, transform.AssocAfter))
	// 9 -> 11 -> inside the deletion, lands on 10 -> 14 after the growth.
	res := m.MapResult(9, transform.AssocBefore)
	assert.Equal(t, 14, res.Pos)
	assert.True(t, res.Deleted)
}

func TestMappingIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, transform.Mapping{}.IsEmpty())
	assert.True(t, transform.NewMapping(transform.Step{From: 4, To: 4}).IsEmpty())
	assert.Equal(t, 7, transform.Mapping{}.Map(7, transform.AssocBefore))
}

func TestMappingValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mapping transform.Mapping
		size    int
		wantErr string
	}{
		{name: "empty", size: 0},
		{name: "valid", mapping: transform.NewMapping(transform.Step{From: 0, To: 5, Size: 1}), size: 5},
		{
			name: "later step sees shrunken document",
			mapping: transform.NewMapping(
				transform.Step{From: 0, To: 5, Size: 0},
				transform.Step{From: 0, To: 3, Size: 0},
			),
			size:    5,
			wantErr: "to 3 exceeds document size 0",
		},
		{name: "negative from", mapping: transform.NewMapping(transform.Step{From: -1, To: 0}), size: 3, wantErr: "from is negative"},
		{name: "inverted", mapping: transform.NewMapping(transform.Step{From: 2, To: 1}), size: 3, wantErr: "to is before from"},
		{name: "negative size", mapping: transform.NewMapping(transform.Step{From: 0, To: 1, Size: -1}), size: 3, wantErr: "size is negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.mapping.Validate(tc.size)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}

			var verr *transform.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Error(), tc.wantErr)
		})
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		old, new string
		want     transform.Change
	}{
		{name: "identical", old: "same", new: "same", want: transform.Change{Start: 4, OldEnd: 4, NewEnd: 4}},
		{
			name: "replacement in the middle",
			old:  "I am very very happy",
			new:  "I am extremely happy",
			want: transform.Change{Start: 5, OldEnd: 13, NewEnd: 13}, // shared trailing "y"
		},
		{name: "append", old: "abc", new: "abcdef", want: transform.Change{Start: 3, OldEnd: 3, NewEnd: 6}},
		{name: "delete prefix", old: "xxabc", new: "abc", want: transform.Change{Start: 0, OldEnd: 2, NewEnd: 0}},
		{name: "repeated runes do not overlap", old: "aaa", new: "aa", want: transform.Change{Start: 2, OldEnd: 3, NewEnd: 2}},
		{name: "rune offsets", old: "très bien", new: "très mal", want: transform.Change{Start: 5, OldEnd: 9, NewEnd: 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, transform.Diff(tc.old, tc.new))
		})
	}

	assert.True(t, transform.Diff("x", "x").IsEmpty())
	assert.False(t, transform.Diff("x", "y").IsEmpty())
}
