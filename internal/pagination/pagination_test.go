package pagination_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/internal/pagination"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func identity(v int) int { return v }

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		name     string
		length   int
		pageSize int
		expected int
	}{
		{name: "empty dataset has one page", length: 0, pageSize: 5, expected: 1},
		{name: "exact multiple", length: 20, pageSize: 10, expected: 2},
		{name: "partial last page", length: 24, pageSize: 9, expected: 3},
		{name: "single item", length: 1, pageSize: 9, expected: 1},
		{name: "page size one", length: 7, pageSize: 1, expected: 7},
		{name: "zero page size clamped", length: 3, pageSize: 0, expected: 3},
		{name: "negative page size clamped", length: 3, pageSize: -4, expected: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := pagination.New(seq(tc.length), tc.pageSize, identity)
			assert.Equal(t, tc.expected, p.TotalPages())
			assert.Equal(t, tc.expected, pagination.TotalPages(tc.length, tc.pageSize))
		})
	}
}

func TestPaginator_PagesPartitionData(t *testing.T) {
	for length := 0; length <= 40; length++ {
		for pageSize := 1; pageSize <= 12; pageSize++ {
			data := seq(length)
			p := pagination.New(data, pageSize, identity)

			var joined []int
			for page := 1; page <= p.TotalPages(); page++ {
				if page > 1 {
					require.True(t, p.GoTo(pagination.NextTarget))
				}
				items := p.CurrentPageItems()
				assert.LessOrEqual(t, len(items), pageSize)
				joined = append(joined, items...)
			}
			if length == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, data, joined, "length=%d pageSize=%d", length, pageSize)
		}
	}
}

func TestPaginator_TwentyFourItemsNinePerPage(t *testing.T) {
	data := seq(24)
	frame := &pagination.Frame[string]{}
	p := pagination.New(data, 9, strconv.Itoa, pagination.WithFrame(frame))

	require.Equal(t, 3, p.TotalPages())

	p.Start()
	assert.Equal(t, data[0:9], p.CurrentPageItems())
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8"}, frame.Items)

	require.True(t, p.GoTo(pagination.PageTarget(3)))
	assert.Equal(t, data[18:24], p.CurrentPageItems())
	assert.Len(t, frame.Items, 6)
	assert.Equal(t, "18", frame.Items[0])
}

func TestPaginator_GoTo(t *testing.T) {
	testCases := []struct {
		name         string
		start        int
		target       pagination.Target
		expectedPage int
		expectedOK   bool
	}{
		{name: "previous on first page", start: 1, target: pagination.PrevTarget, expectedPage: 1, expectedOK: false},
		{name: "next on last page", start: 10, target: pagination.NextTarget, expectedPage: 10, expectedOK: false},
		{name: "previous", start: 4, target: pagination.PrevTarget, expectedPage: 3, expectedOK: true},
		{name: "next", start: 4, target: pagination.NextTarget, expectedPage: 5, expectedOK: true},
		{name: "explicit page", start: 1, target: pagination.PageTarget(7), expectedPage: 7, expectedOK: true},
		{name: "page zero", start: 2, target: pagination.PageTarget(0), expectedPage: 2, expectedOK: false},
		{name: "negative page", start: 2, target: pagination.PageTarget(-1), expectedPage: 2, expectedOK: false},
		{name: "page past the end", start: 2, target: pagination.PageTarget(11), expectedPage: 2, expectedOK: false},
		{name: "ellipsis target", start: 2, target: pagination.Target{Kind: pagination.Ellipsis}, expectedPage: 2, expectedOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := pagination.New(seq(100), 10, identity)
			if tc.start != 1 {
				require.True(t, p.GoTo(pagination.PageTarget(tc.start)))
			}

			ok := p.GoTo(tc.target)

			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedPage, p.CurrentPage())
		})
	}
}

func TestPaginator_RenderCallbackPerVisibleItem(t *testing.T) {
	var calls []int
	render := func(v int) int {
		calls = append(calls, v)
		return v * 10
	}
	frame := &pagination.Frame[int]{}
	p := pagination.New(seq(12), 5, render, pagination.WithFrame(frame))

	p.Start()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, calls)
	assert.Equal(t, []int{0, 10, 20, 30, 40}, frame.Items)
	assert.Equal(t, 1, frame.Renders)

	calls = nil
	require.True(t, p.GoTo(pagination.NextTarget))
	require.True(t, p.GoTo(pagination.NextTarget))
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11}, calls)
	assert.Equal(t, []int{100, 110}, frame.Items)
	assert.Equal(t, 3, frame.Renders)

	calls = nil
	assert.False(t, p.GoTo(pagination.NextTarget))
	assert.Empty(t, calls, "rejected navigation must not render")
	assert.Equal(t, 3, frame.Renders)
}

func TestPaginator_EmptyDataset(t *testing.T) {
	frame := &pagination.Frame[int]{}
	p := pagination.New([]int{}, 5, identity, pagination.WithFrame(frame))

	p.Start()

	assert.Equal(t, 1, p.TotalPages())
	assert.Empty(t, p.CurrentPageItems())
	assert.Empty(t, frame.Items)
	assert.Equal(t, []pagination.Button{
		{Kind: pagination.Previous, Disabled: true},
		{Kind: pagination.PageNumber, Page: 1, Active: true, Disabled: true},
		{Kind: pagination.Next, Disabled: true},
	}, frame.Buttons)
	assert.False(t, p.GoTo(pagination.NextTarget))
	assert.False(t, p.GoTo(pagination.PrevTarget))
}

func TestPaginator_MissingSinksAreSkipped(t *testing.T) {
	rendered := 0
	p := pagination.New(seq(3), 2, func(v int) int {
		rendered++
		return v
	}, pagination.WithName[int]("orphan"))

	assert.NotPanics(t, func() {
		p.Start()
		p.GoTo(pagination.NextTarget)
	})
	assert.Equal(t, 0, rendered)
	assert.Equal(t, 2, p.CurrentPage())
}

type buttonRecorder struct {
	calls [][]pagination.Button
}

func (r *buttonRecorder) ShowButtons(b []pagination.Button) { r.calls = append(r.calls, b) }

func TestPaginator_SeparateSinks(t *testing.T) {
	items := &pagination.Frame[int]{}
	buttons := &buttonRecorder{}
	p := pagination.New(seq(30), 10, identity,
		pagination.WithItemSink[int](items),
		pagination.WithButtonSink[int](buttons),
	)

	p.Start()
	p.GoTo(pagination.PageTarget(2))

	require.Len(t, buttons.calls, 2)
	assert.Equal(t, p.Buttons(), buttons.calls[1])
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, items.Items)
}
