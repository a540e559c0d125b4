package allocation_test

import (
	"testing"

	"tavolo/internal/domains/reservation/allocation"
	tableModel "tavolo/internal/domains/table/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(number, capacity int, pairing ...int64) tableModel.Table {
	return tableModel.Table{
		ID:          "table-" + string(rune('0'+number)),
		TableNumber: number,
		Capacity:    capacity,
		Status:      tableModel.StatusAvailable,
		Pairing:     pq.Int64Array(pairing),
	}
}

func numbers(a allocation.Assignment) []int {
	out := make([]int, len(a.Tables))
	for i, t := range a.Tables {
		out[i] = t.TableNumber
	}

	return out
}

func TestSelectTables(t *testing.T) {
	tests := []struct {
		name         string
		available    []tableModel.Table
		partySize    int
		wantNumbers  []int
		wantCapacity int
		wantOK       bool
	}{
		{
			name: "exact unpaired beats larger unpaired",
			available: []tableModel.Table{
				table(1, 6),
				table(2, 4),
			},
			partySize:    4,
			wantNumbers:  []int{2},
			wantCapacity: 4,
			wantOK:       true,
		},
		{
			name: "exact unpaired beats exact paired",
			available: []tableModel.Table{
				table(1, 4, 2),
				table(3, 4),
			},
			partySize:    4,
			wantNumbers:  []int{3},
			wantCapacity: 4,
			wantOK:       true,
		},
		{
			name: "smallest sufficient unpaired when no exact fit",
			available: []tableModel.Table{
				table(1, 8),
				table(2, 6),
				table(3, 2),
			},
			partySize:    5,
			wantNumbers:  []int{2},
			wantCapacity: 6,
			wantOK:       true,
		},
		{
			name: "smallest sufficient unpaired beats exact paired",
			available: []tableModel.Table{
				table(1, 6),
				table(2, 5, 4),
			},
			partySize:    5,
			wantNumbers:  []int{1},
			wantCapacity: 6,
			wantOK:       true,
		},
		{
			name: "exact paired alone when no unpaired fits",
			available: []tableModel.Table{
				table(1, 2),
				table(2, 4, 3),
				table(3, 6, 2),
			},
			partySize:    4,
			wantNumbers:  []int{2},
			wantCapacity: 4,
			wantOK:       true,
		},
		{
			name: "smallest sufficient paired alone",
			available: []tableModel.Table{
				table(1, 2),
				table(2, 8, 3),
				table(3, 6, 2),
			},
			partySize:    5,
			wantNumbers:  []int{3},
			wantCapacity: 6,
			wantOK:       true,
		},
		{
			name: "combination walks pairing order until the party fits",
			available: []tableModel.Table{
				table(1, 4, 2, 3),
				table(2, 4, 1),
				table(3, 4, 1),
			},
			partySize:    7,
			wantNumbers:  []int{1, 2},
			wantCapacity: 8,
			wantOK:       true,
		},
		{
			name: "combination spans the full partner list",
			available: []tableModel.Table{
				table(1, 4, 2, 3),
				table(2, 4, 1),
				table(3, 4, 1),
			},
			partySize:    11,
			wantNumbers:  []int{1, 2, 3},
			wantCapacity: 12,
			wantOK:       true,
		},
		{
			name: "combination skips partners that are not free",
			available: []tableModel.Table{
				table(1, 4, 2, 3),
				table(3, 4, 1),
			},
			partySize:    7,
			wantNumbers:  []int{1, 3},
			wantCapacity: 8,
			wantOK:       true,
		},
		{
			name: "capacity tie breaks by table number",
			available: []tableModel.Table{
				table(7, 4),
				table(2, 4),
			},
			partySize:    4,
			wantNumbers:  []int{2},
			wantCapacity: 4,
			wantOK:       true,
		},
		{
			name: "party too large for every option",
			available: []tableModel.Table{
				table(1, 4, 2),
				table(2, 4, 1),
			},
			partySize: 20,
			wantOK:    false,
		},
		{
			name:      "no tables",
			available: nil,
			partySize: 2,
			wantOK:    false,
		},
		{
			name: "non-positive party size",
			available: []tableModel.Table{
				table(1, 4),
			},
			partySize: 0,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment, ok := allocation.SelectTables(tt.available, tt.partySize)

			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}

			assert.Equal(t, tt.wantNumbers, numbers(assignment))
			assert.Equal(t, tt.wantCapacity, assignment.TotalCapacity)
		})
	}
}

func TestSelectTables_Deterministic(t *testing.T) {
	available := []tableModel.Table{
		table(5, 4, 6),
		table(6, 4, 5),
		table(1, 4),
		table(2, 4),
	}

	first, ok := allocation.SelectTables(available, 4)
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		again, ok := allocation.SelectTables(available, 4)
		require.True(t, ok)
		assert.Equal(t, numbers(first), numbers(again))
	}

	assert.Equal(t, []int{1}, numbers(first))
}
