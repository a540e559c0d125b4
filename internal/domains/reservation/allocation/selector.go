package allocation

import (
	"sort"

	tableModel "tavolo/internal/domains/table/model"
)

// Assignment is the table or table combination chosen for a party.
type Assignment struct {
	Tables        []tableModel.Table
	TotalCapacity int
}

// SelectTables picks the best single table or combination for the party
// size from the currently free tables. The policy minimizes wasted capacity
// and prefers a single table over a combination:
//
//  1. an unpaired table with exactly matching capacity
//  2. the smallest sufficient unpaired table
//  3. a paired-capable table with exactly matching capacity, used alone
//  4. the smallest sufficient paired-capable table, used alone
//  5. a combination of a paired-capable table with its partners, walked in
//     pairing-list order until the summed capacity covers the party
//
// Ties inside each tier break by ascending table number, so repeated calls
// over the same input return the same assignment.
func SelectTables(available []tableModel.Table, partySize int) (Assignment, bool) {
	if partySize <= 0 || len(available) == 0 {
		return Assignment{}, false
	}

	var unpaired, paired []tableModel.Table

	for _, t := range available {
		if t.IsPaired() {
			paired = append(paired, t)
		} else {
			unpaired = append(unpaired, t)
		}
	}

	sortByCapacity(unpaired)
	sortByCapacity(paired)

	if t, ok := exactFit(unpaired, partySize); ok {
		return single(t), true
	}

	if t, ok := smallestSufficient(unpaired, partySize); ok {
		return single(t), true
	}

	if t, ok := exactFit(paired, partySize); ok {
		return single(t), true
	}

	if t, ok := smallestSufficient(paired, partySize); ok {
		return single(t), true
	}

	return combine(paired, available, partySize)
}

func single(t tableModel.Table) Assignment {
	return Assignment{Tables: []tableModel.Table{t}, TotalCapacity: t.Capacity}
}

func sortByCapacity(tables []tableModel.Table) {
	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Capacity != tables[j].Capacity {
			return tables[i].Capacity < tables[j].Capacity
		}

		return tables[i].TableNumber < tables[j].TableNumber
	})
}

func exactFit(tables []tableModel.Table, partySize int) (tableModel.Table, bool) {
	for _, t := range tables {
		if t.Capacity == partySize {
			return t, true
		}
	}

	return tableModel.Table{}, false
}

func smallestSufficient(tables []tableModel.Table, partySize int) (tableModel.Table, bool) {
	for _, t := range tables {
		if t.Capacity >= partySize {
			return t, true
		}
	}

	return tableModel.Table{}, false
}

// combine walks each paired-capable table's partner list, accumulating
// capacity until the party fits. Every member of the winning combination is
// locked by the booking.
func combine(paired, available []tableModel.Table, partySize int) (Assignment, bool) {
	byNumber := make(map[int]tableModel.Table, len(available))
	for _, t := range available {
		byNumber[t.TableNumber] = t
	}

	anchors := make([]tableModel.Table, len(paired))
	copy(anchors, paired)
	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].TableNumber < anchors[j].TableNumber
	})

	for _, anchor := range anchors {
		combination := []tableModel.Table{anchor}
		total := anchor.Capacity

		for _, partnerNumber := range anchor.Pairing {
			partner, ok := byNumber[int(partnerNumber)]
			if !ok || partner.TableNumber == anchor.TableNumber {
				continue
			}

			combination = append(combination, partner)
			total += partner.Capacity

			if total >= partySize {
				return Assignment{Tables: combination, TotalCapacity: total}, true
			}
		}
	}

	return Assignment{}, false
}
