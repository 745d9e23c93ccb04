package gpp

import "slices"

// IDSet is a set of numeric IDs held in ascending order without duplicates.
// Every bitfield and range field in a GPP string decodes into one.
type IDSet []uint16

// Contains reports whether id is in the set.
func (s IDSet) Contains(id uint16) bool {
	_, ok := slices.BinarySearch(s, id)
	return ok
}

// complement returns the IDs in 1..max that are not in s.
func (s IDSet) complement(max uint16) IDSet {
	var out IDSet
	for id := uint(1); id <= uint(max); id++ {
		if !s.Contains(uint16(id)) {
			out = append(out, uint16(id))
		}
	}
	return out
}

// normalizeIDs sorts ids ascending and collapses duplicates in place.
func normalizeIDs(ids []uint16) IDSet {
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)
	return IDSet(slices.Compact(ids))
}
