package growth

import "sort"

// FindEntry resolves the reference row for an independent-variable value.
// An exact match is returned as-is. A value strictly between two rows yields
// a row with every numeric field linearly interpolated by the fractional
// position between the pair. A value outside the table's range clamps to the
// nearest edge row unmodified; only an empty dataset is an error.
func FindEntry(ds *Dataset, x float64) (ReferenceRow, error) {
	if ds == nil || len(ds.Rows) == 0 {
		return ReferenceRow{}, ErrEmptyDataset
	}
	rows := ds.Rows
	idx := sort.Search(len(rows), func(i int) bool { return rows[i].X >= x })
	if idx < len(rows) && rows[idx].X == x {
		return rows[idx], nil
	}
	if idx == 0 {
		return rows[0], nil
	}
	if idx == len(rows) {
		return rows[len(rows)-1], nil
	}
	lower, upper := rows[idx-1], rows[idx]
	frac := (x - lower.X) / (upper.X - lower.X)
	return lerpRow(lower, upper, frac), nil
}

func lerpRow(lower, upper ReferenceRow, frac float64) ReferenceRow {
	return ReferenceRow{
		X:      lerp(lower.X, upper.X, frac),
		L:      lerp(lower.L, upper.L, frac),
		M:      lerp(lower.M, upper.M, frac),
		S:      lerp(lower.S, upper.S, frac),
		SD3Neg: lerp(lower.SD3Neg, upper.SD3Neg, frac),
		SD2Neg: lerp(lower.SD2Neg, upper.SD2Neg, frac),
		SD1Neg: lerp(lower.SD1Neg, upper.SD1Neg, frac),
		SD0:    lerp(lower.SD0, upper.SD0, frac),
		SD1:    lerp(lower.SD1, upper.SD1, frac),
		SD2:    lerp(lower.SD2, upper.SD2, frac),
		SD3:    lerp(lower.SD3, upper.SD3, frac),
	}
}

func lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}
