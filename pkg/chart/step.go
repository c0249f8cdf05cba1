package chart

// StepValues returns the point list used when stacking against a step
// series. On a categorized axis the list gains a copy of the first point
// one unit to the left and a copy of the last point one unit to the
// right, so the steps cover the outer half-categories. Other axes return
// values unchanged.
func StepValues(values []DataPoint, categorized bool) []DataPoint {
	if !categorized || len(values) == 0 {
		return values
	}
	first, last := values[0], values[len(values)-1]
	first.X = first.X.Shift(-1)
	last.X = last.X.Shift(1)

	out := make([]DataPoint, 0, len(values)+2)
	out = append(out, first)
	out = append(out, values...)
	out = append(out, last)
	return out
}
