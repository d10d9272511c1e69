package math

// Line is a segment from Start to End.
type Line struct {
	Start, End Vector
}

func (l Line) Vector() Vector {
	return l.End.Sub(l.Start)
}

func (l Line) Length() float64 {
	return l.Start.DistanceTo(l.End)
}

func (l Line) Middle() Vector {
	return l.Start.Add(l.End).MulScalar(0.5)
}

func (l Line) Equals(o Line, precision int) bool {
	return l.Start.Equals(o.Start, precision) && l.End.Equals(o.End, precision)
}
