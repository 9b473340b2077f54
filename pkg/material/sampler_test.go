package material

// sequenceSampler replays a fixed list of uniform values, wrapping around
type sequenceSampler struct {
	values []float64
	next   int
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSampler) GetRange(min, max float64) float64 {
	return min + (max-min)*s.Get1D()
}
