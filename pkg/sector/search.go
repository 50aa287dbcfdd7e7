package sector

// LastFileSector returns the rightmost file sector for which a
// predicate holds.
func LastFileSector(sectors []Sector, predicate func(s *Sector) bool) (Sector, bool) {
	for i := len(sectors) - 1; i >= 0; i-- {
		if s := &sectors[i]; !s.Free && predicate(s) {
			return *s, true
		}
	}
	return Sector{}, false
}

// FirstFreeSector returns the leftmost free sector for which a
// predicate holds.
func FirstFreeSector(sectors []Sector, predicate func(s *Sector) bool) (Sector, bool) {
	for i := range sectors {
		if s := &sectors[i]; s.Free && predicate(s) {
			return *s, true
		}
	}
	return Sector{}, false
}
