package domain

// CartLine is a read-only view of one line in the host cart. The host owns
// the cart; snapshots are never mutated locally.
type CartLine struct {
	ID             string `json:"id"`
	MerchandiseGID string `json:"merchandiseId"`
	Quantity       int    `json:"quantity"`
}

// CartSnapshot is the cart state as last pushed by the host.
type CartSnapshot struct {
	Lines []CartLine `json:"lines"`
}

// Empty reports whether the snapshot has no lines.
func (s CartSnapshot) Empty() bool {
	return len(s.Lines) == 0
}

// LineByMerchandise returns the line holding the given merchandise global ID.
func (s CartSnapshot) LineByMerchandise(gid string) (CartLine, bool) {
	for _, line := range s.Lines {
		if line.MerchandiseGID == gid {
			return line, true
		}
	}
	return CartLine{}, false
}
