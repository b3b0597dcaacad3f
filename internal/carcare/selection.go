package carcare

// Selection maps item ID to quantity. Absent key means deselected;
// present key always carries quantity >= 1.
type Selection map[string]int

// NewSelection returns the initial selection for a fresh vehicle: the
// default item at its default quantity.
func NewSelection(items []Item) Selection {
	s := Selection{}
	for _, it := range items {
		if it.ID == DefaultItemID {
			s[it.ID] = it.DefaultQty
			break
		}
	}
	return s
}

// Toggle removes the item if selected, otherwise selects it at its
// default quantity.
func (s Selection) Toggle(item Item) {
	if _, ok := s[item.ID]; ok {
		delete(s, item.ID)
		return
	}
	s[item.ID] = item.DefaultQty
}

// Adjust shifts a selected item's quantity by delta, clamping at 1.
// Adjusting an unselected item is a no-op.
func (s Selection) Adjust(id string, delta int) {
	qty, ok := s[id]
	if !ok {
		return
	}
	qty += delta
	if qty < 1 {
		qty = 1
	}
	s[id] = qty
}

// Total sums unit price times quantity over the selected items.
func Total(items []Item, s Selection) int64 {
	var total int64
	for _, it := range items {
		if qty, ok := s[it.ID]; ok {
			total += it.UnitPrice * int64(qty)
		}
	}
	return total
}
