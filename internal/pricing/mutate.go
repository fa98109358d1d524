package pricing

// Every mutator is pure: it returns a fresh schedule and leaves the receiver
// untouched. A false ok means the operation is disabled at that position and
// the receiver is returned as is.

// CanInsertAbove reports whether a tier can be inserted directly below the
// quantity boundary of tier i.
func (t Tiers) CanInsertAbove(i int) bool {
	n := len(t)
	if n < 2 || i < 0 || i >= n {
		return false
	}
	if t[i].Quantity <= insertStep {
		return false
	}
	if n == 2 && i == 1 {
		return false
	}
	if i == n-1 && t[i].Quantity > MaxQuantity-insertStep {
		return false
	}
	if i >= 1 && i <= n-2 && t[i].Quantity-t[i-1].Quantity < 2*MinGap {
		return false
	}
	return true
}

// CanInsertBelow reports whether a tier can be inserted directly above the
// quantity boundary of tier i.
func (t Tiers) CanInsertBelow(i int) bool {
	n := len(t)
	if n < 2 || i < 0 || i >= n {
		return false
	}
	if n == 2 && i == 0 {
		return false
	}
	if t[i].Quantity > MaxQuantity-insertStep {
		return false
	}
	if i <= n-3 && t[i+1].Quantity-t[i].Quantity < 2*MinGap {
		return false
	}
	return true
}

// CanDelete reports whether tier i can be removed.
func (t Tiers) CanDelete(i int) bool {
	return len(t) > 2 && i >= 0 && i < len(t)
}

// InsertAbove adds a tier ending two below tier i, priced one dollar more.
func (t Tiers) InsertAbove(i int) (Tiers, bool) {
	if !t.CanInsertAbove(i) {
		return t, false
	}
	added := Statement{
		Operator: Less,
		Quantity: t[i].Quantity - insertStep,
		Price:    t[i].Price + priceStep,
	}
	out := t.insertAt(i, added)
	out.settle(false)
	return out, true
}

// InsertBelow adds a tier ending two above tier i, priced one dollar less
// but never below MinPrice.
func (t Tiers) InsertBelow(i int) (Tiers, bool) {
	if !t.CanInsertBelow(i) {
		return t, false
	}
	added := Statement{
		Operator: Less,
		Quantity: t[i].Quantity + insertStep,
		Price:    max(t[i].Price-priceStep, MinPrice),
	}
	out := t.insertAt(i+1, added)
	out.settle(false)
	return out, true
}

// DeleteAt removes tier i. The tier above it takes over its quantities.
func (t Tiers) DeleteAt(i int) (Tiers, bool) {
	if !t.CanDelete(i) {
		return t, false
	}
	out := make(Tiers, 0, len(t)-1)
	out = append(out, t[:i]...)
	out = append(out, t[i+1:]...)
	out.settle(true)
	return out, true
}

// Delete removes the tier whose wire form matches raw.
func (t Tiers) Delete(raw string) (Tiers, bool) {
	target, ok := Parse(raw)
	if !ok {
		return t, false
	}
	for i, s := range t {
		if s == target {
			return t.DeleteAt(i)
		}
	}
	return t, false
}

// EditQuantity moves the boundary of tier i to v and pushes neighbouring
// boundaries out of the way to keep MinGap between them. v is clamped so that
// every boundary stays within 1 and MaxQuantity.
func (t Tiers) EditQuantity(i, v int) (Tiers, bool) {
	n := len(t)
	if n < 2 || i < 0 || i >= n {
		return t, false
	}
	out := t.clone()
	v = min(max(v, 1), MaxQuantity)
	if n == 2 {
		out[0].Quantity = v
		out[1].Quantity = v
		out.normalizeOperators()
		return out, true
	}

	// The top two tiers share one boundary.
	k := min(i, n-2)
	v = min(max(v, 1+k*MinGap), MaxQuantity-(n-2-k)*MinGap)
	out[k].Quantity = v
	for j := k - 1; j >= 0; j-- {
		if out[j].Quantity > out[j+1].Quantity-MinGap {
			out[j].Quantity = out[j+1].Quantity - MinGap
		}
	}
	for j := k + 1; j <= n-2; j++ {
		if out[j].Quantity < out[j-1].Quantity+MinGap {
			out[j].Quantity = out[j-1].Quantity + MinGap
		}
	}
	out[n-1].Quantity = out[n-2].Quantity
	out.normalizeOperators()
	return out, true
}

// EditPrice replaces the price of tier i.
func (t Tiers) EditPrice(i int, cents int64) (Tiers, bool) {
	if i < 0 || i >= len(t) {
		return t, false
	}
	out := t.clone()
	out[i].Price = max(cents, MinPrice)
	return out, true
}

func (t Tiers) clone() Tiers {
	out := make(Tiers, len(t))
	copy(out, t)
	return out
}

func (t Tiers) insertAt(i int, s Statement) Tiers {
	out := make(Tiers, 0, len(t)+1)
	out = append(out, t[:i]...)
	out = append(out, s)
	out = append(out, t[i:]...)
	return out
}

func (t Tiers) normalizeOperators() {
	for i := range t {
		t[i].Operator = expectedOperator(i, len(t))
	}
}

// settle re-establishes operators, boundary gaps and the shared top boundary.
// After a deletion the top follows the tier below it; after an insertion the
// tier below the top is raised to meet it.
func (t Tiers) settle(topFollows bool) {
	n := len(t)
	t.normalizeOperators()
	if n < 2 {
		return
	}
	if n == 2 {
		t[1].Quantity = t[0].Quantity
		return
	}
	for j := 1; j <= n-2; j++ {
		if t[j].Quantity < t[j-1].Quantity+MinGap {
			t[j].Quantity = t[j-1].Quantity + MinGap
		}
	}
	if topFollows || t[n-1].Quantity < t[n-2].Quantity {
		t[n-1].Quantity = t[n-2].Quantity
	} else {
		t[n-2].Quantity = t[n-1].Quantity
	}
}
