package pricing

// TierView is what the editor needs to draw one tier row.
type TierView struct {
	Index          int      `json:"index"`
	Statement      string   `json:"statement"`
	Operator       Operator `json:"operator"`
	Quantity       int      `json:"quantity"`
	Price          int64    `json:"price"`
	Description    string   `json:"description"`
	Range          Range    `json:"range"`
	CanInsertAbove bool     `json:"can_insert_above"`
	CanInsertBelow bool     `json:"can_insert_below"`
	CanDelete      bool     `json:"can_delete"`
}

// Views renders every tier of a raw schedule. A schedule containing a
// malformed statement renders as no rows.
func Views(raw []string) []TierView {
	tiers, ok := ParseTiers(raw)
	if !ok {
		return []TierView{}
	}
	ranges := tiers.Ranges()
	out := make([]TierView, len(tiers))
	for i, s := range tiers {
		out[i] = TierView{
			Index:          i,
			Statement:      s.String(),
			Operator:       s.Operator,
			Quantity:       s.Quantity,
			Price:          s.Price,
			Description:    s.Sentence(),
			Range:          ranges[i],
			CanInsertAbove: tiers.CanInsertAbove(i),
			CanInsertBelow: tiers.CanInsertBelow(i),
			CanDelete:      tiers.CanDelete(i),
		}
	}
	return out
}
