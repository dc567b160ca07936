package notice

// ValidateLotReferences checks that every lot reference in the tender's
// documents and items names a declared lot. It is a pure gate: it never
// mutates the tender, and a failing tender is never persisted.
func ValidateLotReferences(t Tender) error {
	referenced := make(map[string]struct{})
	for _, doc := range t.Documents() {
		for _, id := range doc.RelatedLots() {
			referenced[id] = struct{}{}
		}
	}

	declared := lotIDSet(t)

	if len(referenced) > 0 {
		for id := range referenced {
			if _, ok := declared[id]; !ok {
				return ErrInvalidLotsRelatedLots
			}
		}
	}

	for _, item := range t.Items() {
		id, ok := item.RelatedLot()
		if !ok {
			continue
		}
		if _, ok := declared[id]; !ok {
			return ErrInvalidLotsRelatedLots
		}
	}

	return nil
}

func lotIDSet(t Tender) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, lot := range t.Lots() {
		if id, ok := lot.ID(); ok {
			ids[id] = struct{}{}
		}
	}
	return ids
}
