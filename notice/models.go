package notice

// The stage payload is a schema-opaque JSON tree as decoded by
// encoding/json. The engine only inspects identifiers, lifecycle statuses
// and lot references; everything else is carried through untouched. The
// wrapper types below are views over the same underlying maps, so setters
// mutate the tree they were taken from.

// Tender is the root object of a stage payload.
type Tender map[string]any

// Lot is a subdivision of a tender that can be bid on independently.
type Lot map[string]any

// Item references exactly one lot via relatedLot.
type Item map[string]any

// Document may reference any number of lots via relatedLots.
type Document map[string]any

func (t Tender) ID() (string, bool) { return getString(t, "id") }
func (t Tender) SetID(id string)    { t["id"] = id }

func (t Tender) Status() (string, bool) {
	return getString(t, "status")
}

func (t Tender) StatusDetails() (string, bool) {
	return getString(t, "statusDetails")
}

// SetState writes the lifecycle pair onto the tender.
func (t Tender) SetState(p StatePair) {
	t["status"] = string(p.Status)
	t["statusDetails"] = string(p.Details)
}

func (t Tender) Lots() []Lot {
	raw, ok := t["lots"].([]any)
	if !ok {
		return nil
	}
	lots := make([]Lot, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			lots = append(lots, Lot(m))
		}
	}
	return lots
}

func (t Tender) SetLots(lots []Lot) {
	raw := make([]any, len(lots))
	for i, l := range lots {
		raw[i] = map[string]any(l)
	}
	t["lots"] = raw
}

func (t Tender) Items() []Item {
	raw, ok := t["items"].([]any)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			items = append(items, Item(m))
		}
	}
	return items
}

func (t Tender) SetItems(items []Item) {
	raw := make([]any, len(items))
	for i, it := range items {
		raw[i] = map[string]any(it)
	}
	t["items"] = raw
}

func (t Tender) Documents() []Document {
	raw, ok := t["documents"].([]any)
	if !ok {
		return nil
	}
	docs := make([]Document, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			docs = append(docs, Document(m))
		}
	}
	return docs
}

func (t Tender) SetDocuments(docs []Document) {
	raw := make([]any, len(docs))
	for i, d := range docs {
		raw[i] = map[string]any(d)
	}
	t["documents"] = raw
}

// StartDate returns tenderPeriod.startDate if present.
func (t Tender) StartDate() (string, bool) {
	period, ok := t["tenderPeriod"].(map[string]any)
	if !ok {
		return "", false
	}
	return getString(period, "startDate")
}

func (l Lot) ID() (string, bool) { return getString(l, "id") }
func (l Lot) SetID(id string)    { l["id"] = id }

func (l Lot) Status() (string, bool) {
	return getString(l, "status")
}

func (l Lot) StatusDetails() (string, bool) {
	return getString(l, "statusDetails")
}

func (l Lot) SetState(p StatePair) {
	l["status"] = string(p.Status)
	l["statusDetails"] = string(p.Details)
}

// InState reports whether the lot carries exactly the given pair.
func (l Lot) InState(p StatePair) bool {
	s, _ := l.Status()
	d, _ := l.StatusDetails()
	return s == string(p.Status) && d == string(p.Details)
}

func (i Item) ID() (string, bool) { return getString(i, "id") }
func (i Item) SetID(id string)    { i["id"] = id }

func (i Item) RelatedLot() (string, bool) {
	return getString(i, "relatedLot")
}

func (i Item) SetRelatedLot(id string) { i["relatedLot"] = id }

func (d Document) ID() (string, bool) { return getString(d, "id") }

func (d Document) RelatedLots() []string {
	raw, ok := d["relatedLots"].([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids
}

func (d Document) SetRelatedLots(ids []string) {
	raw := make([]any, len(ids))
	for i, id := range ids {
		raw[i] = id
	}
	d["relatedLots"] = raw
}

// hasNonNull reports whether the key carries any non-null value, including
// empty strings and non-string values that getString would read as absent.
func hasNonNull(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

func getString(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
