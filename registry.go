package catgets

// Catalogs is a registry of open message catalogs addressed by
// descriptor.  Use NewCatalogs to create one.
//
// A Catalogs is not safe for concurrent use; callers sharing one
// across goroutines must serialize access themselves.
type Catalogs struct {
	slots []*catalog
}

// NewCatalogs returns an empty catalog registry.
func NewCatalogs() *Catalogs {
	return &Catalogs{}
}

// install marks cat open and stores it in the first free slot,
// growing the table only when every slot is in use.  The slot index
// is the catalog's descriptor.
func (cs *Catalogs) install(cat *catalog) Catd {
	cat.open = true
	for i, s := range cs.slots {
		if !s.open {
			cs.slots[i] = cat
			return Catd(i)
		}
	}
	cs.slots = append(cs.slots, cat)
	return Catd(len(cs.slots) - 1)
}

// lookup returns the catalog open under catd, or false for a
// descriptor that is out of range or was closed.
func (cs *Catalogs) lookup(catd Catd) (*catalog, bool) {
	if catd < 0 || int(catd) >= len(cs.slots) {
		return nil, false
	}
	cat := cs.slots[catd]
	if !cat.open {
		return nil, false
	}
	return cat, true
}
