package dnd5e

// InformationEntry is one narrative fact in a monster's information list.
// The set of entry types is closed: HeaderEntry, DescriptionEntry and
// SeparatorEntry.
type InformationEntry interface {
	informationEntry()
}

// HeaderEntry is a section heading
type HeaderEntry struct {
	Text string
}

// DescriptionEntry is a paragraph with an optional title
type DescriptionEntry struct {
	Title string
	Text  string
}

// SeparatorEntry visually separates groups of entries
type SeparatorEntry struct{}

func (HeaderEntry) informationEntry()      {}
func (DescriptionEntry) informationEntry() {}
func (SeparatorEntry) informationEntry()   {}

// InformationList is an ordered list of entries in which no separator is
// first, last, or adjacent to another separator
type InformationList struct {
	entries []InformationEntry
}

// NewInformationList normalizes entries: leading separators are dropped,
// runs of separators collapse to one, and a trailing separator is dropped.
// Pointer entries are stored as values and nil entries are skipped, so the
// list only ever holds HeaderEntry, DescriptionEntry and SeparatorEntry
// values. It never fails and is idempotent.
func NewInformationList(entries ...InformationEntry) InformationList {
	normalized := make([]InformationEntry, 0, len(entries))
	for _, entry := range entries {
		entry = byValue(entry)
		if entry == nil {
			continue
		}
		if isSeparator(entry) {
			if len(normalized) == 0 || isSeparator(normalized[len(normalized)-1]) {
				continue
			}
		}
		normalized = append(normalized, entry)
	}

	if n := len(normalized); n > 0 && isSeparator(normalized[n-1]) {
		normalized = normalized[:n-1]
	}

	return InformationList{entries: normalized}
}

// byValue dereferences pointer entries. Nil pointers become nil.
func byValue(entry InformationEntry) InformationEntry {
	switch e := entry.(type) {
	case *HeaderEntry:
		if e == nil {
			return nil
		}
		return *e
	case *DescriptionEntry:
		if e == nil {
			return nil
		}
		return *e
	case *SeparatorEntry:
		if e == nil {
			return nil
		}
		return SeparatorEntry{}
	default:
		return entry
	}
}

func isSeparator(entry InformationEntry) bool {
	_, ok := entry.(SeparatorEntry)
	return ok
}

// Entries returns a copy of the normalized entries
func (l InformationList) Entries() []InformationEntry {
	out := make([]InformationEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len is the number of entries
func (l InformationList) Len() int {
	return len(l.entries)
}
