package model

// Collections is the full library state: the four collections the store owns.
type Collections struct {
	Documents []Document
	Folders   []Folder
	Tags      []Tag
	Activity  []ActivityLogEntry
}

// Clone deep-copies every collection.
func (c Collections) Clone() Collections {
	out := Collections{
		Documents: make([]Document, len(c.Documents)),
		Folders:   append([]Folder(nil), c.Folders...),
		Tags:      append([]Tag(nil), c.Tags...),
		Activity:  append([]ActivityLogEntry(nil), c.Activity...),
	}
	for i, d := range c.Documents {
		out.Documents[i] = d.Clone()
	}
	return out
}
