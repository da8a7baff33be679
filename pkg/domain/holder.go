package domain

// DocumentLength is the exact length of a holder document.
const DocumentLength = 11

// MinNameLength is the minimum length of a holder name.
const MinNameLength = 3

// Holder is a person or entity that can own accounts. Holders are created
// once, renamed at most, and never deleted.
type Holder struct {
	ID       int64
	Name     string
	Document string
}

// NewHolder creates a holder. The name and document are assumed validated at
// the boundary; the invariants are re-checked here so a holder can never be
// constructed in an invalid state.
func NewHolder(name, document string) (*Holder, error) {
	if len(name) < MinNameLength {
		return nil, ErrValidation
	}
	if len(document) != DocumentLength {
		return nil, ErrValidation
	}
	return &Holder{Name: name, Document: document}, nil
}

// Rename updates the holder name, the only mutable holder field.
func (h *Holder) Rename(name string) error {
	if len(name) < MinNameLength {
		return ErrValidation
	}
	h.Name = name
	return nil
}
