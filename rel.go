package modelx

import "fmt"

// Rel is the relation kind of a model relation.
type Rel int

// Relation kinds. The set is closed: polymorphic and through-relations
// are not supported.
const (
	// Unknown is the zero relation kind. It is never stored on a model.
	Unknown Rel = iota
	// HasOne connects a model to at most one instance of the target.
	HasOne
	// HasMany connects a model to many instances of the target.
	HasMany
	// BelongsTo is the inverse side of HasOne/HasMany; the foreign key
	// lives on the owning model.
	BelongsTo
	// ReferencesMany embeds a list of target references on the owning
	// model.
	ReferencesMany
)

var relNames = [...]string{
	Unknown:        "unknown",
	HasOne:         "hasOne",
	HasMany:        "hasMany",
	BelongsTo:      "belongsTo",
	ReferencesMany: "referencesMany",
}

// String returns the wire name of the relation kind as it appears in
// definition documents.
func (r Rel) String() string {
	if r < 0 || int(r) >= len(relNames) {
		return fmt.Sprintf("Rel(%d)", r)
	}
	return relNames[r]
}

// ParseRel parses the wire name of a relation kind. It returns a
// RelationError for names outside the supported set.
func ParseRel(kind string) (Rel, error) {
	switch kind {
	case "hasOne":
		return HasOne, nil
	case "hasMany":
		return HasMany, nil
	case "belongsTo":
		return BelongsTo, nil
	case "referencesMany":
		return ReferencesMany, nil
	default:
		return Unknown, &RelationError{Kind: kind, Message: "unsupported relation kind"}
	}
}
