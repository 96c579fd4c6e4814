package models

// Record is implemented by every entity served by the cadastral registry.
// The marker method is what generic consumers (such as the tree flattener)
// use to decide that a value can be expanded field by field.
type Record interface {
	RegistryData()
}

// ObjectKind classifies a CadastralObject by its type discriminator.
type ObjectKind int

const (
	// KindOther covers discriminators the client does not know about.
	KindOther ObjectKind = iota
	// KindOutdoor is a land parcel, building or structure ("parcel").
	KindOutdoor
	// KindIndoor is a unit inside a building, e.g. an apartment ("premises").
	KindIndoor
)

// Registry type discriminators.
const (
	TypeParcel   = "parcel"
	TypePremises = "premises"
)

// Registry object type codes used by search results and general data.
const (
	ObjectTypeCodeParcel   = "002009000000"
	ObjectTypeCodePremises = "002002002000"
)

// String returns a short name for the kind.
func (k ObjectKind) String() string {
	switch k {
	case KindOutdoor:
		return "outdoor"
	case KindIndoor:
		return "indoor"
	default:
		return "other"
	}
}

// registryDateLayout is the date format used by the registry ("yyyy-mm-dd").
const registryDateLayout = "2006-01-02"
