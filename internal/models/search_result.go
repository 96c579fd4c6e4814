package models

import "strings"

// SearchResult is a lightweight projection returned by number and address
// searches. ObjectID re-resolves it into a full CadastralObject.
type SearchResult struct {
	ObjectID     string `json:"objectId"`
	SrcObject    int    `json:"srcObject"`
	RegionKey    int    `json:"regionKey"`
	ObjectType   string `json:"objectType"`
	ObjectCn     string `json:"objectCn"`
	ObjectCon    string `json:"objectCon"`
	SubjectID    string `json:"subjectId"`
	RegionID     string `json:"regionId"`
	SettlementID string `json:"settlementId"`
	Street       string `json:"street"`
	House        string `json:"house"`
	AddressNotes string `json:"addressNotes"`
	Okato        string `json:"okato"`
	Apartment    string `json:"apartment"`
	NobjectCn    string `json:"nobjectCn"`
	NobjectCon   string `json:"nobjectCon"`
}

// RegistryData marks SearchResult as a registry record.
func (SearchResult) RegistryData() {}

// Registry sources of a search result.
const (
	SourceCadastre = 1 // state real estate cadastre
	SourceRights   = 2 // unified register of rights
)

// ID returns the identifier accepted by the id lookup.
func (r *SearchResult) ID() string {
	return r.ObjectID
}

// CadNum returns the full cadastral number of the object.
func (r *SearchResult) CadNum() string {
	return r.ObjectCn
}

// Source returns the register the result came from, SourceCadastre or
// SourceRights.
func (r *SearchResult) Source() int {
	return r.SrcObject
}

// Address returns the full unstructured address.
func (r *SearchResult) Address() string {
	return r.AddressNotes
}

// Kind classifies the result by its object type code.
func (r *SearchResult) Kind() ObjectKind {
	switch r.ObjectType {
	case ObjectTypeCodeParcel:
		return KindOutdoor
	case ObjectTypeCodePremises:
		return KindIndoor
	default:
		return KindOther
	}
}

// StreetParts splits the "NAME|TYPE" street value, e.g. "ЛЕСНАЯ|УЛ".
func (r *SearchResult) StreetParts() (name, kind string) {
	parts := splitPipe(r.Street, 2)
	return parts[0], parts[1]
}

// HouseParts splits the "house|building|structure" value, e.g. "12а|2|".
func (r *SearchResult) HouseParts() (house, building, structure string) {
	parts := splitPipe(r.House, 3)
	return parts[0], parts[1], parts[2]
}

func splitPipe(value string, n int) []string {
	parts := strings.SplitN(value, "|", n)
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts
}

// Region is a macro-region or any of its descendants in the address
// hierarchy, e.g. Saint Petersburg > Kurortny district > Sestroretsk.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegistryData marks Region as a registry record.
func (Region) RegistryData() {}
