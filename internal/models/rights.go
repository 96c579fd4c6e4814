package models

// RightEncumbrance pairs a registered right with the encumbrances attached to it.
type RightEncumbrance struct {
	RightData    *RightData    `json:"rightData"`
	Encumbrances []Encumbrance `json:"encumbrances"`
}

// RegistryData marks RightEncumbrance as a registry record.
func (RightEncumbrance) RegistryData() {}

// RightData describes a registered legal interest, e.g. ownership.
// ObjectID refers back to the owning CadastralObject by identity only.
type RightData struct {
	TempID       int    `json:"tempId"`
	ID           string `json:"id"`
	ObjectID     string `json:"objectId"`
	UpdatePackID int    `json:"updatePackId"`
	RegionKey    int    `json:"regionKey"`
	Code         string `json:"code"`
	CodeDesc     string `json:"codeDesc"`
	PartSize     string `json:"partSize"`
	Type         string `json:"type"`
	RegNum       string `json:"regNum"`
	RegDate      string `json:"regDate"`
	RsCode       string `json:"rsCode"`
	PackageID    string `json:"packageId"`
	ActualDate   string `json:"actualDate"`
}

// RegistryData marks RightData as a registry record.
func (RightData) RegistryData() {}

// Encumbrance describes a restriction or third-party interest attached to a right.
type Encumbrance struct {
	TempID         int    `json:"tempId"`
	ID             string `json:"id"`
	ObjectID       string `json:"objectId"`
	UpdatePackID   int    `json:"updatePackId"`
	RegionKey      int    `json:"regionKey"`
	Code           string `json:"code"`
	CodeDesc       string `json:"codeDesc"`
	PeriodStart    string `json:"periodStart"`
	PeriodEnd      string `json:"periodEnd"`
	PeriodDuration string `json:"periodDuration"`
	Type           any    `json:"type"`
	RegNum         string `json:"regNum"`
	RegDate        string `json:"regDate"`
	RsCode         string `json:"rsCode"`
	PackageID      string `json:"packageId"`
	ActualDate     string `json:"actualDate"`
}

// RegistryData marks Encumbrance as a registry record.
func (Encumbrance) RegistryData() {}

// OldNumber is an identifier the object carried under an earlier scheme.
type OldNumber struct {
	TempID                int    `json:"tempId"`
	ObjectID              string `json:"objectId"`
	RegionKey             int    `json:"regionKey"`
	NumberType            string `json:"numberType"`
	NumberValue           string `json:"numberValue"`
	NormalizedNumberValue string `json:"normalizedNumberValue"`
	RsCode                string `json:"rsCode"`
	PackageID             string `json:"packageId"`
	ActualDate            string `json:"actualDate"`
	NumberTypeStr         string `json:"numberTypeStr"`
}

// RegistryData marks OldNumber as a registry record.
func (OldNumber) RegistryData() {}

// NumberTypeCadastral is the old-number type code of a cadastral number.
const NumberTypeCadastral = "03"

// IsCadastral reports whether the old number is a cadastral number.
func (n *OldNumber) IsCadastral() bool {
	return n.NumberType == NumberTypeCadastral
}
