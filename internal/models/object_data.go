package models

import "time"

// ObjectData is the summary common to every object regardless of its type.
type ObjectData struct {
	ID            string         `json:"id"`
	RegionKey     int            `json:"regionKey"`
	SrcObject     int            `json:"srcObject"`
	ObjectType    string         `json:"objectType"`
	ObjectName    string         `json:"objectName"`
	Removed       int            `json:"removed"`
	DateLoad      string         `json:"dateLoad"`
	AddressNote   string         `json:"addressNote"`
	ObjectCn      string         `json:"objectCn"`
	ObjectCon     string         `json:"objectCon"`
	ObjectInv     string         `json:"objectInv"`
	ObjectUn      string         `json:"objectUn"`
	RsCode        string         `json:"rsCode"`
	ActualDate    string         `json:"actualDate"`
	BrkStatus     int            `json:"brkStatus"`
	BrkDate       string         `json:"brkDate"`
	FormRights    string         `json:"formRights"`
	ObjectAddress *ObjectAddress `json:"objectAddress"`
}

// RegistryData marks ObjectData as a registry record.
func (ObjectData) RegistryData() {}

// Name returns the object name, e.g. "Жилой дом".
func (d *ObjectData) Name() string {
	return d.ObjectName
}

// CadastralNumber returns the full display-form cadastral number.
func (d *ObjectData) CadastralNumber() string {
	return d.ObjectCn
}

// UpdateDate parses the date the object was last actualized in the register.
func (d *ObjectData) UpdateDate() (time.Time, error) {
	return parseRegistryDate(d.ActualDate)
}

// AddressString returns the unstructured address.
func (d *ObjectData) AddressString() string {
	return d.AddressNote
}

// AddressData returns the structured address, if any.
func (d *ObjectData) AddressData() *ObjectAddress {
	return d.ObjectAddress
}

// ObjectAddress holds structured address components of one object.
type ObjectAddress struct {
	ID            string `json:"id"`
	RegionKey     int    `json:"regionKey"`
	Okato         string `json:"okato"`
	Kladr         string `json:"kladr"`
	Region        string `json:"region"`
	District      string `json:"district"`
	DistrictType  string `json:"districtType"`
	Place         string `json:"place"`
	PlaceType     string `json:"placeType"`
	Locality      string `json:"locality"`
	LocalityType  string `json:"localityType"`
	Street        string `json:"street"`
	StreetType    string `json:"streetType"`
	House         string `json:"house"`
	Building      string `json:"building"`
	Structure     string `json:"structure"`
	Apartment     string `json:"apartment"`
	AddressNotes  string `json:"addressNotes"`
	MergedAddress string `json:"mergedAddress"`
}

// RegistryData marks ObjectAddress as a registry record.
func (ObjectAddress) RegistryData() {}
