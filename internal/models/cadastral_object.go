package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrKindMismatch is returned by Validate when the detail payloads do not
// agree with the type discriminator.
var ErrKindMismatch = errors.New("detail payload does not match object type")

// CadastralObject is the root record for a single unit of real property.
// Exactly one of ParcelData and PremisesData is set for "parcel" and
// "premises" objects; RealtyData comes from the legacy rights register and is
// rarely present.
type CadastralObject struct {
	ObjectID      string             `json:"objectId"`
	Type          string             `json:"type"`
	RegionKey     int                `json:"regionKey"`
	Source        int                `json:"source"`
	FirActualDate string             `json:"firActualDate"`
	ObjectData    *ObjectData        `json:"objectData"`
	ParcelData    *ParcelData        `json:"parcelData"`
	RealtyData    *RealtyData        `json:"realtyData"`
	PremisesData  *PremisesData      `json:"premisesData"`
	Rights        []RightEncumbrance `json:"rightEncumbranceObjects"`
	OldNumbers    []OldNumber        `json:"oldNumbers"`
}

// RegistryData marks CadastralObject as a registry record.
func (CadastralObject) RegistryData() {}

// ID returns the record identifier accepted by the id lookup.
func (o *CadastralObject) ID() string {
	return o.ObjectID
}

// Kind classifies the object by its type discriminator.
func (o *CadastralObject) Kind() ObjectKind {
	switch o.Type {
	case TypeParcel:
		return KindOutdoor
	case TypePremises:
		return KindIndoor
	default:
		return KindOther
	}
}

// IsOutdoorObject reports whether the object is a parcel, building or structure.
func (o *CadastralObject) IsOutdoorObject() bool {
	return o.Kind() == KindOutdoor
}

// IsIndoorObject reports whether the object is premises inside a building.
func (o *CadastralObject) IsIndoorObject() bool {
	return o.Kind() == KindIndoor
}

// AsOutdoorObject returns the parcel details, or nil for other kinds.
func (o *CadastralObject) AsOutdoorObject() *ParcelData {
	return o.ParcelData
}

// AsIndoorObject returns the premises details, or nil for other kinds.
func (o *CadastralObject) AsIndoorObject() *PremisesData {
	return o.PremisesData
}

// GeneralData returns the summary shared by every kind of object.
func (o *CadastralObject) GeneralData() *ObjectData {
	return o.ObjectData
}

// ActualDate parses the date the record was last actualized on the portal.
func (o *CadastralObject) ActualDate() (time.Time, error) {
	return parseRegistryDate(o.FirActualDate)
}

// Validate checks the identity and discriminator invariants.
func (o *CadastralObject) Validate() error {
	if o.ObjectID == "" {
		return errors.New("objectId is empty")
	}
	switch o.Kind() {
	case KindOutdoor:
		if o.ParcelData == nil || o.PremisesData != nil {
			return fmt.Errorf("%w: type %q", ErrKindMismatch, o.Type)
		}
	case KindIndoor:
		if o.PremisesData == nil || o.ParcelData != nil {
			return fmt.Errorf("%w: type %q", ErrKindMismatch, o.Type)
		}
	}
	return nil
}

func parseRegistryDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("date is empty")
	}
	t, err := time.Parse(registryDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse registry date %q: %w", value, err)
	}
	return t, nil
}
