package models

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadParcelFixture(t *testing.T) *CadastralObject {
	t.Helper()

	data, err := os.ReadFile("testdata/object_parcel.json")
	require.NoError(t, err)

	var obj CadastralObject
	require.NoError(t, json.Unmarshal(data, &obj))
	return &obj
}

func TestCadastralObject_DecodeParcel(t *testing.T) {
	obj := loadParcelFixture(t)

	assert.Equal(t, "78:5:552:12", obj.ID())
	assert.Equal(t, 178, obj.RegionKey)
	assert.True(t, obj.IsOutdoorObject())
	assert.False(t, obj.IsIndoorObject())
	assert.Equal(t, KindOutdoor, obj.Kind())

	require.NotNil(t, obj.AsOutdoorObject())
	assert.Nil(t, obj.AsIndoorObject())
	assert.Nil(t, obj.RealtyData)
	assert.InDelta(t, 154.3, obj.AsOutdoorObject().AreaValue, 0.0001)
	assert.True(t, obj.AsOutdoorObject().IsCapitalConstruction())

	general := obj.GeneralData()
	require.NotNil(t, general)
	assert.Equal(t, "Жилой дом", general.Name())
	assert.Equal(t, "78:05:0000552:12", general.CadastralNumber())
	assert.Contains(t, general.AddressString(), "Лесная")
	require.NotNil(t, general.AddressData())
	assert.Equal(t, "12а", general.AddressData().House)

	require.Len(t, obj.Rights, 2)
	assert.Equal(t, "Собственность", obj.Rights[0].RightData.CodeDesc)
	require.Len(t, obj.Rights[0].Encumbrances, 1)
	assert.Equal(t, obj.ObjectID, obj.Rights[0].Encumbrances[0].ObjectID)
	assert.Empty(t, obj.Rights[1].Encumbrances)

	require.Len(t, obj.OldNumbers, 1)
	assert.True(t, obj.OldNumbers[0].IsCadastral())

	assert.NoError(t, obj.Validate())
}

func TestCadastralObject_ActualDate(t *testing.T) {
	obj := loadParcelFixture(t)

	actual, err := obj.ActualDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, time.March, 14, 0, 0, 0, 0, time.UTC), actual)

	updated, err := obj.GeneralData().UpdateDate()
	require.NoError(t, err)
	assert.Equal(t, 2016, updated.Year())

	_, err = (&CadastralObject{FirActualDate: "14.03.2016"}).ActualDate()
	assert.Error(t, err)

	_, err = (&CadastralObject{}).ActualDate()
	assert.Error(t, err)
}

func TestCadastralObject_Kind(t *testing.T) {
	tests := []struct {
		typ  string
		want ObjectKind
	}{
		{typ: "parcel", want: KindOutdoor},
		{typ: "premises", want: KindIndoor},
		{typ: "realty", want: KindOther},
		{typ: "", want: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			obj := &CadastralObject{Type: tt.typ}
			assert.Equal(t, tt.want, obj.Kind())
		})
	}
	assert.Equal(t, "outdoor", KindOutdoor.String())
	assert.Equal(t, "indoor", KindIndoor.String())
	assert.Equal(t, "other", KindOther.String())
}

func TestCadastralObject_Validate(t *testing.T) {
	tests := []struct {
		name    string
		obj     CadastralObject
		wantErr error
		ok      bool
	}{
		{
			name: "parcel with parcel data",
			obj:  CadastralObject{ObjectID: "1", Type: TypeParcel, ParcelData: &ParcelData{}},
			ok:   true,
		},
		{
			name: "premises with premises data",
			obj:  CadastralObject{ObjectID: "1", Type: TypePremises, PremisesData: &PremisesData{}},
			ok:   true,
		},
		{
			name: "unknown type without details",
			obj:  CadastralObject{ObjectID: "1", Type: "realty"},
			ok:   true,
		},
		{
			name:    "parcel without parcel data",
			obj:     CadastralObject{ObjectID: "1", Type: TypeParcel},
			wantErr: ErrKindMismatch,
		},
		{
			name:    "premises carrying both payloads",
			obj:     CadastralObject{ObjectID: "1", Type: TypePremises, ParcelData: &ParcelData{}, PremisesData: &PremisesData{}},
			wantErr: ErrKindMismatch,
		},
		{
			name: "missing id",
			obj:  CadastralObject{Type: "realty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.obj.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSearchResult_Accessors(t *testing.T) {
	result := SearchResult{
		ObjectID:     "78:5:552:12",
		ObjectType:   ObjectTypeCodePremises,
		ObjectCn:     "78:05:0000552:12",
		Street:       "ЛЕСНАЯ|УЛ",
		House:        "12а|2|",
		AddressNotes: "Сестрорецк, ул Лесная, д 12а, корп 2",
	}

	assert.Equal(t, "78:5:552:12", result.ID())
	assert.Equal(t, "78:05:0000552:12", result.CadNum())
	assert.Equal(t, KindIndoor, result.Kind())
	assert.Contains(t, result.Address(), "Лесная")

	name, kind := result.StreetParts()
	assert.Equal(t, "ЛЕСНАЯ", name)
	assert.Equal(t, "УЛ", kind)

	house, building, structure := result.HouseParts()
	assert.Equal(t, "12а", house)
	assert.Equal(t, "2", building)
	assert.Equal(t, "", structure)
}

func TestSearchResult_PartsOfEmptyValues(t *testing.T) {
	var result SearchResult

	name, kind := result.StreetParts()
	assert.Empty(t, name)
	assert.Empty(t, kind)

	house, building, structure := (&SearchResult{House: "4"}).HouseParts()
	assert.Equal(t, "4", house)
	assert.Empty(t, building)
	assert.Empty(t, structure)
}

func TestRecordMarker(t *testing.T) {
	records := []Record{
		CadastralObject{}, ObjectData{}, ObjectAddress{}, ParcelData{}, PremisesData{},
		RealtyData{}, RightEncumbrance{}, RightData{}, Encumbrance{}, OldNumber{},
		SearchResult{}, Region{},
	}
	assert.Len(t, records, 12)
}
