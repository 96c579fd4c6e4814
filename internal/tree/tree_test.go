package tree

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/cadastre/internal/models"
)

func child(t *testing.T, n *Node, label string) *Node {
	t.Helper()
	for _, c := range n.Children {
		if c.Label == label {
			return c
		}
	}
	t.Fatalf("node %q has no child %q", n.Label, label)
	return nil
}

func parcelObject() *models.CadastralObject {
	return &models.CadastralObject{
		ObjectID: "123",
		Type:     models.TypeParcel,
		ObjectData: &models.ObjectData{
			ObjectCn:   "1:2:3456:7",
			ObjectName: "Земельный участок",
		},
		ParcelData: &models.ParcelData{
			ParcelCn:  "1:2:3456:7",
			AreaValue: 1234.5,
			CadCost:   100,
		},
		Rights: []models.RightEncumbrance{
			{
				RightData:    &models.RightData{ID: "r1", CodeDesc: "Собственность"},
				Encumbrances: []models.Encumbrance{{ID: "e1", CodeDesc: "Ипотека"}},
			},
			{
				RightData: &models.RightData{ID: "r2", CodeDesc: "Аренда"},
			},
		},
	}
}

func TestBuild_Nil(t *testing.T) {
	assert.Nil(t, Build("object", nil))

	var obj *models.CadastralObject
	assert.Nil(t, Build("object", obj))
}

func TestBuild_RootCarriesHeaderAndTypeName(t *testing.T) {
	// Arrange
	obj := parcelObject()

	// Act
	roots := Build("1:2:3456:7", obj)

	// Assert
	require.Len(t, roots, 1)
	assert.Equal(t, "1:2:3456:7", roots[0].Label)
	assert.Equal(t, "CadastralObject", roots[0].Value)
	assert.Equal(t, "ObjectID", roots[0].Children[0].Label, "fields keep declaration order")
	assert.Equal(t, "123", roots[0].Children[0].Value)
}

func TestBuild_AbsentDetailIsEmptyLeaf(t *testing.T) {
	root := Build("obj", parcelObject())[0]

	parcel := child(t, root, "ParcelData")
	assert.Equal(t, "ParcelData", parcel.Value)
	assert.NotEmpty(t, parcel.Children)

	premises := child(t, root, "PremisesData")
	assert.Equal(t, "", premises.Value)
	assert.Empty(t, premises.Children)
}

func TestBuild_SequenceOfRecords(t *testing.T) {
	root := Build("obj", parcelObject())[0]

	rights := child(t, root, "Rights")
	assert.Equal(t, "[2]", rights.Value)
	require.Len(t, rights.Children, 2)

	first := rights.Children[0]
	assert.Equal(t, "[0]", first.Label)
	assert.Equal(t, "RightEncumbrance", first.Value)
	assert.Equal(t, "r1", child(t, child(t, first, "RightData"), "ID").Value)
	assert.Equal(t, "[1]", child(t, first, "Encumbrances").Value)

	second := rights.Children[1]
	assert.Equal(t, "r2", child(t, child(t, second, "RightData"), "ID").Value)
	assert.Equal(t, "[0]", child(t, second, "Encumbrances").Value)

	assert.Equal(t, "[0]", child(t, root, "OldNumbers").Value)
}

func TestBuild_ScalarFormatting(t *testing.T) {
	root := Build("obj", parcelObject())[0]
	parcel := child(t, root, "ParcelData")

	assert.Equal(t, "1234.50", child(t, parcel, "AreaValue").Value)
	assert.Equal(t, "100.00", child(t, parcel, "CadCost").Value)
	assert.Equal(t, "false", child(t, parcel, "RightsReg").Value)
	assert.Equal(t, "0", child(t, parcel, "OksFlag").Value)
	assert.Equal(t, "", child(t, parcel, "DateRemove").Value)
}

func TestBuild_OpaqueNumber(t *testing.T) {
	obj := &models.ParcelData{CategoryType: json.Number("3")}

	root := Build("parcel", obj)[0]

	assert.Equal(t, "3", child(t, root, "CategoryType").Value)
}

type customRecord struct {
	Name   string
	Weight float32
	Nested *nestedRecord
	hidden string
}

func (customRecord) RegistryData() {}

type nestedRecord struct {
	Tags []string
}

func (*nestedRecord) RegistryData() {}

func TestBuild_NewRecordTypeIsExpanded(t *testing.T) {
	v := customRecord{Name: "x", Weight: 2, Nested: &nestedRecord{Tags: []string{"a", "b"}}, hidden: "h"}

	root := Build("custom", v)[0]

	assert.Equal(t, "customRecord", root.Value)
	require.Len(t, root.Children, 3, "unexported fields are skipped")
	assert.Equal(t, "2.00", child(t, root, "Weight").Value)

	nested := child(t, root, "Nested")
	assert.Equal(t, "nestedRecord", nested.Value)
	tags := child(t, nested, "Tags")
	assert.Equal(t, "[2]", tags.Value)
	assert.Equal(t, "b", tags.Children[1].Value)
}

type loop struct {
	Name string
	Next *loop
}

func (loop) RegistryData() {}

func TestBuild_CycleTerminates(t *testing.T) {
	a := &loop{Name: "a"}
	a.Next = a

	root := Build("loop", a)[0]

	assert.Equal(t, "<cycle>", child(t, root, "Next").Value)
}

func TestBuild_SliceProducesRootPerElement(t *testing.T) {
	regions := []models.Region{{ID: "1", Name: "Москва"}, {ID: "2", Name: "Санкт-Петербург"}}

	roots := Build("regions", regions)

	require.Len(t, roots, 2)
	assert.Equal(t, "regions[0]", roots[0].Label)
	assert.Equal(t, "Region", roots[0].Value)
	assert.Equal(t, "Санкт-Петербург", child(t, roots[1], "Name").Value)
}

func TestRender(t *testing.T) {
	nodes := Build("moscow", models.Region{ID: "145000000000", Name: "Москва"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nodes))

	assert.Equal(t, "moscow: Region\n  ID: 145000000000\n  Name: Москва\n", buf.String())
}
