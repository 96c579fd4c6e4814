package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Templates(t *testing.T) {
	r := NewResolver("http://rosreestr.ru/api/online")

	assert.Equal(t, "http://rosreestr.ru/api/online/fir_object/1:2:3456:7", r.ByID("1:2:3456:7"))
	assert.Equal(t, "http://rosreestr.ru/api/online/fir_objects/78:05:0000552:12", r.ByNumber("78:05:0000552:12"))
	assert.Equal(t, "http://rosreestr.ru/api/online/address/fir_objects?macroRegionId=145000000000", r.ByAddress("macroRegionId=145000000000"))
	assert.Equal(t, "http://rosreestr.ru/api/online/macro_regions", r.MacroRegions())
	assert.Equal(t, "http://rosreestr.ru/api/online/regions/145286000000", r.SubRegions("145286000000"))
}

func TestResolver_ByIDKeepsLiteralKey(t *testing.T) {
	r := NewResolver("")

	got := r.ByID("1:2:3456:7")

	assert.Contains(t, got, "1:2:3456:7")
	assert.Equal(t, DefaultBaseURL+"/fir_object/", strings.TrimSuffix(got, "1:2:3456:7"))
}

func TestResolver_EscapesPathSegments(t *testing.T) {
	r := NewResolver("http://example.test/api/")

	assert.Equal(t, "http://example.test/api/fir_objects/02-04-17%2F043%2F2005-434", r.ByNumber("02-04-17/043/2005-434"))
	assert.Equal(t, "http://example.test/api/fir_object/a%20b", r.ByID("a b"))
}

func TestResolver_BaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewResolver("  ").BaseURL())
	assert.Equal(t, "http://localhost:9000", NewResolver("http://localhost:9000///").BaseURL())
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "object_by_id", OpObjectByID.String())
	assert.Equal(t, "objects_by_number", OpObjectsByNumber.String())
	assert.Equal(t, "objects_by_address", OpObjectsByAddress.String())
	assert.Equal(t, "macro_regions", OpMacroRegions.String())
	assert.Equal(t, "sub_regions", OpSubRegions.String())
	assert.Equal(t, "unknown", Operation(99).String())
}

func TestAddressQuery_Encode(t *testing.T) {
	tests := []struct {
		name  string
		query AddressQuery
		want  string
	}{
		{
			name:  "macro region only",
			query: AddressQuery{MacroRegionID: "78"},
			want:  "macroRegionId=78",
		},
		{
			name: "all parameters in fixed order",
			query: AddressQuery{
				House:         "12",
				Street:        "Lesnaya",
				SettlementID:  "3",
				RegionID:      "2",
				MacroRegionID: "1",
			},
			want: "macroRegionId=1&regionId=2&settlementId=3&street=Lesnaya&house=12",
		},
		{
			name:  "skips empty optional values",
			query: AddressQuery{MacroRegionID: "78", Street: "Lesnaya"},
			want:  "macroRegionId=78&street=Lesnaya",
		},
		{
			name:  "missing macro region",
			query: AddressQuery{RegionID: "2", Street: "Lesnaya"},
			want:  "",
		},
		{
			name:  "escapes values",
			query: AddressQuery{MacroRegionID: "78", House: "12а|2"},
			want:  "macroRegionId=78&house=12%D0%B0%7C2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Encode())
		})
	}
}

func TestAddressQuery_EncodeNormalizesComposition(t *testing.T) {
	// "й" written as "и" followed by a combining breve.
	decomposed := AddressQuery{MacroRegionID: "78", Street: "\u0421\u0438\u043d\u0438\u0306"}
	composed := AddressQuery{MacroRegionID: "78", Street: "\u0421\u0438\u043d\u0439"}

	assert.Equal(t, composed.Encode(), decomposed.Encode())
}
