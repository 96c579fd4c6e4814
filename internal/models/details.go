package models

// ParcelData details an outdoor object: land parcel, building or structure.
// Fields typed as any are served inconsistently by the registry (null,
// number or string) and are kept opaque.
type ParcelData struct {
	ID                      string  `json:"id"`
	RegionKey               int     `json:"regionKey"`
	ParcelCn                string  `json:"parcelCn"`
	ParcelStatus            string  `json:"parcelStatus"`
	DateCreate              string  `json:"dateCreate"`
	DateRemove              any     `json:"dateRemove"`
	CategoryType            any     `json:"categoryType"`
	AreaValue               float64 `json:"areaValue"`
	AreaType                string  `json:"areaType"`
	AreaUnit                string  `json:"areaUnit"`
	AreaTypeValue           any     `json:"areaTypeValue"`
	AreaUnitValue           any     `json:"areaUnitValue"`
	CategoryTypeValue       string  `json:"categoryTypeValue"`
	RightsReg               bool    `json:"rightsReg"`
	CadCost                 float64 `json:"cadCost"`
	CadUnit                 string  `json:"cadUnit"`
	DateCost                string  `json:"dateCost"`
	OksFlag                 int     `json:"oksFlag"`
	OksType                 string  `json:"oksType"`
	OksFloors               string  `json:"oksFloors"`
	OksUFloors              string  `json:"oksUFloors"`
	OksElementsConstruct    string  `json:"oksElementsConstruct"`
	OksYearUsed             string  `json:"oksYearUsed"`
	OksInventoryCost        float64 `json:"oksInventoryCost"`
	OksInn                  string  `json:"oksInn"`
	OksExecutor             string  `json:"oksExecutor"`
	OksYearBuilt            string  `json:"oksYearBuilt"`
	OksCostDate             string  `json:"oksCostDate"`
	RcType                  any     `json:"rcType"`
	RcDate                  string  `json:"rcDate"`
	GUIDUl                  string  `json:"guidUl"`
	GUIDFl                  string  `json:"guidFl"`
	CiSurname               string  `json:"ciSurname"`
	CiFirst                 string  `json:"ciFirst"`
	CiPatronymic            string  `json:"ciPatronymic"`
	CiNCertificate          string  `json:"ciNCertificate"`
	CiPhone                 string  `json:"ciPhone"`
	CiEmail                 string  `json:"ciEmail"`
	CiAddress               string  `json:"ciAddress"`
	CoName                  string  `json:"coName"`
	CoInn                   string  `json:"coInn"`
	UtilCode                string  `json:"utilCode"`
	UtilByDoc               string  `json:"utilByDoc"`
	CadastralBlockID        any     `json:"cadastralBlockId"`
	ParcelStatusStr         string  `json:"parcelStatusStr"`
	OksElementsConstructStr string  `json:"oksElementsConstructStr"`
	UtilCodeDesc            any     `json:"utilCodeDesc"`
}

// RegistryData marks ParcelData as a registry record.
func (ParcelData) RegistryData() {}

// IsCapitalConstruction reports whether the object is a building or structure
// rather than bare land.
func (p *ParcelData) IsCapitalConstruction() bool {
	return p.OksFlag == 1
}

// PremisesData details an indoor object such as an apartment.
type PremisesData struct {
	ID                string  `json:"id"`
	RegionKey         int     `json:"regionKey"`
	PremisesCn        string  `json:"premisesCn"`
	PremisesCon       string  `json:"premisesCon"`
	PremisesInv       string  `json:"premisesInv"`
	PremisesUn        string  `json:"premisesUn"`
	LiterBti          string  `json:"literBti"`
	PremisesType      string  `json:"premisesType"`
	AssignType        string  `json:"assignType"`
	PremisesName      string  `json:"premisesName"`
	AreaValue         float64 `json:"areaValue"`
	AreaType          string  `json:"areaType"`
	AreaUnit          string  `json:"areaUnit"`
	PremisesFloor     int     `json:"premisesFloor"`
	PremisesFloorStr  string  `json:"premisesFloorStr"`
	PremisesNum       string  `json:"premisesNum"`
	PremisesTypeValue string  `json:"premisesTypeValue"`
	AreaUnitValue     string  `json:"areaUnitValue"`
	RightsReg         bool    `json:"rightsReg"`
	MultiFlat         bool    `json:"multiFlat"`
	PremisesTypeStr   string  `json:"premisesTypeStr"`
}

// RegistryData marks PremisesData as a registry record.
func (PremisesData) RegistryData() {}

// RealtyData holds object details taken from the legacy rights register.
type RealtyData struct {
	ID              string  `json:"id"`
	RegionKey       int     `json:"regionKey"`
	RealtyCn        string  `json:"realtyCn"`
	RealtyCon       string  `json:"realtyCon"`
	RealtyInv       string  `json:"realtyInv"`
	RealtyUn        string  `json:"realtyUn"`
	LiterBti        string  `json:"literBti"`
	RealtyType      string  `json:"realtyType"`
	AssignType      string  `json:"assignType"`
	RealtyName      string  `json:"realtyName"`
	AreaValue       float64 `json:"areaValue"`
	AreaType        string  `json:"areaType"`
	AreaUnit        string  `json:"areaUnit"`
	FloorGround     string  `json:"floorGround"`
	FloorUnder      string  `json:"floorUnder"`
	FloorGroundStr  string  `json:"floorGroundStr"`
	FloorUnderStr   string  `json:"floorUnderStr"`
	RealtyTypeValue string  `json:"realtyTypeValue"`
	AreaUnitValue   string  `json:"areaUnitValue"`
	RightsReg       bool    `json:"rightsReg"`
	MultiFlat       bool    `json:"multiFlat"`
	Incomplete      bool    `json:"incomplete"`
	RealtyTypeStr   string  `json:"realtyTypeStr"`
}

// RegistryData marks RealtyData as a registry record.
func (RealtyData) RegistryData() {}
