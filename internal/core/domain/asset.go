package domain

// AssetType classifies what kind of asset a member holds.
type AssetType string

const (
	AssetCash         AssetType = "cash"
	AssetBankAccount  AssetType = "bank_account"
	AssetGoldCurrency AssetType = "gold_currency"
	AssetRealEstate   AssetType = "real_estate"
	AssetVehicle      AssetType = "vehicle"
	AssetOther        AssetType = "other"
)

var assetTypeLabels = map[AssetType]string{
	AssetCash:         "موجودی نقد",
	AssetBankAccount:  "حساب بانکی",
	AssetGoldCurrency: "طلا و ارز",
	AssetRealEstate:   "املاک",
	AssetVehicle:      "خودرو",
	AssetOther:        "سایر دارایی‌ها",
}

// IsValid reports whether t is one of the known asset types.
func (t AssetType) IsValid() bool {
	_, ok := assetTypeLabels[t]
	return ok
}

// Label returns the display name of t, or t itself when it is unknown.
func (t AssetType) Label() string {
	if label, ok := assetTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Asset is something of value owned by a member.
type Asset struct {
	ID       string    `json:"id" validate:"required"`
	MemberID string    `json:"memberId" validate:"required"`
	Type     AssetType `json:"type" validate:"oneof=cash bank_account gold_currency real_estate vehicle other"`
	Title    string    `json:"title"`
	Amount   int64     `json:"amount"`
}
