package domain

// ============================================================
// Patrimony (net worth)
// ============================================================

// PatrimonyAssetType tags what an owned asset is.
type PatrimonyAssetType string

const (
	PatrimonyCash        PatrimonyAssetType = "cash"
	PatrimonyInvestments PatrimonyAssetType = "investments"
	PatrimonyProperty    PatrimonyAssetType = "property"
	PatrimonyVehicle     PatrimonyAssetType = "vehicle"
	PatrimonyOther       PatrimonyAssetType = "other"
)

func (t PatrimonyAssetType) Valid() bool {
	switch t {
	case PatrimonyCash, PatrimonyInvestments, PatrimonyProperty, PatrimonyVehicle, PatrimonyOther:
		return true
	}
	return false
}

func (t PatrimonyAssetType) Label() string {
	switch t {
	case PatrimonyCash:
		return "Dinheiro e contas"
	case PatrimonyInvestments:
		return "Investimentos"
	case PatrimonyProperty:
		return "Imóveis"
	case PatrimonyVehicle:
		return "Veículos"
	case PatrimonyOther:
		return "Outros bens"
	}
	return string(t)
}

// LiabilityType tags what an owed amount is.
type LiabilityType string

const (
	LiabilityDebts        LiabilityType = "debts"
	LiabilityInstallments LiabilityType = "installments"
	LiabilityObligations  LiabilityType = "obligations"
)

func (t LiabilityType) Valid() bool {
	switch t {
	case LiabilityDebts, LiabilityInstallments, LiabilityObligations:
		return true
	}
	return false
}

func (t LiabilityType) Label() string {
	switch t {
	case LiabilityDebts:
		return "Dívidas"
	case LiabilityInstallments:
		return "Parcelamentos"
	case LiabilityObligations:
		return "Obrigações"
	}
	return string(t)
}

// PatrimonyAsset is something the user owns.
type PatrimonyAsset struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Type  PatrimonyAssetType `json:"type"`
	Value float64            `json:"value"`
}

// PatrimonyLiability is something the user owes.
type PatrimonyLiability struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Type  LiabilityType `json:"type"`
	Value float64       `json:"value"`
}

// PatrimonySummary is the net worth view.
type PatrimonySummary struct {
	TotalAssets          float64     `json:"totalAssets"`
	TotalLiabilities     float64     `json:"totalLiabilities"`
	NetWorth             float64     `json:"netWorth"`
	DebtRatio            *float64    `json:"debtRatio"`
	AssetComposition     Breakdown   `json:"assetComposition"`
	LiabilityComposition Breakdown   `json:"liabilityComposition"`
	Variation            *Comparison `json:"variation,omitempty"`
}
