package domain

// ============================================================
// Investments
// ============================================================

// AssetClass groups investments for allocation views.
type AssetClass string

const (
	ClassFixedIncome     AssetClass = "fixed_income"
	ClassStocks          AssetClass = "stocks"
	ClassFunds           AssetClass = "funds"
	ClassRealEstateFunds AssetClass = "real_estate_funds"
	ClassCrypto          AssetClass = "crypto"
	ClassPension         AssetClass = "pension"
	ClassInternational   AssetClass = "international"
)

func (c AssetClass) Valid() bool {
	switch c {
	case ClassFixedIncome, ClassStocks, ClassFunds, ClassRealEstateFunds, ClassCrypto, ClassPension, ClassInternational:
		return true
	}
	return false
}

func (c AssetClass) Label() string {
	switch c {
	case ClassFixedIncome:
		return "Renda fixa"
	case ClassStocks:
		return "Ações"
	case ClassFunds:
		return "Fundos"
	case ClassRealEstateFunds:
		return "Fundos imobiliários"
	case ClassCrypto:
		return "Criptoativos"
	case ClassPension:
		return "Previdência"
	case ClassInternational:
		return "Internacional"
	}
	return string(c)
}

// RiskLevel is the investor-facing risk rating.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

func (r RiskLevel) Label() string {
	switch r {
	case RiskLow:
		return "Baixo"
	case RiskMedium:
		return "Moderado"
	case RiskHigh:
		return "Alto"
	}
	return string(r)
}

// Liquidity is the bucket of how fast an asset turns into cash.
type Liquidity string

const (
	LiquidityImmediate  Liquidity = "immediate"   // D+0 / D+1
	LiquidityShortTerm  Liquidity = "short_term"  // up to 30 days
	LiquidityMediumTerm Liquidity = "medium_term" // up to 1 year
	LiquidityLongTerm   Liquidity = "long_term"   // over 1 year or at maturity
)

func (l Liquidity) Valid() bool {
	switch l {
	case LiquidityImmediate, LiquidityShortTerm, LiquidityMediumTerm, LiquidityLongTerm:
		return true
	}
	return false
}

func (l Liquidity) Label() string {
	switch l {
	case LiquidityImmediate:
		return "Imediata"
	case LiquidityShortTerm:
		return "Até 30 dias"
	case LiquidityMediumTerm:
		return "Até 1 ano"
	case LiquidityLongTerm:
		return "Acima de 1 ano"
	}
	return string(l)
}

// Asset is a single investment position.
type Asset struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Institution      string     `json:"institution"`
	Class            AssetClass `json:"class"`
	RiskLevel        RiskLevel  `json:"riskLevel"`
	Liquidity        Liquidity  `json:"liquidity"`
	InvestedAmount   float64    `json:"investedAmount"`
	CurrentValue     float64    `json:"currentValue"`
	IsStrategic      bool       `json:"isStrategic"`
	StrategicPurpose string     `json:"strategicPurpose,omitempty"`
}

// Profitability is currentValue − investedAmount.
func (a Asset) Profitability() float64 {
	return a.CurrentValue - a.InvestedAmount
}

// InvestmentsSummary aggregates the portfolio.
type InvestmentsSummary struct {
	TotalInvested        float64   `json:"totalInvested"`
	CurrentValue         float64   `json:"currentValue"`
	Profitability        float64   `json:"profitability"`
	ProfitabilityPercent *float64  `json:"profitabilityPercent"`
	AssetCount           int       `json:"assetCount"`
	ByClass              Breakdown `json:"byClass"`
	ByInstitution        Breakdown `json:"byInstitution"`
	ByLiquidity          Breakdown `json:"byLiquidity"`
	ByRisk               Breakdown `json:"byRisk"`
	StrategicTotal       float64   `json:"strategicTotal"`
	StrategicCount       int       `json:"strategicCount"`
}
