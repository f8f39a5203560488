package static

import (
	"time"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

func seed(userID string, now time.Time) *dataset {
	loc := now.Location()
	y, m, dd := now.Date()
	today := time.Date(y, m, dd, 0, 0, 0, 0, loc)
	at := func(daysAgo, hour, minute int) time.Time {
		return today.AddDate(0, 0, -daysAgo).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	in := func(days int) time.Time { return today.AddDate(0, 0, days) }
	monthsAhead := func(n int) *time.Time {
		t := today.AddDate(0, n, 0)
		return &t
	}
	f := func(v float64) *float64 { return &v }

	return &dataset{
		accounts: []domain.Account{
			{ID: "acc-1", UserID: userID, Name: "Conta principal", Institution: "Itaú", Type: domain.AccountChecking, Balance: 4235.87, IsActive: true, CreatedAt: today.AddDate(-3, 0, 0)},
			{ID: "acc-2", UserID: userID, Name: "Reserva", Institution: "Nubank", Type: domain.AccountSavings, Balance: 12800.00, IsActive: true, CreatedAt: today.AddDate(-2, 0, 0)},
			{ID: "acc-3", UserID: userID, Name: "Carteira", Institution: "Dinheiro", Type: domain.AccountWallet, Balance: 180.50, IsActive: true, CreatedAt: today.AddDate(-1, 0, 0)},
			{ID: "acc-4", UserID: userID, Name: "Conta salário", Institution: "Bradesco", Type: domain.AccountChecking, Balance: -152.30, IsActive: true, CreatedAt: today.AddDate(-4, 0, 0)},
			{ID: "acc-5", UserID: userID, Name: "Conta antiga", Institution: "Santander", Type: domain.AccountChecking, Balance: 0, IsActive: false, CreatedAt: today.AddDate(-6, 0, 0)},
		},
		budgets: []domain.Budget{
			{ID: "bud-1", Category: "Alimentação", Limit: 1500, Spent: 1120.40, Period: domain.BudgetMonthly},
			{ID: "bud-2", Category: "Transporte", Limit: 600, Spent: 562.10, Period: domain.BudgetMonthly},
			{ID: "bud-3", Category: "Lazer", Limit: 400, Spent: 455.00, Period: domain.BudgetMonthly},
			{ID: "bud-4", Category: "Saúde", Limit: 500, Spent: 120.00, Period: domain.BudgetMonthly},
			{ID: "bud-5", Category: "Educação", Limit: 800, Spent: 650.00, Period: domain.BudgetMonthly},
		},
		cards: []domain.CreditCard{
			{ID: "card-1", Name: "Nubank Ultravioleta", Brand: "Mastercard", LastDigits: "4821", Limit: 8000, Used: 7350.25, ClosingDay: 3, DueDay: 10},
			{ID: "card-2", Name: "Itaú Click", Brand: "Visa", LastDigits: "1177", Limit: 3500, Used: 980.40, ClosingDay: 20, DueDay: 28},
		},
		purchases: []domain.Purchase{
			{ID: "pur-01", Description: "Supermercado", Establishment: "Pão de Açúcar", Amount: 42.90, Date: at(0, 9, 15), Category: "Alimentação", PaymentMethod: domain.PaymentDebitCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-02", Description: "Uber", Establishment: "Uber", Amount: 28.50, Date: at(0, 8, 2), Category: "Transporte", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-03", Description: "Café", Establishment: "Starbucks", Amount: 24.80, Date: at(0, 7, 40), Category: "Alimentação", PaymentMethod: domain.PaymentPix, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-04", Description: "Farmácia", Establishment: "Drogasil", Amount: 67.35, Date: at(1, 19, 5), Category: "Saúde", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-05", Description: "Jantar", Establishment: "Outback", Amount: 186.00, Date: at(1, 21, 30), Category: "Lazer", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-06", Description: "Notebook", Establishment: "Magazine Luiza", Amount: 450.00, Date: at(2, 14, 0), Category: "Eletrônicos", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseInstallment, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}, Installments: &domain.PurchaseInstallments{Current: 3, Total: 10}},
			{ID: "pur-07", Description: "Combustível", Establishment: "Shell", Amount: 210.00, Date: at(3, 18, 20), Category: "Transporte", PaymentMethod: domain.PaymentDebitCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-08", Description: "Curso online", Establishment: "Alura", Amount: 89.90, Date: at(4, 10, 0), Category: "Educação", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseRecurring, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-09", Description: "Feira", Establishment: "Feira livre", Amount: 58.00, Date: at(5, 8, 30), Category: "Alimentação", PaymentMethod: domain.PaymentCash, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-10", Description: "Tênis", Establishment: "Centauro", Amount: 399.90, Date: at(6, 16, 45), Category: "Vestuário", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseRefunded}},
			{ID: "pur-11", Description: "Conta de luz", Establishment: "Enel", Amount: 248.17, Date: at(9, 12, 0), Category: "Moradia", PaymentMethod: domain.PaymentBoleto, Type: domain.PurchaseRecurring, Status: []domain.PurchaseStatus{domain.PurchasePending}},
			{ID: "pur-12", Description: "Cinema", Establishment: "Cinemark", Amount: 72.00, Date: at(12, 20, 10), Category: "Lazer", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-13", Description: "Supermercado", Establishment: "Carrefour", Amount: 512.43, Date: at(18, 11, 0), Category: "Alimentação", PaymentMethod: domain.PaymentDebitCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-14", Description: "Aluguel", Establishment: "Imobiliária", Amount: 2100.00, Date: at(25, 9, 0), Category: "Moradia", PaymentMethod: domain.PaymentTransfer, Type: domain.PurchaseRecurring, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-15", Description: "Presente", Establishment: "Amazon", Amount: 159.90, Date: at(33, 15, 0), Category: "Lazer", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseDisputed}},
			{ID: "pur-16", Description: "Supermercado", Establishment: "Pão de Açúcar", Amount: 634.12, Date: at(41, 10, 30), Category: "Alimentação", PaymentMethod: domain.PaymentDebitCard, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-17", Description: "Aluguel", Establishment: "Imobiliária", Amount: 2100.00, Date: at(55, 9, 0), Category: "Moradia", PaymentMethod: domain.PaymentTransfer, Type: domain.PurchaseRecurring, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-18", Description: "Dentista", Establishment: "OdontoPrev", Amount: 350.00, Date: at(70, 14, 0), Category: "Saúde", PaymentMethod: domain.PaymentPix, Type: domain.PurchaseSingle, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-19", Description: "Aluguel", Establishment: "Imobiliária", Amount: 2100.00, Date: at(86, 9, 0), Category: "Moradia", PaymentMethod: domain.PaymentTransfer, Type: domain.PurchaseRecurring, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}},
			{ID: "pur-20", Description: "Passagem aérea", Establishment: "LATAM", Amount: 1280.00, Date: at(120, 22, 0), Category: "Viagem", PaymentMethod: domain.PaymentCreditCard, Type: domain.PurchaseInstallment, Status: []domain.PurchaseStatus{domain.PurchaseConfirmed}, Installments: &domain.PurchaseInstallments{Current: 4, Total: 6}},
			{ID: "pur-21", Description: "Seguro do carro", Establishment: "Porto Seguro", Amount: 310.00, Date: in(2).Add(10 * time.Hour), Category: "Transporte", PaymentMethod: domain.PaymentBoleto, Type: domain.PurchaseRecurring, Status: []domain.PurchaseStatus{domain.PurchaseScheduled}},
		},
		subscriptions: []domain.Subscription{
			{ID: "sub-1", Name: "Netflix", Amount: 55.90, Frequency: domain.FrequencyMonthly, Category: "Streaming", NextBillingDate: in(4), Status: domain.SubscriptionActive},
			{ID: "sub-2", Name: "Spotify", Amount: 21.90, Frequency: domain.FrequencyMonthly, Category: "Streaming", NextBillingDate: in(12), Status: domain.SubscriptionActive},
			{ID: "sub-3", Name: "Disney+", Amount: 33.90, Frequency: domain.FrequencyMonthly, Category: "Streaming", NextBillingDate: in(20), Status: domain.SubscriptionActive, Risks: []domain.SubscriptionRisk{domain.RiskUnused, domain.RiskRedundant}},
			{ID: "sub-4", Name: "Antivírus", Amount: 399.00, Frequency: domain.FrequencyAnnual, Category: "Software", NextBillingDate: in(5), Status: domain.SubscriptionActive, Risks: []domain.SubscriptionRisk{domain.RiskAnnualRenewal}},
			{ID: "sub-5", Name: "Lavanderia", Amount: 10.00, Frequency: domain.FrequencyWeekly, Category: "Serviços", NextBillingDate: in(1), Status: domain.SubscriptionActive, Risks: []domain.SubscriptionRisk{domain.RiskPriceIncrease}},
			{ID: "sub-6", Name: "Academia", Amount: 119.90, Frequency: domain.FrequencyMonthly, Category: "Saúde", NextBillingDate: in(9), Status: domain.SubscriptionTrial, Risks: []domain.SubscriptionRisk{domain.RiskOverpriced}},
			{ID: "sub-7", Name: "Revista", Amount: 89.90, Frequency: domain.FrequencySemiannual, Category: "Notícias", NextBillingDate: in(3), Status: domain.SubscriptionCancelled},
			{ID: "sub-8", Name: "Cloud storage", Amount: 29.70, Frequency: domain.FrequencyQuarterly, Category: "Software", NextBillingDate: in(40), Status: domain.SubscriptionPaused},
		},
		debts: []domain.Debt{
			{ID: "debt-1", Name: "Financiamento do carro", Creditor: "Banco Itaú", Type: domain.DebtFinancing, OriginalAmount: 48000, CurrentBalance: 26400, MonthlyPayment: 1200, InterestRate: f(1.29), NextDueDate: in(8), RemainingPayments: 22, Status: domain.DebtActive},
			{ID: "debt-2", Name: "Empréstimo pessoal", Creditor: "Nubank", Type: domain.DebtLoan, OriginalAmount: 10000, CurrentBalance: 6250, MonthlyPayment: 625, InterestRate: f(2.1), NextDueDate: in(15), EndDate: monthsAhead(10), RemainingPayments: 10, Status: domain.DebtRenegotiated},
			{ID: "debt-3", Name: "Cheque especial", Creditor: "Bradesco", Type: domain.DebtOverdraft, OriginalAmount: 800, CurrentBalance: 940, MonthlyPayment: 150, InterestRate: f(8.0), NextDueDate: in(-3), Status: domain.DebtLate},
			{ID: "debt-4", Name: "Crédito consignado", Creditor: "Caixa", Type: domain.DebtLoan, OriginalAmount: 5000, CurrentBalance: 0, MonthlyPayment: 0, NextDueDate: in(-30), Status: domain.DebtPaid},
		},
		installments: []domain.Installment{
			{ID: "inst-1", Description: "Notebook", Store: "Magazine Luiza", OriginalAmount: 4500, InstallmentAmount: 450, TotalInstallments: 10, PaidInstallments: 3, RemainingAmount: 3150, NextDueDate: in(10)},
			{ID: "inst-2", Description: "Passagem aérea", Store: "LATAM", OriginalAmount: 1280, InstallmentAmount: 213.33, TotalInstallments: 6, PaidInstallments: 4, RemainingAmount: 426.67, NextDueDate: in(10)},
			{ID: "inst-3", Description: "Geladeira", Store: "Casas Bahia", OriginalAmount: 3600, InstallmentAmount: 300, TotalInstallments: 12, PaidInstallments: 12, RemainingAmount: 0, NextDueDate: in(-20)},
		},
		assets: []domain.Asset{
			{ID: "inv-1", Name: "Tesouro Selic 2029", Institution: "XP", Class: domain.ClassFixedIncome, RiskLevel: domain.RiskLow, Liquidity: domain.LiquidityImmediate, InvestedAmount: 15000, CurrentValue: 16245.80, IsStrategic: true, StrategicPurpose: "Reserva de emergência"},
			{ID: "inv-2", Name: "CDB 110% CDI", Institution: "Nubank", Class: domain.ClassFixedIncome, RiskLevel: domain.RiskLow, Liquidity: domain.LiquidityMediumTerm, InvestedAmount: 8000, CurrentValue: 8612.40},
			{ID: "inv-3", Name: "BOVA11", Institution: "XP", Class: domain.ClassStocks, RiskLevel: domain.RiskHigh, Liquidity: domain.LiquidityShortTerm, InvestedAmount: 6000, CurrentValue: 5480.00},
			{ID: "inv-4", Name: "HGLG11", Institution: "XP", Class: domain.ClassRealEstateFunds, RiskLevel: domain.RiskMedium, Liquidity: domain.LiquidityShortTerm, InvestedAmount: 4000, CurrentValue: 4310.00},
			{ID: "inv-5", Name: "PGBL Previdência", Institution: "Itaú", Class: domain.ClassPension, RiskLevel: domain.RiskMedium, Liquidity: domain.LiquidityLongTerm, InvestedAmount: 12000, CurrentValue: 13150.00, IsStrategic: true, StrategicPurpose: "Aposentadoria"},
			{ID: "inv-6", Name: "Bitcoin", Institution: "Mercado Bitcoin", Class: domain.ClassCrypto, RiskLevel: domain.RiskHigh, Liquidity: domain.LiquidityImmediate, InvestedAmount: 2000, CurrentValue: 2890.00},
		},
		patAssets: []domain.PatrimonyAsset{
			{ID: "pa-1", Name: "Contas e carteira", Type: domain.PatrimonyCash, Value: 17064.07},
			{ID: "pa-2", Name: "Investimentos", Type: domain.PatrimonyInvestments, Value: 50688.20},
			{ID: "pa-3", Name: "Apartamento", Type: domain.PatrimonyProperty, Value: 420000},
			{ID: "pa-4", Name: "Carro", Type: domain.PatrimonyVehicle, Value: 62000},
		},
		patLiabs: []domain.PatrimonyLiability{
			{ID: "pl-1", Name: "Dívidas", Type: domain.LiabilityDebts, Value: 33590},
			{ID: "pl-2", Name: "Parcelamentos", Type: domain.LiabilityInstallments, Value: 3576.67},
			{ID: "pl-3", Name: "IPTU a pagar", Type: domain.LiabilityObligations, Value: 1850},
		},
		goals: []domain.FinancialGoal{
			{ID: "goal-1", Name: "Reserva de emergência", TargetAmount: 30000, CurrentAmount: 16245.80, MonthlyContribution: 1000, RequiredMonthlyContribution: 1150, Status: domain.GoalActive, Deadline: monthsAhead(12)},
			{ID: "goal-2", Name: "Viagem para o Japão", TargetAmount: 25000, CurrentAmount: 7800, MonthlyContribution: 900, RequiredMonthlyContribution: 860, Status: domain.GoalActive, Deadline: monthsAhead(20)},
			{ID: "goal-3", Name: "Troca do celular", TargetAmount: 6000, CurrentAmount: 6000, Status: domain.GoalCompleted, Deadline: monthsAhead(-2)},
			{ID: "goal-4", Name: "Entrada do apartamento", TargetAmount: 120000, CurrentAmount: 18000, MonthlyContribution: 0, RequiredMonthlyContribution: 2500, Status: domain.GoalPaused, Deadline: monthsAhead(48)},
		},
		settings: domain.Settings{
			Timezone:           loc.String(),
			SubscriptionBudget: f(300),
			MonthlyCapacity:    f(2500),
			UpcomingWindowDays: 7,
		},
		baselines: domain.Baselines{
			AccountsBalance: f(15920.40),
			NetWorth:        f(505410.10),
		},
		dismissed: make(map[string]bool),
	}
}
