package accounting

import "agrihub/internal/models"

// SeedAccount is one row of the default chart of accounts. ParentCode
// references another entry's Code; the chart is ordered so parents
// always precede their children.
type SeedAccount struct {
	Code        string
	Name        string
	Type        models.AccountType
	ParentCode  string
	Description string
}

// DefaultChart is the chart of accounts seeded for a new organization.
var DefaultChart = []SeedAccount{
	{Code: "1000", Name: "Assets", Type: models.AccountAsset, Description: "All resources owned by the organization"},
	{Code: "1100", Name: "Current Assets", Type: models.AccountAsset, ParentCode: "1000"},
	{Code: "1110", Name: "Cash and Bank", Type: models.AccountAsset, ParentCode: "1100"},
	{Code: "1120", Name: "Accounts Receivable", Type: models.AccountAsset, ParentCode: "1100"},
	{Code: "1130", Name: "Inventory", Type: models.AccountAsset, ParentCode: "1100", Description: "Feed, seed, fertilizer and other consumable stock"},
	{Code: "1140", Name: "Prepaid Expenses", Type: models.AccountAsset, ParentCode: "1100"},
	{Code: "1200", Name: "Fixed Assets", Type: models.AccountAsset, ParentCode: "1000"},
	{Code: "1210", Name: "Land", Type: models.AccountAsset, ParentCode: "1200"},
	{Code: "1220", Name: "Buildings and Structures", Type: models.AccountAsset, ParentCode: "1200", Description: "Stables, basins, wells and technical rooms"},
	{Code: "1230", Name: "Machinery and Equipment", Type: models.AccountAsset, ParentCode: "1200"},
	{Code: "1240", Name: "Vehicles", Type: models.AccountAsset, ParentCode: "1200"},
	{Code: "1250", Name: "Livestock", Type: models.AccountAsset, ParentCode: "1200"},
	{Code: "1290", Name: "Accumulated Depreciation", Type: models.AccountAsset, ParentCode: "1200"},

	{Code: "2000", Name: "Liabilities", Type: models.AccountLiability, Description: "All obligations owed by the organization"},
	{Code: "2100", Name: "Current Liabilities", Type: models.AccountLiability, ParentCode: "2000"},
	{Code: "2110", Name: "Accounts Payable", Type: models.AccountLiability, ParentCode: "2100"},
	{Code: "2120", Name: "Wages Payable", Type: models.AccountLiability, ParentCode: "2100"},
	{Code: "2130", Name: "Taxes Payable", Type: models.AccountLiability, ParentCode: "2100"},
	{Code: "2200", Name: "Long-Term Liabilities", Type: models.AccountLiability, ParentCode: "2000"},
	{Code: "2210", Name: "Bank Loans", Type: models.AccountLiability, ParentCode: "2200"},
	{Code: "2220", Name: "Equipment Financing", Type: models.AccountLiability, ParentCode: "2200"},

	{Code: "3000", Name: "Equity", Type: models.AccountEquity},
	{Code: "3100", Name: "Owner Capital", Type: models.AccountEquity, ParentCode: "3000"},
	{Code: "3200", Name: "Retained Earnings", Type: models.AccountEquity, ParentCode: "3000"},
	{Code: "3300", Name: "Current Year Earnings", Type: models.AccountEquity, ParentCode: "3000"},

	{Code: "4000", Name: "Revenue", Type: models.AccountRevenue, Description: "Income from operations"},
	{Code: "4100", Name: "Crop Sales", Type: models.AccountRevenue, ParentCode: "4000"},
	{Code: "4200", Name: "Livestock Sales", Type: models.AccountRevenue, ParentCode: "4000"},
	{Code: "4300", Name: "Dairy and Egg Sales", Type: models.AccountRevenue, ParentCode: "4000"},
	{Code: "4400", Name: "Service Revenue", Type: models.AccountRevenue, ParentCode: "4000", Description: "Equipment rental, custom work and agritourism"},
	{Code: "4900", Name: "Other Income", Type: models.AccountRevenue, ParentCode: "4000", Description: "Subsidies, grants and insurance proceeds"},

	{Code: "5000", Name: "Expenses", Type: models.AccountExpense, Description: "Costs of operations"},
	{Code: "5100", Name: "Seed and Planting", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5200", Name: "Feed and Supplements", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5300", Name: "Fertilizer and Chemicals", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5400", Name: "Veterinary and Breeding", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5500", Name: "Fuel and Utilities", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5600", Name: "Labor", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5700", Name: "Repairs and Maintenance", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5800", Name: "Insurance", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5900", Name: "Depreciation", Type: models.AccountExpense, ParentCode: "5000"},
	{Code: "5990", Name: "Miscellaneous Expense", Type: models.AccountExpense, ParentCode: "5000"},
}
