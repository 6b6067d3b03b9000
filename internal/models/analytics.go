package models

import "github.com/shopspring/decimal"

// CategorySummary contains the aggregated figures for a single category.
type CategorySummary struct {
	CategoryType   CategoryType    `json:"category_type"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	OperationCount int             `json:"operation_count"`
	AverageAmount  decimal.Decimal `json:"average_amount"`
}

// CategoryTotal is one entry of the ranked category list in the overall
// statistics: resolved category name, signed total and operation count.
type CategoryTotal struct {
	Name           string          `json:"name"`
	Total          decimal.Decimal `json:"total"`
	OperationCount int             `json:"operation_count"`
}

// OverallStatistics aggregates the whole dataset. TotalBalance sums the
// balances as currently stored and does not trigger a recalculation.
type OverallStatistics struct {
	TotalAccounts   int             `json:"total_accounts"`
	TotalBalance    decimal.Decimal `json:"total_balance"`
	TotalOperations int             `json:"total_operations"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	TopCategories   []CategoryTotal `json:"top_categories"`
}
