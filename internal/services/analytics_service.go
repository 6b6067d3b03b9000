package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/repositories"
)

type analyticsService struct {
	accountRepo   repositories.BankAccountRepository
	categoryRepo  repositories.CategoryRepository
	operationRepo repositories.OperationRepository
}

// NewAnalyticsService creates an AnalyticsServiceInterface instance.
func NewAnalyticsService(
	accountRepo repositories.BankAccountRepository,
	categoryRepo repositories.CategoryRepository,
	operationRepo repositories.OperationRepository,
) (AnalyticsServiceInterface, error) {
	if accountRepo == nil || categoryRepo == nil || operationRepo == nil {
		return nil, ErrNilRepository
	}

	return &analyticsService{
		accountRepo:   accountRepo,
		categoryRepo:  categoryRepo,
		operationRepo: operationRepo,
	}, nil
}

// IncomeVsExpenses returns net profit for the window: income plus expense
// sums over operations with start <= date <= end. Expense amounts are
// already negative, so the result is a plain sum. Zero when nothing
// matches.
func (s *analyticsService) IncomeVsExpenses(start, end time.Time) decimal.Decimal {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, op := range s.operationsInWindow(start, end) {
		switch op.Type {
		case models.OperationTypeIncome:
			income = income.Add(op.Amount)
		case models.OperationTypeExpense:
			expenses = expenses.Add(op.Amount)
		}
	}

	return income.Add(expenses)
}

// GroupByCategory sums signed amounts per category over the window, keyed
// by the category's current display name. Operations whose category no
// longer exists are grouped under a placeholder embedding the missing id.
func (s *analyticsService) GroupByCategory(start, end time.Time) map[string]decimal.Decimal {
	names := make(map[uuid.UUID]string)
	for _, category := range s.categoryRepo.GetAll() {
		names[category.ID] = category.Name
	}

	result := make(map[string]decimal.Decimal)
	for _, op := range s.operationsInWindow(start, end) {
		key, ok := names[op.CategoryID]
		if !ok {
			key = fmt.Sprintf("Unknown (%s)", op.CategoryID)
		}

		result[key] = result[key].Add(op.Amount)
	}

	return result
}

// DetailedCategoryAnalysis computes a summary for every category currently
// in the repository, including categories with no operations.
func (s *analyticsService) DetailedCategoryAnalysis() map[string]models.CategorySummary {
	operations := s.operationRepo.GetAll()

	result := make(map[string]models.CategorySummary)
	for _, category := range s.categoryRepo.GetAll() {
		income := decimal.Zero
		expense := decimal.Zero
		absoluteTotal := decimal.Zero
		count := 0

		for _, op := range operations {
			if op.CategoryID != category.ID {
				continue
			}

			switch op.Type {
			case models.OperationTypeIncome:
				income = income.Add(op.Amount)
			case models.OperationTypeExpense:
				expense = expense.Add(op.Amount)
			}

			absoluteTotal = absoluteTotal.Add(op.Amount.Abs())
			count++
		}

		average := decimal.Zero
		if count > 0 {
			average = absoluteTotal.Div(decimal.NewFromInt(int64(count)))
		}

		result[category.Name] = models.CategorySummary{
			CategoryType:   category.Type,
			TotalIncome:    income,
			TotalExpense:   expense,
			OperationCount: count,
			AverageAmount:  average,
		}
	}

	return result
}

// OverallStatistics aggregates the entire dataset. Account balances are
// summed as stored; no recalculation happens here. TopCategories is sorted
// descending by absolute total, ties keeping first-appearance order.
func (s *analyticsService) OverallStatistics() *models.OverallStatistics {
	accounts := s.accountRepo.GetAll()
	operations := s.operationRepo.GetAll()

	names := make(map[uuid.UUID]string)
	for _, category := range s.categoryRepo.GetAll() {
		names[category.ID] = category.Name
	}

	totalBalance := decimal.Zero
	for _, account := range accounts {
		totalBalance = totalBalance.Add(account.Balance)
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	var order []uuid.UUID
	totals := make(map[uuid.UUID]decimal.Decimal)
	counts := make(map[uuid.UUID]int)

	for _, op := range operations {
		switch op.Type {
		case models.OperationTypeIncome:
			totalIncome = totalIncome.Add(op.Amount)
		case models.OperationTypeExpense:
			totalExpense = totalExpense.Add(op.Amount)
		}

		if _, seen := totals[op.CategoryID]; !seen {
			order = append(order, op.CategoryID)
		}
		totals[op.CategoryID] = totals[op.CategoryID].Add(op.Amount)
		counts[op.CategoryID]++
	}

	topCategories := make([]models.CategoryTotal, 0, len(order))
	for _, categoryID := range order {
		name, ok := names[categoryID]
		if !ok {
			name = fmt.Sprintf("Unknown (%s)", categoryID)
		}

		topCategories = append(topCategories, models.CategoryTotal{
			Name:           name,
			Total:          totals[categoryID],
			OperationCount: counts[categoryID],
		})
	}

	sort.SliceStable(topCategories, func(i, j int) bool {
		return topCategories[i].Total.Abs().GreaterThan(topCategories[j].Total.Abs())
	})

	return &models.OverallStatistics{
		TotalAccounts:   len(accounts),
		TotalBalance:    totalBalance,
		TotalOperations: len(operations),
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
		NetProfit:       totalIncome.Add(totalExpense),
		TopCategories:   topCategories,
	}
}

// RecalculateBalances replaces every account's stored balance with the sum
// of amounts of all operations referencing it, ignoring any date range.
// Accounts with no operations are reset to zero. Idempotent: repeated calls
// without intervening operation changes yield the same balances.
func (s *analyticsService) RecalculateBalances() {
	operations := s.operationRepo.GetAll()
	accounts := s.accountRepo.GetAll()

	for _, account := range accounts {
		balance := decimal.Zero
		for _, op := range operations {
			if op.BankAccountID == account.ID {
				balance = balance.Add(op.Amount)
			}
		}

		account.SetBalance(balance)
		s.accountRepo.Update(account)
	}

	slog.Info("account balances recalculated", "account_count", len(accounts))
}

func (s *analyticsService) operationsInWindow(start, end time.Time) []*models.Operation {
	var matched []*models.Operation
	for _, op := range s.operationRepo.GetAll() {
		if op.Date.Before(start) || op.Date.After(end) {
			continue
		}
		matched = append(matched, op)
	}
	return matched
}
