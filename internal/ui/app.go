package ui

import (
	"fmt"
	"io"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/commands"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/config"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/dto"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/persistence"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/services"
)

// App assembles the interactive menu tree over the core services. It is
// pure presentation glue: every action delegates to a service or the
// persistence handler, wrapped in the timing decorator.
type App struct {
	accounts   services.AccountServiceInterface
	categories services.CategoryServiceInterface
	operations services.OperationServiceInterface
	analytics  services.AnalyticsServiceInterface
	handler    *persistence.JSONHandler
	cfg        *config.Config
}

func NewApp(
	accounts services.AccountServiceInterface,
	categories services.CategoryServiceInterface,
	operations services.OperationServiceInterface,
	analytics services.AnalyticsServiceInterface,
	handler *persistence.JSONHandler,
	cfg *config.Config,
) *App {
	return &App{
		accounts:   accounts,
		categories: categories,
		operations: operations,
		analytics:  analytics,
		handler:    handler,
		cfg:        cfg,
	}
}

// Run drives the main menu loop until the user exits.
func (a *App) Run(in io.Reader, out io.Writer) {
	console := NewConsole(in, out)
	console.Run(a.buildRootMenu(console))
}

func (a *App) buildRootMenu(c *Console) *MenuItem {
	return &MenuItem{
		Label: "Finance Tracker",
		Items: []*MenuItem{
			a.buildAccountsMenu(c),
			a.buildCategoriesMenu(c),
			a.buildOperationsMenu(c),
			a.buildAnalyticsMenu(c),
			a.buildDataMenu(c),
		},
	}
}

func (a *App) buildAccountsMenu(c *Console) *MenuItem {
	return &MenuItem{
		Label: "Accounts",
		Items: []*MenuItem{
			{
				Label: "Create account",
				Run: a.timed("create account", func() error {
					name, ok := c.promptString("Account name")
					if !ok {
						return nil
					}

					account, err := a.accounts.Create(dto.CreateAccountRequest{Name: name})
					if err != nil {
						return err
					}

					fmt.Fprintf(c.out, "Created account %s\n", account.ID)
					return nil
				}),
			},
			{
				Label: "List accounts",
				Run: a.timed("list accounts", func() error {
					for _, account := range a.accounts.GetAll() {
						fmt.Fprintf(c.out, "%s  %s  balance=%s\n",
							account.ID, account.Name, account.Balance)
					}
					return nil
				}),
			},
			{
				Label:   "Set balance manually",
				Enabled: func() bool { return len(a.accounts.GetAll()) > 0 },
				Run: a.timed("set balance manually", func() error {
					id, ok := c.promptUUID("Account id")
					if !ok {
						return nil
					}
					balance, ok := c.promptDecimal("New balance")
					if !ok {
						return nil
					}

					return a.accounts.SetBalanceManually(id, balance)
				}),
			},
			{
				Label:   "Delete account",
				Enabled: func() bool { return len(a.accounts.GetAll()) > 0 },
				Run: a.timed("delete account", func() error {
					id, ok := c.promptUUID("Account id")
					if !ok {
						return nil
					}

					a.accounts.Delete(id)
					return nil
				}),
			},
		},
	}
}

func (a *App) buildCategoriesMenu(c *Console) *MenuItem {
	return &MenuItem{
		Label: "Categories",
		Items: []*MenuItem{
			{
				Label: "Create category",
				Run: a.timed("create category", func() error {
					kind, ok := c.promptKind("Category type")
					if !ok {
						return nil
					}
					name, ok := c.promptString("Category name")
					if !ok {
						return nil
					}

					category, err := a.categories.Create(dto.CreateCategoryRequest{
						Type: models.CategoryType(kind),
						Name: name,
					})
					if err != nil {
						return err
					}

					fmt.Fprintf(c.out, "Created category %s\n", category.ID)
					return nil
				}),
			},
			{
				Label: "List categories",
				Run: a.timed("list categories", func() error {
					for _, category := range a.categories.GetAll() {
						fmt.Fprintf(c.out, "%s  %s  %s\n",
							category.ID, category.Type, category.Name)
					}
					return nil
				}),
			},
			{
				Label:   "Rename category",
				Enabled: func() bool { return len(a.categories.GetAll()) > 0 },
				Run: a.timed("rename category", func() error {
					id, ok := c.promptUUID("Category id")
					if !ok {
						return nil
					}
					name, ok := c.promptString("New name")
					if !ok {
						return nil
					}

					return a.categories.Rename(id, name)
				}),
			},
			{
				Label:   "Delete category",
				Enabled: func() bool { return len(a.categories.GetAll()) > 0 },
				Run: a.timed("delete category", func() error {
					id, ok := c.promptUUID("Category id")
					if !ok {
						return nil
					}

					a.categories.Delete(id)
					return nil
				}),
			},
		},
	}
}

func (a *App) buildOperationsMenu(c *Console) *MenuItem {
	hasPrerequisites := func() bool {
		return len(a.accounts.GetAll()) > 0 && len(a.categories.GetAll()) > 0
	}
	hasOperations := func() bool { return len(a.operations.GetAll()) > 0 }

	return &MenuItem{
		Label: "Operations",
		Items: []*MenuItem{
			{
				Label:   "Record operation",
				Enabled: hasPrerequisites,
				Run: a.timed("record operation", func() error {
					kind, ok := c.promptKind("Operation type")
					if !ok {
						return nil
					}
					accountID, ok := c.promptUUID("Account id")
					if !ok {
						return nil
					}
					amount, ok := c.promptDecimal("Amount (negative for expense)")
					if !ok {
						return nil
					}
					date, ok := c.promptDate("Date")
					if !ok {
						return nil
					}
					description, ok := c.promptString("Description (optional)")
					if !ok {
						return nil
					}
					categoryID, ok := c.promptUUID("Category id")
					if !ok {
						return nil
					}

					operation, err := a.operations.Create(dto.CreateOperationRequest{
						Type:          models.OperationType(kind),
						BankAccountID: accountID,
						Amount:        amount,
						Date:          date,
						Description:   description,
						CategoryID:    categoryID,
					})
					if err != nil {
						return err
					}

					fmt.Fprintf(c.out, "Recorded operation %s\n", operation.ID)
					return nil
				}),
			},
			{
				Label: "List operations",
				Run: a.timed("list operations", func() error {
					for _, op := range a.operations.GetAll() {
						fmt.Fprintf(c.out, "%s  %s  %s  account=%s  category=%s  %s\n",
							op.ID, op.Date.Format(dateLayout), op.Amount,
							op.BankAccountID, op.CategoryID, op.Description)
					}
					return nil
				}),
			},
			{
				Label:   "Update operation amount",
				Enabled: hasOperations,
				Run: a.timed("update operation amount", func() error {
					id, ok := c.promptUUID("Operation id")
					if !ok {
						return nil
					}
					amount, ok := c.promptDecimal("New amount")
					if !ok {
						return nil
					}

					return a.operations.UpdateAmount(id, amount)
				}),
			},
			{
				Label:   "Update operation description",
				Enabled: hasOperations,
				Run: a.timed("update operation description", func() error {
					id, ok := c.promptUUID("Operation id")
					if !ok {
						return nil
					}
					description, ok := c.promptString("New description")
					if !ok {
						return nil
					}

					return a.operations.UpdateDescription(id, description)
				}),
			},
			{
				Label:   "Delete operation",
				Enabled: hasOperations,
				Run: a.timed("delete operation", func() error {
					id, ok := c.promptUUID("Operation id")
					if !ok {
						return nil
					}

					a.operations.Delete(id)
					return nil
				}),
			},
		},
	}
}

func (a *App) buildAnalyticsMenu(c *Console) *MenuItem {
	return &MenuItem{
		Label: "Analytics",
		Items: []*MenuItem{
			{
				Label: "Income vs expenses",
				Run: a.timed("income vs expenses", func() error {
					start, ok := c.promptDate("Start date")
					if !ok {
						return nil
					}
					end, ok := c.promptDate("End date")
					if !ok {
						return nil
					}

					net := a.analytics.IncomeVsExpenses(start, end)
					fmt.Fprintf(c.out, "Net for window: %s\n", net)
					return nil
				}),
			},
			{
				Label: "Group by category",
				Run: a.timed("group by category", func() error {
					start, ok := c.promptDate("Start date")
					if !ok {
						return nil
					}
					end, ok := c.promptDate("End date")
					if !ok {
						return nil
					}

					for name, total := range a.analytics.GroupByCategory(start, end) {
						fmt.Fprintf(c.out, "%s: %s\n", name, total)
					}
					return nil
				}),
			},
			{
				Label: "Detailed category analysis",
				Run: a.timed("detailed category analysis", func() error {
					for name, summary := range a.analytics.DetailedCategoryAnalysis() {
						fmt.Fprintf(c.out,
							"%s (%s): income=%s expense=%s count=%d avg=%s\n",
							name, summary.CategoryType, summary.TotalIncome,
							summary.TotalExpense, summary.OperationCount,
							summary.AverageAmount)
					}
					return nil
				}),
			},
			{
				Label: "Overall statistics",
				Run: a.timed("overall statistics", func() error {
					stats := a.analytics.OverallStatistics()
					fmt.Fprintf(c.out,
						"accounts=%d balance=%s operations=%d income=%s expense=%s net=%s\n",
						stats.TotalAccounts, stats.TotalBalance,
						stats.TotalOperations, stats.TotalIncome,
						stats.TotalExpense, stats.NetProfit)
					for _, top := range stats.TopCategories {
						fmt.Fprintf(c.out, "  %s: total=%s count=%d\n",
							top.Name, top.Total, top.OperationCount)
					}
					return nil
				}),
			},
			{
				Label: "Recalculate balances",
				Run: a.timed("recalculate balances", func() error {
					a.analytics.RecalculateBalances()
					return nil
				}),
			},
		},
	}
}

func (a *App) buildDataMenu(c *Console) *MenuItem {
	return &MenuItem{
		Label: "Data",
		Items: []*MenuItem{
			{
				Label: "Export to JSON",
				Run: a.timed("export data", func() error {
					path, ok := c.promptString("Target path (empty for default)")
					if !ok {
						return nil
					}
					if path == "" {
						path = a.cfg.App.DataFile
					}

					return a.handler.Export(path)
				}),
			},
			{
				// Import replaces the dataset entirely and balances are
				// recalculated immediately afterwards.
				Label: "Import from JSON",
				Run: a.timed("import data", func() error {
					path, ok := c.promptString("Source path (empty for default)")
					if !ok {
						return nil
					}
					if path == "" {
						path = a.cfg.App.DataFile
					}

					if err := a.handler.Import(path); err != nil {
						return err
					}

					a.analytics.RecalculateBalances()
					return nil
				}),
			},
		},
	}
}

// timed wraps a menu action in the measure-and-log command decorator.
func (a *App) timed(name string, run func() error) func() error {
	cmd := commands.Timed(commands.NewFuncCommand(name, run))
	return cmd.Execute
}
