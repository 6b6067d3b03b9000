package repositories

import (
	"github.com/google/uuid"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
)

// InMemoryBankAccountRepository keeps accounts in a slice for the lifetime
// of the process. Iteration order is insertion order, which downstream
// reports rely on. No locking: the design assumes a single logical caller.
type InMemoryBankAccountRepository struct {
	accounts []*models.BankAccount
}

func NewInMemoryBankAccountRepository() *InMemoryBankAccountRepository {
	return &InMemoryBankAccountRepository{}
}

func (r *InMemoryBankAccountRepository) Add(account *models.BankAccount) error {
	if account == nil {
		return ErrNilEntity
	}

	r.accounts = append(r.accounts, account)
	return nil
}

func (r *InMemoryBankAccountRepository) Delete(id uuid.UUID) {
	kept := r.accounts[:0]
	for _, account := range r.accounts {
		if account.ID != id {
			kept = append(kept, account)
		}
	}
	r.accounts = kept
}

func (r *InMemoryBankAccountRepository) GetByID(id uuid.UUID) (*models.BankAccount, bool) {
	for _, account := range r.accounts {
		if account.ID == id {
			return account, true
		}
	}
	return nil, false
}

func (r *InMemoryBankAccountRepository) GetAll() []*models.BankAccount {
	snapshot := make([]*models.BankAccount, len(r.accounts))
	copy(snapshot, r.accounts)
	return snapshot
}

func (r *InMemoryBankAccountRepository) Update(account *models.BankAccount) {
	if account == nil {
		return
	}

	for i, stored := range r.accounts {
		if stored.ID == account.ID {
			r.accounts[i] = account
			return
		}
	}
}
