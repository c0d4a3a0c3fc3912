package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/kaffeekasse/coffeebilling/internal/pg"
	balancerepo "github.com/kaffeekasse/coffeebilling/internal/repo/balance-repo"
	coffeelogrepo "github.com/kaffeekasse/coffeebilling/internal/repo/coffeelog-repo"
	invoicerepo "github.com/kaffeekasse/coffeebilling/internal/repo/invoice-repo"
	paymentrepo "github.com/kaffeekasse/coffeebilling/internal/repo/payment-repo"
	userrepo "github.com/kaffeekasse/coffeebilling/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CoffeeLogRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.InvoiceRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &coffeelogrepo.Repository{}, repo.CoffeeLogRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &invoicerepo.Repository{}, repo.InvoiceRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
