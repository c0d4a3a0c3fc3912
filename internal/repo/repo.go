package repo

import (
	"github.com/kaffeekasse/coffeebilling/internal/pg"
	balancerepo "github.com/kaffeekasse/coffeebilling/internal/repo/balance-repo"
	coffeelogrepo "github.com/kaffeekasse/coffeebilling/internal/repo/coffeelog-repo"
	invoicerepo "github.com/kaffeekasse/coffeebilling/internal/repo/invoice-repo"
	paymentrepo "github.com/kaffeekasse/coffeebilling/internal/repo/payment-repo"
	userrepo "github.com/kaffeekasse/coffeebilling/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo      *userrepo.Repository
	CoffeeLogRepo *coffeelogrepo.Repository
	PaymentRepo   *paymentrepo.Repository
	BalanceRepo   *balancerepo.Repository
	InvoiceRepo   *invoicerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		CoffeeLogRepo: coffeelogrepo.New(conn, txManager),
		PaymentRepo:   paymentrepo.New(conn, txManager),
		BalanceRepo:   balancerepo.New(conn),
		InvoiceRepo:   invoicerepo.New(conn, txManager),
	}
}
