package service

import (
	"github.com/kaffeekasse/coffeebilling/internal/config"
	"github.com/kaffeekasse/coffeebilling/internal/mailer"
	"github.com/kaffeekasse/coffeebilling/internal/pg"
	"github.com/kaffeekasse/coffeebilling/internal/repo"
	"github.com/kaffeekasse/coffeebilling/internal/service/authservice"
	"github.com/kaffeekasse/coffeebilling/internal/service/billingservice"
	"github.com/kaffeekasse/coffeebilling/internal/service/coffeeservice"
	"github.com/kaffeekasse/coffeebilling/internal/service/paymentservice"
	"github.com/kaffeekasse/coffeebilling/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	CoffeeService  *coffeeservice.Service
	PaymentService *paymentservice.Service
	BillingService *billingservice.Service
}

func New(cfg *config.Config, r *repo.Repositories, sender mailer.Sender, txManager pg.TXManager) (*Services, error) {
	pricing, err := billingservice.NewPricing(cfg.MemberCupRate, cfg.GuestCupRate, cfg.MonthlyRent)
	if err != nil {
		return nil, err
	}
	return &Services{
		AuthService: authservice.New(
			r.UserRepo,
			&auth.HashService{},
			&auth.JWTService{},
			sender,
			cfg.BaseURL,
		),
		CoffeeService:  coffeeservice.New(r.CoffeeLogRepo),
		PaymentService: paymentservice.New(r.PaymentRepo, r.UserRepo),
		BillingService: billingservice.New(
			pricing,
			r.UserRepo,
			r.CoffeeLogRepo,
			r.PaymentRepo,
			r.BalanceRepo,
			r.InvoiceRepo,
			txManager,
			sender,
			cfg.PaymentDetails,
		),
	}, nil
}
