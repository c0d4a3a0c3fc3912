package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/kaffeekasse/coffeebilling/docs"
	authhandlers "github.com/kaffeekasse/coffeebilling/internal/handlers/auth"
	billinghandlers "github.com/kaffeekasse/coffeebilling/internal/handlers/billing"
	coffeehandlers "github.com/kaffeekasse/coffeebilling/internal/handlers/coffee"
	paymenthandlers "github.com/kaffeekasse/coffeebilling/internal/handlers/payments"
	"github.com/kaffeekasse/coffeebilling/internal/service"
	"github.com/kaffeekasse/coffeebilling/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RequestReset(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type CoffeeHandler interface {
	LogCups(w http.ResponseWriter, r *http.Request)
	MonthLog(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	RecordRent(w http.ResponseWriter, r *http.Request)
	RentStatus(w http.ResponseWriter, r *http.Request)
}

type BillingHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Month(w http.ResponseWriter, r *http.Request)
	Book(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	SendInvoice(w http.ResponseWriter, r *http.Request)
	SendMonth(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CoffeeHandler   CoffeeHandler
	PaymentsHandler PaymentsHandler
	BillingHandler  BillingHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CoffeeHandler:   coffeehandlers.New(s.CoffeeService),
		PaymentsHandler: paymenthandlers.New(s.PaymentService),
		BillingHandler:  billinghandlers.New(s.BillingService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/activate", h.AuthHandler.Activate)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/reset-request", h.AuthHandler.RequestReset)
			r.Post("/reset", h.AuthHandler.Reset)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/coffee", func(r chi.Router) {
				r.Post("/", h.CoffeeHandler.LogCups)
				r.Get("/", h.CoffeeHandler.MonthLog)
			})
			r.Get("/balance", h.BillingHandler.GetBalance)
			r.Get("/payments", h.PaymentsHandler.List)
			r.Get("/billing/{month}", h.BillingHandler.Month)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware)

				r.Post("/payments", h.PaymentsHandler.Record)
				r.Route("/rent/{month}", func(r chi.Router) {
					r.Get("/", h.PaymentsHandler.RentStatus)
					r.Post("/", h.PaymentsHandler.RecordRent)
				})
				r.Post("/billing/{month}/book", h.BillingHandler.Book)
				r.Get("/billing/{month}/summary", h.BillingHandler.Summary)
				r.Post("/billing/{month}/send", h.BillingHandler.SendMonth)
				r.Post("/invoices/{id}/paid", h.BillingHandler.MarkPaid)
				r.Post("/invoices/{id}/send", h.BillingHandler.SendInvoice)
			})
		})
	})

	return r
}
