package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/clinicemr/clinic/docs" // swagger docs
	"github.com/clinicemr/clinic/internal/entity"
)

var (
	invoiceReaders = []entity.Role{
		entity.RoleSuperMasterAdmin, entity.RoleClinicAdmin, entity.RoleBilling, entity.RoleDoctor, entity.RoleNurse,
	}
	invoiceWriters = []entity.Role{
		entity.RoleSuperMasterAdmin, entity.RoleClinicAdmin, entity.RoleBilling,
	}
	referralUsers = []entity.Role{
		entity.RoleSuperMasterAdmin, entity.RoleClinicAdmin, entity.RoleDoctor, entity.RoleNurse,
	}
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/invoices", func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRoles(invoiceReaders...))
				r.Get("/", h.Invoices)
				r.Get("/overdue", h.OverdueInvoices)
				r.Get("/range", h.InvoicesByDateRange)
				r.Get("/summary", h.InvoiceSummary)
				r.Get("/{id}", h.Invoice)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRoles(invoiceWriters...))
				r.Post("/", h.CreateInvoice)
				r.Put("/{id}", h.UpdateInvoice)
				r.Patch("/{id}/status", h.UpdateInvoiceStatus)
				r.Post("/{id}/payments", h.AddPayment)
				r.Delete("/{id}", h.DeleteInvoice)
			})
		})

		r.Route("/referrals", func(r chi.Router) {
			r.Get("/shared/{code}", h.SharedReferral)

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth, mw.RequireRoles(referralUsers...))
				r.Post("/", h.CreateReferral)
				r.Get("/", h.Referrals)
				r.Get("/{id}", h.Referral)
				r.Delete("/{id}", h.DeleteReferral)
				r.Patch("/{id}/status", h.UpdateReferralStatus)
				r.Post("/{id}/schedule", h.ScheduleReferral)
				r.Post("/{id}/complete", h.CompleteReferral)
				r.Post("/{id}/cancel", h.CancelReferral)
				r.Post("/{id}/no-show", h.MarkReferralNoShow)
				r.Post("/{id}/medications", h.AddReferralMedication)
				r.Post("/{id}/recommendations", h.AddReferralRecommendation)
				r.Post("/{id}/link", h.GenerateShareableLink)
				r.Delete("/{id}/link", h.DeactivateShareableLink)
			})
		})
	})

	return mux
}
