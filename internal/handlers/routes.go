package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, camps *CampHandler, registrations *RegistrationHandler, users *UserHandler, payments *PaymentHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Medical Camp API", "1.0.0")
	api := humachi.New(r, config)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Catalog
	huma.Get(api, "/popular-camp", camps.HandlePopularCamps)
	huma.Get(api, "/previous-camp", camps.HandlePreviousCamps)
	huma.Get(api, "/all-camp", camps.HandleAllCamps)
	huma.Get(api, "/get-total-camp-number", camps.HandleTotalCampNumber)
	huma.Get(api, "/view-camp-details/{id}", camps.HandleViewCampDetails)
	huma.Post(api, "/add-camp", camps.HandleAddCamp)
	huma.Put(api, "/update-camp/{id}", camps.HandleUpdateCamp)
	huma.Delete(api, "/delete-my-camp/{id}", camps.HandleDeleteCamp)
	huma.Get(api, "/my-added-camp/{email}", camps.HandleMyAddedCamps)
	huma.Get(api, "/my-added-camp-count/{email}", camps.HandleMyAddedCampCount)

	// Roster
	huma.Post(api, "/join-camp", registrations.HandleJoinCamp)
	huma.Get(api, "/manage-camp-request/{email}", registrations.HandleManageCampRequest)
	huma.Get(api, "/manage-camp-request-count/{email}", registrations.HandleManageCampRequestCount)
	huma.Patch(api, "/update-confirmation-status/{id}", registrations.HandleUpdateConfirmationStatus)
	huma.Get(api, "/my-registered-camp/{email}", registrations.HandleMyRegisteredCamps)
	huma.Get(api, "/count-my-added-camp/{email}", registrations.HandleCountMyAddedCamp)

	// Directory
	huma.Put(api, "/user", users.HandleUpsertUser)
	huma.Get(api, "/users", users.HandleListUsers)
	huma.Get(api, "/user-count", users.HandleUserCount)
	huma.Patch(api, "/update-user/{email}", users.HandleUpdateUserRole)
	huma.Delete(api, "/delete-user/{id}", users.HandleDeleteUser)

	// Payments
	huma.Post(api, "/create-payment-intent", payments.HandleCreatePaymentIntent)
}
