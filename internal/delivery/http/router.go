package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Balogunolalere/campainProj/internal/delivery/http/controllers"
	"github.com/Balogunolalere/campainProj/internal/metrics"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	subscriberController *controllers.SubscriberController,
	campaignController *controllers.CampaignController,
	emailListController *controllers.EmailListController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Subscribers
	mux.HandleFunc("POST /subscriber/{$}", subscriberController.Create)
	mux.HandleFunc("GET /subscriber/{$}", subscriberController.List)
	mux.HandleFunc("POST /subscriber/upload_emails", subscriberController.UploadEmails)
	mux.HandleFunc("GET /subscriber/{email}", subscriberController.Get)
	mux.HandleFunc("PATCH /subscriber/{email}", subscriberController.Update)
	mux.HandleFunc("DELETE /subscriber/{email}", subscriberController.Delete)

	// Campaigns
	mux.HandleFunc("POST /campaign/{$}", campaignController.Create)
	mux.HandleFunc("GET /campaign/{$}", campaignController.List)
	mux.HandleFunc("GET /campaign/{key}", campaignController.Get)
	mux.HandleFunc("PATCH /campaign/{key}", campaignController.Update)
	mux.HandleFunc("DELETE /campaign/{key}", campaignController.Delete)
	mux.HandleFunc("POST /send_email", campaignController.Send)

	// Email lists
	mux.HandleFunc("POST /emaillist/{$}", emailListController.Create)
	mux.HandleFunc("GET /emaillist/{$}", emailListController.List)
	mux.HandleFunc("GET /emaillist/{name}", emailListController.Get)
	mux.HandleFunc("PATCH /emaillist/{name}", emailListController.Update)
	mux.HandleFunc("DELETE /emaillist/{name}", emailListController.Delete)

	// Operational endpoints
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
