package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	categoryHandler "github.com/rmoreira/contas/internal/http/category"
	exportHandler "github.com/rmoreira/contas/internal/http/export"
	importHandler "github.com/rmoreira/contas/internal/http/importcsv"
	reportHandler "github.com/rmoreira/contas/internal/http/report"
	txHandler "github.com/rmoreira/contas/internal/http/transaction"
)

func New(
	transactionsV1 *txHandler.Handler,
	reportsV1 *reportHandler.Handler,
	exportV1 *exportHandler.Handler,
	importV1 *importHandler.Handler,
	categoriesV1 *categoryHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Local browser front-ends are served from file:// or another port.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			transactionsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/export", exportV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/categories", categoriesV1.Routes)
	})

	return router
}
