package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "calc-golang/http-server/admin/get"
	saveadmin "calc-golang/http-server/admin/save"
	upadmin "calc-golang/http-server/admin/update"
	generate_report "calc-golang/http-server/generate-report/generate-excel"
	getmaterials "calc-golang/http-server/materials/get"
	savematerials "calc-golang/http-server/materials/save"
	"calc-golang/http-server/metrics/calculate"
	"calc-golang/http-server/metrics/preview"
	getsession "calc-golang/http-server/session/get"
	savesession "calc-golang/http-server/session/save"
	upsession "calc-golang/http-server/session/update"
	"calc-golang/internal/config"
	"calc-golang/internal/middleware/auth"
	"calc-golang/internal/service/calc"
	generate_excel "calc-golang/internal/service/generate-excel"
	"calc-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, service *calc.CalcService, genService *generate_excel.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// metrics over a posted document, no persistence involved
	router.Post("/api/metrics/calculate", calculate.CalculateMetrics(log, service))
	router.Post("/api/metrics/product-preview", preview.PreviewProductCosts(log, service))
	router.Get("/api/metrics/session/{id}", calculate.CalculateSessionMetrics(log, service))

	// saved calculator sessions
	router.Get("/api/sessions", getsession.GetAllSessions(log, storage))
	router.Get("/api/sessions/{id}", getsession.GetSession(log, storage))
	router.Post("/api/sessions", savesession.SaveSession(log, storage))
	router.Put("/api/sessions/{id}", upsession.UpdateSession(log, storage))
	router.Delete("/api/sessions/{id}", upsession.DeleteSession(log, storage))

	// material library shared across sessions
	router.Get("/api/materials", getmaterials.GetMaterials(log, storage))

	router.Get("/api/report/excel", generate_report.GenerateReportExcel(log, genService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/defaults", getadmin.GetDefaultsAdmin(log, storage))
	adminRouter.Put("/defaults/update", upadmin.UpdateDefaultsAdmin(log, storage))
	adminRouter.Get("/templates", getadmin.GetAllTemplatesAdmin(log, storage))
	adminRouter.Get("/template", getadmin.GetTemplateByCodeAdmin(log, storage))
	adminRouter.Put("/template/update/{code}", upadmin.UpdateTemplateAdmin(log, storage))
	adminRouter.Post("/template/new", saveadmin.SaveTemplateAdmin(log, storage))
	adminRouter.Post("/materials/save", savematerials.SaveMaterial(log, storage))
	adminRouter.Delete("/materials/{id}", savematerials.DeleteMaterial(log, storage))

	router.Mount("/api/admin", adminRouter)

	// static SPA build, skipped when the bundle is not deployed next to the binary
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); err != nil {
		log.Info("frontend bundle not found, serving API only", slog.String("path", frontendDir))
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).Handle("/admin/*",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
		}),
	)

	// SPA fallback, unknown paths resolve to index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
