package main

import (
	"fmt"
	"net/http"

	"github.com/shopfloor-hr/overtime-backend-go/internal/config"
	appHTTP "github.com/shopfloor-hr/overtime-backend-go/internal/handler/http"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/database"
	"github.com/shopfloor-hr/overtime-backend-go/internal/repository/postgresql"
	approvalService "github.com/shopfloor-hr/overtime-backend-go/internal/service/approval"
	"github.com/shopfloor-hr/overtime-backend-go/internal/service/overtime"
	punchService "github.com/shopfloor-hr/overtime-backend-go/internal/service/punch"
	reportService "github.com/shopfloor-hr/overtime-backend-go/internal/service/report"
	sessionService "github.com/shopfloor-hr/overtime-backend-go/internal/service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	sessionRepo := postgresql.NewSessionRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	reconstructor := punchService.NewReconstructor()
	calculator := overtime.NewCalculator()

	sessionSvc := sessionService.NewSessionService(sessionRepo, employeeRepo, reconstructor, calculator)
	approvalSvc := approvalService.NewApprovalService(approvalRepo)
	reportSvc := reportService.NewReportService(sessionRepo, approvalRepo)

	sessionHandler := appHTTP.NewSessionHandler(sessionSvc)
	punchHandler := appHTTP.NewPunchHandler(sessionSvc)
	approvalHandler := appHTTP.NewApprovalHandler(approvalSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg.App.AllowedOrigins,
		sessionHandler,
		punchHandler,
		approvalHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
