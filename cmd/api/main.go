package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/config"
	appHTTP "github.com/workpulse/workpulse-backend-go/internal/handler/http"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/workpulse-backend-go/internal/service/attendance"
	authService "github.com/workpulse/workpulse-backend-go/internal/service/auth"
	leaveService "github.com/workpulse/workpulse-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(db, userRepo, jwtSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		attendanceHandler,
		leaveHandler,
		cfg.App.AllowedOrigins,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
