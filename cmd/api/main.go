package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/vitalfit/vitalfit-backend-go/internal/config"
	appHTTP "github.com/vitalfit/vitalfit-backend-go/internal/handler/http"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/cron"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/email"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/jwt"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/sse"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/storage"
	"github.com/vitalfit/vitalfit-backend-go/internal/repository/postgresql"
	authService "github.com/vitalfit/vitalfit-backend-go/internal/service/auth"
	bonusService "github.com/vitalfit/vitalfit-backend-go/internal/service/bonus"
	centerService "github.com/vitalfit/vitalfit-backend-go/internal/service/center"
	commissionService "github.com/vitalfit/vitalfit-backend-go/internal/service/commission"
	dashboardService "github.com/vitalfit/vitalfit-backend-go/internal/service/dashboard"
	"github.com/vitalfit/vitalfit-backend-go/internal/service/file"
	"github.com/vitalfit/vitalfit-backend-go/internal/service/master"
	memberService "github.com/vitalfit/vitalfit-backend-go/internal/service/member"
	noticeService "github.com/vitalfit/vitalfit-backend-go/internal/service/notice"
	paymentService "github.com/vitalfit/vitalfit-backend-go/internal/service/payment"
	sessionService "github.com/vitalfit/vitalfit-backend-go/internal/service/ptsession"
	settlementService "github.com/vitalfit/vitalfit-backend-go/internal/service/settlement"
	userService "github.com/vitalfit/vitalfit-backend-go/internal/service/user"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewRefreshTokenRepository(db)
	centerRepo := postgresql.NewCenterRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	tierRepo := postgresql.NewTierRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, tokenRepo, jwtService, emailService)
	userSvc := userService.NewUserService(userRepo, fileService)
	centerSvc := centerService.NewCenterService(centerRepo, fileService)
	masterSvc := master.NewMasterService(positionRepo, teamRepo)
	memberSvc := memberService.NewMemberService(memberRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, settlementRepo, userRepo, positionRepo)
	sessionSvc := sessionService.NewSessionService(db, sessionRepo, memberRepo)
	tierSvc := commissionService.NewTierService(tierRepo)
	ruleSvc := bonusService.NewRuleService(ruleRepo)
	settlementSvc := settlementService.NewSettlementService(
		settlementRepo,
		paymentRepo,
		sessionRepo,
		tierRepo,
		ruleRepo,
		userRepo,
		positionRepo,
	)
	noticeSvc := noticeService.NewNoticeService(noticeRepo, fileService, hub)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Center:     appHTTP.NewCenterHandler(centerSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Member:     appHTTP.NewMemberHandler(memberSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentSvc),
		Session:    appHTTP.NewSessionHandler(sessionSvc),
		Commission: appHTTP.NewCommissionHandler(tierSvc),
		Bonus:      appHTTP.NewBonusHandler(ruleSvc),
		Settlement: appHTTP.NewSettlementHandler(settlementSvc),
		Notice:     appHTTP.NewNoticeHandler(noticeSvc, jwtService, hub),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	cron.NewMemberJobs(memberSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
