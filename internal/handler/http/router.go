package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/config"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/middleware"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Center     CenterHandler
	Master     MasterHandler
	Member     MemberHandler
	Payment    PaymentHandler
	Session    SessionHandler
	Commission CommissionHandler
	Bonus      BonusHandler
	Settlement SettlementHandler
	Notice     NoticeHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "vitalfit-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	// Uploaded files (profile images, notice attachments)
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
		})

		// The event stream authenticates with its own token since
		// EventSource cannot send an Authorization header.
		r.Get("/notices/stream", h.Notice.Subscribe)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/sse-token", h.Auth.SSEToken)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.User.GetMe)
				r.Put("/me/password", h.User.ChangePassword)
				r.Get("/", h.User.ListUsers)
				r.Get("/{id}", h.User.GetUser)
				r.Post("/{id}/profile-image", h.User.UploadProfileImage)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/", h.User.CreateUser)
					r.Put("/{id}", h.User.UpdateUser)
					r.Delete("/{id}", h.User.DeleteUser)
				})
			})

			r.Route("/centers", func(r chi.Router) {
				r.Get("/", h.Center.ListCenters)
				r.Get("/{id}", h.Center.GetCenter)
				r.Get("/{centerID}/trainers", h.User.ListTrainersByCenter)
				r.Get("/{centerID}/images", h.Center.ListCenterImages)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Center.CreateCenter)
					r.Put("/{id}", h.Center.UpdateCenter)
					r.Delete("/{id}", h.Center.DeleteCenter)
					r.Post("/{centerID}/images", h.Center.UploadCenterImage)
					r.Put("/{centerID}/images/{imageID}/main", h.Center.SetMainCenterImage)
					r.Delete("/{centerID}/images/{imageID}", h.Center.DeleteCenterImage)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Route("/positions", func(r chi.Router) {
					r.Get("/", h.Master.ListPositions)
					r.Get("/{id}", h.Master.GetPosition)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", h.Master.CreatePosition)
						r.Put("/{id}", h.Master.UpdatePosition)
						r.Delete("/{id}", h.Master.DeletePosition)
					})
				})

				r.Route("/teams", func(r chi.Router) {
					r.Get("/", h.Master.ListTeams)
					r.Get("/{id}", h.Master.GetTeam)

					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOrAdmin)
						r.Post("/", h.Master.CreateTeam)
						r.Put("/{id}", h.Master.UpdateTeam)
						r.Delete("/{id}", h.Master.DeleteTeam)
					})
				})
			})

			r.Route("/members", func(r chi.Router) {
				r.Get("/", h.Member.ListMembers)
				r.Get("/{id}", h.Member.GetMember)
				r.Post("/", h.Member.CreateMember)
				r.Put("/{id}", h.Member.UpdateMember)
				r.Delete("/{id}", h.Member.DeleteMember)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.Payment.CreatePayment)
				r.Get("/trainer/{trainerID}/{year}/{month}", h.Payment.ListByTrainerMonth)
				r.Get("/carryover/{trainerID}/{year}/{month}", h.Payment.GetCarryover)
				r.Get("/salary/{trainerID}", h.Payment.GetTrainerSalary)
				r.Delete("/{id}", h.Payment.DeletePayment)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", h.Session.CreateSession)
				r.Get("/", h.Session.ListSessions)
				r.Get("/{id}", h.Session.GetSession)
				r.Get("/count/{trainerID}/{year}/{month}", h.Session.CountByTrainerMonth)
				r.Delete("/{id}", h.Session.DeleteSession)
			})

			r.Route("/commission/tiers", func(r chi.Router) {
				r.Get("/", h.Commission.ListTiers)
				r.Get("/resolve", h.Commission.ResolveByRevenue)
				r.Get("/{id}", h.Commission.GetTier)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Commission.CreateTier)
					r.Put("/{id}", h.Commission.UpdateTier)
					r.Delete("/{id}", h.Commission.DeleteTier)
				})
			})

			r.Route("/bonus/rules", func(r chi.Router) {
				r.Get("/", h.Bonus.ListRules)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Bonus.CreateRule)
					r.Put("/{id}", h.Bonus.UpdateRule)
					r.Delete("/{id}", h.Bonus.DeleteRule)
				})
			})

			r.Route("/settlements", func(r chi.Router) {
				r.Get("/{year}/{month}", h.Settlement.ListSettlements)
				r.Get("/detail/{id}", h.Settlement.GetSettlement)
				r.Get("/user/{userID}/{year}/{month}", h.Settlement.GetByUserPeriod)
				r.Get("/bonus/{trainerID}/{year}/{month}", h.Settlement.CalculateBonus)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/generate", h.Settlement.Generate)
					r.Patch("/{id}/status", h.Settlement.UpdateStatus)
					r.Patch("/{id}/notes", h.Settlement.UpdateNotes)
					r.Delete("/{id}", h.Settlement.DeleteSettlement)
				})
			})

			r.Route("/notices", func(r chi.Router) {
				r.Get("/", h.Notice.ListNotices)
				r.Get("/unread-count", h.Notice.CountUnread)
				r.Get("/{id}", h.Notice.GetNotice)
				r.Post("/{id}/read", h.Notice.MarkRead)
				r.Get("/{id}/comments", h.Notice.ListComments)
				r.Post("/{id}/comments", h.Notice.CreateComment)
				r.Delete("/comments/{commentID}", h.Notice.DeleteComment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/", h.Notice.CreateNotice)
					r.Delete("/{id}", h.Notice.DeleteNotice)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/stats", h.Dashboard.GetStats)
			})
		})
	})

	return r
}
