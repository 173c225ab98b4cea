package handler

import (
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/config"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// validator 에는 한국어 번역이 없어서 영어 번역을 등록한다
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(h.config.Server.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// 인증 관련
	h.Mux.Route("/auth", func(r chi.Router) {
		// 로그인은 무차별 대입을 막기 위해 IP 단위로 제한한다
		r.With(httprate.LimitByIP(h.config.RateLimit.LoginPerMinute, time.Minute)).Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 아래 API 는 로그인한 뒤에만 호출할 수 있다
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Post("/", h.CreateStaff)
			r.Get("/", h.GetAllStaffInfo) // 같은 지점 직원끼리는 서로의 기본 정보를 볼 수 있다
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffInfo)
				r.Get("/", h.GetStaffInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleManager})).Patch("/", h.UpdateStaff)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleManager})).Delete("/", h.DeleteStaff)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Patch("/password", h.UpdateStaffPassword)

				r.Route("/schedule", func(r chi.Router) {
					r.Use(h.myInfo)
					r.Use(h.canEditSchedule)
					r.Get("/", h.GetStaffWeekSchedule)
					r.Put("/", h.SaveStaffWeekSchedule)
				})
			})
		})

		r.Route("/schedules/weekly", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.RequiredRole([]domain.Role{domain.RoleManager}))
			r.Post("/", h.SaveWeeklySchedules)
			r.Get("/defaults", h.GetWeeklyDefaults)
		})
	})
}
