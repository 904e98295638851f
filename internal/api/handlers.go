package api

import (
	"errors"
	"html/template"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/terraincognita07/wellnest/internal/db"
	"github.com/terraincognita07/wellnest/internal/services"
)

const defaultAuthTokenTTL = 24 * time.Hour

type Options struct {
	Secret       string
	TemplatesDir string
	Location     *time.Location
	CookieSecure bool
	TokenTTL     time.Duration
	Logger       *zap.Logger
	Events       services.EventRecorder
}

type Handler struct {
	sessions     sessions
	location     *time.Location
	log          *zap.Logger
	templates    map[string]*template.Template
	loginLimiter *failureLimiter

	authService       *services.AuthService
	settingsService   *services.SettingsService
	profileService    *services.ProfileService
	vitalsService     *services.VitalsService
	riskService       *services.RiskService
	alertService      *services.AlertService
	medicationService *services.MedicationService
	exportService     *services.ExportService
}

func NewHandler(database *gorm.DB, options Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if strings.TrimSpace(options.Secret) == "" {
		return nil, errors.New("secret is required")
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.TokenTTL <= 0 {
		options.TokenTTL = defaultAuthTokenTTL
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	templates, err := parsePageTemplates(options.TemplatesDir, templateFuncMap(options.Location), pageTemplates)
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		sessions:     newSessions(options.Secret, options.TokenTTL, options.CookieSecure),
		location:     options.Location,
		log:          options.Logger,
		templates:    templates,
		loginLimiter: newFailureLimiter(loginFailureLimit, loginFailureWindow),
	}
	return handler.withDependencies(db.NewRepositories(database), options.Events), nil
}
