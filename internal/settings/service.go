package settings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/breakloop/community-backend/pkg/errors"
	"github.com/breakloop/community-backend/pkg/kv"
	"github.com/breakloop/community-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// Settings holds the user-tunable wellbeing preferences. Durations are
// minutes.
type Settings struct {
	InterventionDuration int      `json:"interventionDuration" validate:"required,min=1,max=60"`
	GracePeriod          int      `json:"gracePeriod" validate:"min=0,max=60"`
	ShareAlternatives    bool     `json:"shareAlternatives"`
	ShareActivity        bool     `json:"shareActivity"`
	ShareMood            bool     `json:"shareMood"`
	Theme                string   `json:"theme" validate:"required,oneof=default dark light"`
	MonitoredApps        []string `json:"monitoredApps" validate:"required,min=1,dive,required"`
}

// Defaults returns the out-of-the-box settings.
func Defaults() Settings {
	return Settings{
		InterventionDuration: 5,
		GracePeriod:          5,
		ShareAlternatives:    true,
		ShareActivity:        true,
		ShareMood:            true,
		Theme:                "default",
		MonitoredApps:        []string{"instagram", "tiktok"},
	}
}

// Service reads and writes the persisted settings.
type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, updated Settings) (Settings, error)
	Reset(ctx context.Context) (Settings, error)
}

type service struct {
	mu        sync.Mutex
	logg      *logger.Logger
	durable   kv.Store
	key       string
	ephemeral bool
	validate  *validator.Validate
}

// Params carries the service dependencies. Ephemeral mode keeps settings
// in memory only.
type Params struct {
	Logger    *logger.Logger
	Durable   kv.Store
	Key       string
	Ephemeral bool
}

func NewService(params Params) (Service, error) {
	if params.Logger == nil {
		return nil, errors.New(errors.CodeDependency, "settings service requires a logger")
	}
	if params.Durable == nil && !params.Ephemeral {
		return nil, errors.New(errors.CodeDependency, "settings service requires a durable backend")
	}
	if params.Key == "" {
		return nil, errors.New(errors.CodeDependency, "settings service requires a storage key")
	}
	durable := params.Durable
	if params.Ephemeral {
		// Ephemeral mode never touches the real backend.
		durable = kv.NewMemory()
	}
	return &service{
		logg:      params.Logger,
		durable:   durable,
		key:       params.Key,
		ephemeral: params.Ephemeral,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx), nil
}

func (s *service) Update(ctx context.Context, updated Settings) (Settings, error) {
	if err := s.validate.Struct(updated); err != nil {
		return Settings{}, errors.Wrap(errors.CodeValidation, err, "invalid settings").
			WithDetails(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(ctx, updated); err != nil {
		return Settings{}, err
	}
	s.logg.Info(ctx, "settings updated")
	return updated, nil
}

func (s *service) Reset(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defaults := Defaults()
	if err := s.write(ctx, defaults); err != nil {
		return Settings{}, err
	}
	s.logg.Info(ctx, "settings reset to defaults")
	return defaults, nil
}

// load returns the stored settings, falling back to defaults when the key
// is absent or the payload is unreadable.
func (s *service) load(ctx context.Context) Settings {
	raw, err := s.durable.Get(ctx, s.key)
	if err != nil {
		if !kv.IsNotFound(err) {
			s.logg.Error(ctx, "failed to read settings, serving defaults", err)
		}
		return Defaults()
	}
	var stored Settings
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logg.Warn(ctx, "stored settings are unreadable, serving defaults")
		return Defaults()
	}
	return stored
}

func (s *service) write(ctx context.Context, settings Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "failed to serialize settings")
	}
	if err := s.durable.Set(ctx, s.key, string(payload)); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "failed to write settings")
	}
	return nil
}
