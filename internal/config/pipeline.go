package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/Veraticus/salesprep/internal/common"
	"github.com/Veraticus/salesprep/internal/features"
	"github.com/Veraticus/salesprep/internal/model"
)

// DefaultDatabasePath is used when database.path is not configured.
const DefaultDatabasePath = "$HOME/.local/share/salesprep/salesprep.db"

// Pipeline holds the settings shared by the processing commands.
type Pipeline struct {
	DatabasePath string `mapstructure:"database.path" validate:"required"`
	Start        string `mapstructure:"features.start" validate:"omitempty,day"`
	End          string `mapstructure:"features.end" validate:"omitempty,day"`
	Lags         int    `mapstructure:"features.lags" validate:"gte=0,lte=104"`
	Horizon      int    `mapstructure:"features.horizon" validate:"gte=0,lte=52"`
}

// SetDefaults registers pipeline defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("features.lags", features.DefaultLags)
	v.SetDefault("features.horizon", features.DefaultHorizon)
}

// LoadPipeline reads pipeline settings from v and validates them.
// It follows this precedence:
// 1. Flags bound to v
// 2. Config file or SALESPREP_ environment variables
// 3. Default values
func LoadPipeline(v *viper.Viper) (*Pipeline, error) {
	p := &Pipeline{
		DatabasePath: ExpandPath(v.GetString("database.path")),
		Start:        v.GetString("features.start"),
		End:          v.GetString("features.end"),
		Lags:         v.GetInt("features.lags"),
		Horizon:      v.GetInt("features.horizon"),
	}
	if p.DatabasePath == "" {
		p.DatabasePath = ExpandPath(DefaultDatabasePath)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// FeatureOptions converts the settings into weekly feature options.
func (p *Pipeline) FeatureOptions() features.Options {
	return features.Options{
		Start:   p.Start,
		End:     p.End,
		Lags:    p.Lags,
		Horizon: p.Horizon,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("day", isDay)

	// Report viper keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})
	return v
}

// Validate checks every field and joins the failures into one error.
func (p *Pipeline) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	missing := false
	for _, fe := range fieldErrs {
		missing = missing || fe.Tag() == "required"
		msgs = append(msgs, formatFieldError(fe))
	}
	if missing {
		return fmt.Errorf("%w: %w: %s", common.ErrInvalidConfig, common.ErrMissingConfig, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "day":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date, got %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func isDay(fl validator.FieldLevel) bool {
	_, err := time.Parse(model.DateLayout, fl.Field().String())
	return err == nil
}
