package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Fixed values of the OPhim import. Only the Mongo URI comes from the environment.
const (
	DefaultMongoURI = "mongodb://localhost:27017"
	DatabaseName    = "moviedb"
	OPhimBaseURL    = "https://ophim1.com/v1/api"
	CDNImageURL     = "https://img.ophim.live"

	// rate limiting towards OPhim
	DelayBetweenPages    = 1000 * time.Millisecond
	DelayBetweenRequests = 500 * time.Millisecond
)

type Config struct {
	Env   string `validate:"required"`
	Debug bool

	MongoURI string `validate:"required,mongouri"`
	MongoDB  string `validate:"required"`

	OPhimBaseURL string `validate:"required,url"`
	CDNImageURL  string `validate:"required,url"`

	PageDelay    time.Duration `validate:"min=0"`
	RequestDelay time.Duration `validate:"min=0"`
	StepDelay    time.Duration `validate:"min=0"`
	HTTPTimeout  time.Duration `validate:"min=0"`

	// catalog API
	RedisAddr string
	RedisPass string
	HTTPPort  string        `validate:"required,numeric"`
	CacheTTL  time.Duration `validate:"min=0"`
}

func Load() *Config {
	_ = godotenv.Load()

	debug, _ := strconv.ParseBool(os.Getenv("DEBUG"))

	return &Config{
		Env:          getEnv("APP_ENV", "development"),
		Debug:        debug,
		MongoURI:     getEnv("MONGODB_URI", DefaultMongoURI),
		MongoDB:      DatabaseName,
		OPhimBaseURL: OPhimBaseURL,
		CDNImageURL:  CDNImageURL,
		PageDelay:    DelayBetweenPages,
		RequestDelay: DelayBetweenRequests,
		StepDelay:    DelayBetweenRequests,
		HTTPTimeout:  30 * time.Second,
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		CacheTTL:     60 * time.Second,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("mongouri", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.HasPrefix(s, "mongodb://") || strings.HasPrefix(s, "mongodb+srv://")
	})
	return v
}

// Validate reports the first invalid field of the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: invalid %s (%s)", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// RedactedMongoURI hides the credentials of MongoURI for logging.
func (c *Config) RedactedMongoURI() string {
	scheme, rest, ok := strings.Cut(c.MongoURI, "://")
	if !ok {
		return c.MongoURI
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = "***@" + rest[at+1:]
	}
	return scheme + "://" + rest
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s not set, using default\n", key)
		return def
	}
	return v
}
