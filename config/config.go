package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Clinic  ClinicConfig
	Booking BookingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// AdminConfig holds the single staff login. PasswordHash is a bcrypt hash.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// ClinicConfig describes the clinic-local scheduling window. All booking
// times are naive local timestamps in Timezone; the core never converts
// between zones.
type ClinicConfig struct {
	Timezone        string
	DayStart        string // "15:04"
	DayEnd          string // "15:04"
	SlotStepMinutes int
}

// BookingConfig holds booking policy switches.
// AutoConfirm: new bookings are created Confirmed instead of Pending.
// StrictAlignment: reject start times that are not on the slot grid.
type BookingConfig struct {
	AutoConfirm     bool
	StrictAlignment bool
	CacheTTL        time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("CLINIC_TIMEZONE", "Australia/Melbourne")
	viper.SetDefault("CLINIC_DAY_START", "10:00")
	viper.SetDefault("CLINIC_DAY_END", "17:00")
	viper.SetDefault("CLINIC_SLOT_STEP_MINUTES", 30)
	viper.SetDefault("BOOKING_AUTO_CONFIRM", false)
	viper.SetDefault("BOOKING_STRICT_ALIGNMENT", true)
	viper.SetDefault("BOOKING_CACHE_TTL", "30s")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env file is fine; environment variables still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("BOOKING_CACHE_TTL"))
	if err != nil {
		cacheTTL = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Admin: AdminConfig{
			Email:        viper.GetString("ADMIN_EMAIL"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		},
		Clinic: ClinicConfig{
			Timezone:        viper.GetString("CLINIC_TIMEZONE"),
			DayStart:        viper.GetString("CLINIC_DAY_START"),
			DayEnd:          viper.GetString("CLINIC_DAY_END"),
			SlotStepMinutes: viper.GetInt("CLINIC_SLOT_STEP_MINUTES"),
		},
		Booking: BookingConfig{
			AutoConfirm:     viper.GetBool("BOOKING_AUTO_CONFIRM"),
			StrictAlignment: viper.GetBool("BOOKING_STRICT_ALIGNMENT"),
			CacheTTL:        cacheTTL,
		},
	}

	return config, nil
}
