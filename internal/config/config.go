package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Leave    LeaveConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// LeaveConfig holds the default leave balances granted by the yearly
// refresh job. Sick leave is unlimited and has no default.
type LeaveConfig struct {
	AnnualDefault    int
	EmergencyDefault int
	RefreshCronSpec  string
}

// ReportConfig holds report tuning. TaskExemptEmployeeIDs lists employees
// whose task block is reported as non-applicable (e.g. the owner, who is
// never assigned shift tasks).
type ReportConfig struct {
	TaskExemptEmployeeIDs []string
}

func Load() (*Config, error) {
	// Missing .env is fine, env vars may come from the runtime.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffly-hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	annualDefault, err := strconv.Atoi(getEnv("LEAVE_ANNUAL_DEFAULT", "21"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_ANNUAL_DEFAULT: %w", err)
	}
	emergencyDefault, err := strconv.Atoi(getEnv("LEAVE_EMERGENCY_DEFAULT", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_EMERGENCY_DEFAULT: %w", err)
	}

	config.Leave = LeaveConfig{
		AnnualDefault:    annualDefault,
		EmergencyDefault: emergencyDefault,
		// Midnight on January 1st.
		RefreshCronSpec: getEnv("LEAVE_REFRESH_CRON", "0 0 1 1 *"),
	}

	config.Report = ReportConfig{
		TaskExemptEmployeeIDs: getEnvSlice("REPORT_TASK_EXEMPT_EMPLOYEE_IDS"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Leave.AnnualDefault < 0 || c.Leave.EmergencyDefault < 0 {
		return fmt.Errorf("leave defaults must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
