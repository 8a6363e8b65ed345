package config

import (
	"os"
	"strconv"
	"time"

	ld "github.com/launchdarkly/go-server-sdk/v7"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"

	"github.com/plazacomercial/locales-service/internal/utils"
)

// Config holds all application configuration, including secrets, flags, etc.
type Config struct {
	OrganizationName   string
	AppName            string
	Env                string
	AppPort            string
	AppUrl             string
	DBUrl              string
	SecretKey          []byte
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	LayoutPath         string
	SeedStaffPassword  string

	// Static flags fetched once from LaunchDarkly (or the env fallbacks)
	LDFlag_CORSHighSecurity   bool
	LDFlag_SeedDBWithTestData bool
	LDFlag_ShortTokenTTL      bool
}

const (
	OrganizationName            = utils.OrganizationName
	DefaultAccessTokenExpiry    = 30 * time.Minute
	DefaultRefreshTokenExpiry   = 7 * 24 * time.Hour
	TestShortTokenExpiry        = 2 * time.Second
	TestShortRefreshTokenExpiry = 8 * time.Second
	LDConnectionTimeout         = 5 * time.Second
)

// Global compile-time overrides.
var (
	AppName             = "locales-service"
	LDServerContextKey  = "locales-service"
	LDServerContextKind = "service"
)

// LoadConfig reads the environment, resolves feature flags and returns a *Config.
func LoadConfig() *Config {
	if AppName == "" {
		utils.Logger.Fatal("AppName was overridden with an empty value at build time")
	}
	utils.Logger.Info("Loading config for app: ", AppName)

	//----------------------------------------------------------------------
	// Load environment variables.
	//----------------------------------------------------------------------
	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}
	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		utils.Logger.Fatal("SECRET_KEY env var is missing")
	}

	utils.Logger.Debugf("App can be accessed at: %s", appUrl)

	accessTokenExpiry := durationFromEnv("ACCESS_TOKEN_EXPIRE_MINUTES", time.Minute, DefaultAccessTokenExpiry)
	refreshTokenExpiry := durationFromEnv("REFRESH_TOKEN_EXPIRE_HOURS", time.Hour, DefaultRefreshTokenExpiry)

	//----------------------------------------------------------------------
	// Feature flags.
	//----------------------------------------------------------------------
	flags := loadFlags(os.Getenv("LD_SDK_KEY"))

	if flags.shortTokenTTL {
		accessTokenExpiry = TestShortTokenExpiry
		refreshTokenExpiry = TestShortRefreshTokenExpiry
	}

	return &Config{
		OrganizationName:          OrganizationName,
		AppName:                   AppName,
		Env:                       env,
		AppPort:                   appPort,
		AppUrl:                    appUrl,
		DBUrl:                     dbUrl,
		SecretKey:                 []byte(secretKey),
		AccessTokenExpiry:         accessTokenExpiry,
		RefreshTokenExpiry:        refreshTokenExpiry,
		LayoutPath:                os.Getenv("LAYOUT_PATH"),
		SeedStaffPassword:         os.Getenv("SEED_STAFF_PASSWORD"),
		LDFlag_CORSHighSecurity:   flags.corsHighSecurity,
		LDFlag_SeedDBWithTestData: flags.seedDBWithTestData,
		LDFlag_ShortTokenTTL:      flags.shortTokenTTL,
	}
}

type staticFlags struct {
	corsHighSecurity   bool
	seedDBWithTestData bool
	shortTokenTTL      bool
}

// loadFlags fetches the static flags from LaunchDarkly. Without an SDK key
// the same flags are read from the environment instead.
func loadFlags(ldSDKKey string) staticFlags {
	if ldSDKKey == "" {
		utils.Logger.Info("LD_SDK_KEY not set; reading feature flags from env")
		return staticFlags{
			corsHighSecurity:   boolFromEnv("CORS_HIGH_SECURITY"),
			seedDBWithTestData: boolFromEnv("SEED_DB_WITH_TEST_DATA"),
			shortTokenTTL:      boolFromEnv("SHORT_TOKEN_TTL"),
		}
	}

	ldClient, err := ld.MakeClient(ldSDKKey, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	if !ldClient.Initialized() {
		ldClient.Close()
		utils.Logger.Fatal("LaunchDarkly client failed to initialize")
	}
	defer ldClient.Close()

	context := ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)

	corsHighSecurity, err := ldClient.BoolVariation("cors_high_security", context, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving cors_high_security flag")
	}
	utils.Logger.Debugf("cors_high_security flag: %t", corsHighSecurity)

	seedDBWithTestData, err := ldClient.BoolVariation("seed_db_with_test_data", context, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving seed_db_with_test_data flag")
	}
	utils.Logger.Debugf("seed_db_with_test_data flag: %t", seedDBWithTestData)

	shortTokenTTL, err := ldClient.BoolVariation("short_token_ttl", context, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving short_token_ttl flag")
	}
	utils.Logger.Debugf("short_token_ttl flag: %t", shortTokenTTL)

	return staticFlags{
		corsHighSecurity:   corsHighSecurity,
		seedDBWithTestData: seedDBWithTestData,
		shortTokenTTL:      shortTokenTTL,
	}
}

func boolFromEnv(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to false", key, v)
		return false
	}
	return b
}

func durationFromEnv(key string, unit, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %v", key, v, def)
		return def
	}
	return time.Duration(n) * unit
}
