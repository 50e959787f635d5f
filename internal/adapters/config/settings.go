package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
)

// Environment variables read by LoadSettings.
const (
	EnvSourcesDir   = "APTSRC_SOURCES_DIR"
	EnvOSRelease    = "APTSRC_OS_RELEASE"
	EnvCodename     = "APTSRC_CODENAME"
	EnvArchitecture = "APTSRC_ARCHITECTURE"
	EnvS3Bucket     = "APTSRC_S3_BUCKET"
	EnvS3Endpoint   = "APTSRC_S3_ENDPOINT"
	EnvS3Region     = "APTSRC_S3_REGION"
	EnvS3AccessKey  = "APTSRC_S3_ACCESS_KEY"
	EnvS3SecretKey  = "APTSRC_S3_SECRET_KEY"
	EnvS3Prefix     = "APTSRC_S3_PREFIX"
)

// Defaults for unset settings.
const (
	DefaultEnvFile    = ".env"
	DefaultSourcesDir = "/etc/apt/sources.list.d"
	DefaultOSRelease  = "/etc/os-release"
	DefaultS3Region   = "us-east-1"
)

// ErrSettingsReadFailed is returned when the env file exists but cannot be parsed.
var ErrSettingsReadFailed = zerr.New("failed to read settings file")

// S3Settings configures the bucket writer. It is enabled when Bucket is set.
type S3Settings struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether entries should be published to a bucket.
func (s S3Settings) Enabled() bool { return s.Bucket != "" }

// Settings holds process settings.
type Settings struct {
	SourcesDir string
	OSRelease  string
	// Codename and Architecture override the host facts when set.
	Codename     string
	Architecture string
	S3           S3Settings
}

// LoadSettings reads settings from the environment, falling back to values
// from envFile. A missing envFile is not an error.
func LoadSettings(envFile string) (Settings, error) {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Settings{}, zerr.With(fmt.Errorf("%w: %w", ErrSettingsReadFailed, err), "path", envFile)
		}
	}

	return SettingsFrom(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}), nil
}

// SettingsFrom builds Settings from a lookup function.
func SettingsFrom(lookup func(string) (string, bool)) Settings {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	return Settings{
		SourcesDir:   get(EnvSourcesDir, DefaultSourcesDir),
		OSRelease:    get(EnvOSRelease, DefaultOSRelease),
		Codename:     get(EnvCodename, ""),
		Architecture: get(EnvArchitecture, ""),
		S3: S3Settings{
			Bucket:    get(EnvS3Bucket, ""),
			Endpoint:  get(EnvS3Endpoint, ""),
			Region:    get(EnvS3Region, DefaultS3Region),
			AccessKey: get(EnvS3AccessKey, ""),
			SecretKey: get(EnvS3SecretKey, ""),
			Prefix:    get(EnvS3Prefix, ""),
		},
	}
}
