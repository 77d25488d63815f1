// Package constants defines shared constants and configuration values
// used throughout the navkit coordination core.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// DefaultScheme is the URI scheme the app registers for deep links.
const DefaultScheme = "bankapp"

// SchemeEnvVar overrides the deep-link scheme (development builds use a
// separate scheme so staging links never open the production app).
const SchemeEnvVar = "BANKAPP_SCHEME"

// ConfigPathEnvVar overrides the path of the TOML config file.
const ConfigPathEnvVar = "BANKAPP_CONFIG"

// LogPathEnvVar overrides the log file path.
const LogPathEnvVar = "BANKAPP_LOG_PATH"

// LogLevelEnvVar overrides the log level (debug, info, warn, error).
const LogLevelEnvVar = "BANKAPP_LOG_LEVEL"

// LocaleEnvVar overrides the display locale used for screen titles.
const LocaleEnvVar = "BANKAPP_LOCALE"

// KeychainDirEnvVar overrides the directory of the on-device token store.
const KeychainDirEnvVar = "BANKAPP_KEYCHAIN_DIR"

// DefaultNavDepthLimit caps a single feature's navigation stack. Pushes
// beyond the cap are dropped and logged; see coordinator.FeatureCoordinator.
const DefaultNavDepthLimit = 32

// DefaultLocale is the fallback display locale.
const DefaultLocale = "en"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}
