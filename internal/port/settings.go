package port

import "context"

// Well-known setting keys.
const (
	SettingContentScriptURL = "content.script_url"
)

// SettingsRepository persists portal settings as key/value pairs.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
