package config

import "github.com/spf13/viper"

// FromViper overlays keys already present in v onto defaults, using the
// mapstructure tags on Config. It is a convenience for callers that
// already run viper for their own settings (as temcen-pirex does); this
// package still never reads a file itself — the caller owns v's sources
// (flags, env, files) entirely.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Default()
	if v == nil {
		return cfg, nil
	}
	// Config's mapstructure tags are dotted ("carousel.capacity") while
	// v.Unmarshal hands mapstructure a nested map, so the settings are
	// re-keyed into a viper whose delimiter never splits them.
	flat := viper.NewWithOptions(viper.KeyDelimiter("::"))
	for _, key := range v.AllKeys() {
		flat.Set(key, v.Get(key))
	}
	if err := flat.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
