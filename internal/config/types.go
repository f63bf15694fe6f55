package config

// Config is the root configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Render   RenderConfig   `mapstructure:"render"`
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Profiles ProfilesConfig `mapstructure:"profiles"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	LogPath  string `mapstructure:"log_path"`
}

// AnalysisConfig carries the thresholds of the analytical engine.
type AnalysisConfig struct {
	CorrThreshold       float64 `mapstructure:"corr_threshold"`
	CorrTopN            int     `mapstructure:"corr_top_n"`
	HeatmapInlineLimit  int     `mapstructure:"heatmap_inline_limit"`
	ShowFullCorrelation bool    `mapstructure:"show_full_correlation"`
	OutlierMultiplier   float64 `mapstructure:"outlier_multiplier"`
	HistogramBins       int     `mapstructure:"histogram_bins"`
	CategoryTopN        int     `mapstructure:"category_top_n"`
	MissingAlertPct     float64 `mapstructure:"missing_alert_pct"`
	OutlierAlertPct     float64 `mapstructure:"outlier_alert_pct"`
	CategoricalLevels   int     `mapstructure:"categorical_levels"`
}

// RenderConfig controls chart rendering. Rendering is on by default;
// set disabled when no headless browser is available.
type RenderConfig struct {
	Disabled       bool `mapstructure:"disabled"`
	TimeoutSeconds int  `mapstructure:"timeout_seconds"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type ProfilesConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}
