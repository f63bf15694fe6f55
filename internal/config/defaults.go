package config

const (
	defaultAppEnv            = "dev"
	defaultAppLogLevel       = "info"
	defaultCorrThreshold     = 0.6
	defaultCorrTopN          = 10
	defaultHeatmapInline     = 10
	defaultOutlierMultiplier = 1.5
	defaultHistogramBins     = 30
	defaultCategoryTopN      = 10
	defaultMissingAlertPct   = 30
	defaultOutlierAlertPct   = 5
	defaultCategoricalLevels = 50
	defaultRenderTimeoutSec  = 20
	defaultServerAddr        = ":9980"
	defaultStorePath         = "data/cognia.db"
	defaultProfilesPath      = "configs/profiles.yaml"
)

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = defaultAppEnv
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = defaultAppLogLevel
	}
	if c.Analysis.CorrThreshold == 0 {
		c.Analysis.CorrThreshold = defaultCorrThreshold
	}
	if c.Analysis.CorrTopN == 0 {
		c.Analysis.CorrTopN = defaultCorrTopN
	}
	if c.Analysis.HeatmapInlineLimit == 0 {
		c.Analysis.HeatmapInlineLimit = defaultHeatmapInline
	}
	if c.Analysis.OutlierMultiplier == 0 {
		c.Analysis.OutlierMultiplier = defaultOutlierMultiplier
	}
	if c.Analysis.HistogramBins == 0 {
		c.Analysis.HistogramBins = defaultHistogramBins
	}
	if c.Analysis.CategoryTopN == 0 {
		c.Analysis.CategoryTopN = defaultCategoryTopN
	}
	if c.Analysis.MissingAlertPct == 0 {
		c.Analysis.MissingAlertPct = defaultMissingAlertPct
	}
	if c.Analysis.OutlierAlertPct == 0 {
		c.Analysis.OutlierAlertPct = defaultOutlierAlertPct
	}
	if c.Analysis.CategoricalLevels == 0 {
		c.Analysis.CategoricalLevels = defaultCategoricalLevels
	}
	if c.Render.TimeoutSeconds == 0 {
		c.Render.TimeoutSeconds = defaultRenderTimeoutSec
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaultServerAddr
	}
	if c.Store.Path == "" {
		c.Store.Path = defaultStorePath
	}
	if c.Profiles.Path == "" {
		c.Profiles.Path = defaultProfilesPath
	}
}
