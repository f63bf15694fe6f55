package config

import "fmt"

func validate(c *Config) error {
	if err := c.Analysis.validate(); err != nil {
		return err
	}
	if c.Render.TimeoutSeconds < 0 {
		return fmt.Errorf("render.timeout_seconds must be >= 0")
	}
	return nil
}

func (a *AnalysisConfig) validate() error {
	if a.CorrThreshold < 0 || a.CorrThreshold > 1 {
		return fmt.Errorf("analysis.corr_threshold must be in [0,1], got %v", a.CorrThreshold)
	}
	if a.CorrTopN < 0 {
		return fmt.Errorf("analysis.corr_top_n must be >= 0")
	}
	if a.OutlierMultiplier < 0 {
		return fmt.Errorf("analysis.outlier_multiplier must be >= 0")
	}
	if a.HistogramBins < 1 {
		return fmt.Errorf("analysis.histogram_bins must be >= 1")
	}
	return nil
}
