package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims path fields and checks the settings the engine
// cannot run without. Warnings are advisory only.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Files.ProspectsCSV = strings.TrimSpace(out.Files.ProspectsCSV)
	out.Files.MarketDataCSV = strings.TrimSpace(out.Files.MarketDataCSV)
	out.Files.OutputDir = strings.TrimSpace(out.Files.OutputDir)
	out.LLM.Model = strings.TrimSpace(out.LLM.Model)

	if out.Files.ProspectsCSV == "" {
		res.addErr("files.prospects_csv must not be empty")
	}
	if out.Files.MarketDataCSV == "" {
		res.addErr("files.market_data_csv must not be empty")
	}
	if out.Files.OutputDir == "" {
		res.addErr("files.output_dir must not be empty")
	}

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be in 1..65535")
	}

	if out.LLM.Model == "" {
		out.LLM.Model = Default().LLM.Model
		res.addWarn("llm.model is empty; falling back to %s", out.LLM.Model)
	}
	if out.LLM.MaxTokens <= 0 {
		out.LLM.MaxTokens = Default().LLM.MaxTokens
	}
	if out.LLM.RequestsPerSecond <= 0 {
		out.LLM.RequestsPerSecond = Default().LLM.RequestsPerSecond
	}
	if out.LLM.RequestsPerSecond > 2 {
		res.addWarn("llm.requests_per_second is high (%.1f) and may hit API rate limits.", out.LLM.RequestsPerSecond)
	}

	if out.Notify.Enabled {
		if strings.TrimSpace(out.Notify.SMTPHost) == "" {
			res.addErr("notify.smtp_host is required when notify.enabled=true")
		}
		if out.Notify.SMTPPort == 0 {
			res.addErr("notify.smtp_port is required when notify.enabled=true")
		}
		if strings.TrimSpace(out.Notify.To) == "" {
			res.addErr("notify.to is required when notify.enabled=true")
		}
	}

	return out, res
}
