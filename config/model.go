package config

import (
	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/Atul9/coveralls-api/pkg/report"
)

// Model definition for configuration

// CoverallsConfig is the application's configuration
type CoverallsConfig struct {
	Config        string
	LogFile       string
	LogConfig     lumber.LoggingConfig
	Env           string
	Verbose       bool
	EnvFile       string   `json:"envFile"`
	RepoToken     string   `json:"repoToken" validate:"required_without=ServiceName,excluded_with=ServiceName"`
	ServiceName   string   `json:"serviceName" validate:"required_without=RepoToken"`
	ServiceJobID  string   `json:"serviceJobID" validate:"required_with=ServiceName"`
	Endpoint      string   `json:"endpoint" validate:"required,url"`
	Profile       string   `json:"profile" validate:"required"`
	Format        string   `json:"format" validate:"oneof=go lcov"`
	SrcRoot       string   `json:"srcRoot" validate:"required"`
	IncludeSource bool     `json:"includeSource"`
	Exclude       []string `json:"exclude"`
	SkipMissing   bool     `json:"skipMissing"`
	DryRun        bool     `json:"dryRun"`
	Parallelism   int      `json:"parallelism" validate:"gte=1"`
	Port          string   `json:"port"`
}

// Identity returns the coveralls identity described by the config.
func (c *CoverallsConfig) Identity() (report.Identity, error) {
	switch {
	case c.RepoToken != "" && c.ServiceName == "" && c.ServiceJobID == "":
		return report.NewRepoToken(c.RepoToken), nil
	case c.RepoToken == "" && c.ServiceName != "" && c.ServiceJobID != "":
		return report.NewServiceToken(c.ServiceName, c.ServiceJobID), nil
	default:
		return nil, errs.ErrInvalidIdentity
	}
}
