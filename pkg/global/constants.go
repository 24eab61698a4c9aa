package global

import "time"

// BinaryVersion is the version of the coveralls binary, overridden at build time.
var BinaryVersion = "v0.1.0"

// All constants related to the coveralls client
const (
	CoverallsEndpoint    = "https://coveralls.io/api/v1/jobs"
	DefaultHTTPTimeout   = 45 * time.Second
	GracefulTimeout      = 5 * time.Second
	DefaultParallelism   = 8
	DefaultStubPort      = "9876"
	JobsRoute            = "/api/v1/jobs"
	HealthRoute          = "/health"
	ContentTypeJSON      = "application/json"
	DigestLength         = 32
	GoProfileFormat      = "go"
	LCOVProfileFormat    = "lcov"
	DefaultProfileFormat = GoProfileFormat
	EnvPrefix            = "COVERALLS"
	RepoTokenEnv         = "COVERALLS_REPO_TOKEN"
	ServiceNameEnv       = "COVERALLS_SERVICE_NAME"
	ServiceJobIDEnv      = "COVERALLS_SERVICE_JOB_ID"
	DevEnv               = "dev"
	ProdEnv              = "prod"
)

// ProfileFormats lists the accepted values of the --format flag.
var ProfileFormats = []string{GoProfileFormat, LCOVProfileFormat}
