package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds CLI configuration pulled from the environment. ISSUE_TITLE and
// ISSUE_BODY are the names the issue-ingestion workflow exports.
type App struct {
	IssueTitle string `envconfig:"ISSUE_TITLE"`
	IssueBody  string `envconfig:"ISSUE_BODY"`
	DataDir    string `envconfig:"MOMENTUM_DATA_DIR" default:"."`
	Timezone   string `envconfig:"MOMENTUM_TZ" default:"Asia/Seoul"`
}

// Load reads configuration from the environment, honoring an optional .env
// file in the working directory.
func Load() (*App, error) {
	_ = godotenv.Load()

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
