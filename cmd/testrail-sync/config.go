package main

import (
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/testrail"
)

const configFileName = ".testrail-sync"

// config is the internal representation of the configuration. Flags take precedence over environment variables, which
// take precedence over the config file.
type config struct {
	APIKey      string `mapstructure:"api-key"`
	CasePattern string `mapstructure:"case-pattern"`
	Debug       bool
	Host        string
	Insecure    bool
	User        string
	Statuses    struct {
		Passed  int
		Blocked int
		Failed  int
	}
}

func init() {
	viper.SetEnvPrefix("testrail")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// Keys need to be known to viper for `Unmarshal` to pick up their environment variables.
	viper.SetDefault("api-key", "")
	viper.SetDefault("case-pattern", "")
	viper.SetDefault("debug", false)
	viper.SetDefault("host", "")
	viper.SetDefault("insecure", false)
	viper.SetDefault("user", "")
	viper.SetDefault("statuses.passed", int(testrail.StatusPassed))
	viper.SetDefault("statuses.blocked", int(testrail.StatusBlocked))
	viper.SetDefault("statuses.failed", int(testrail.StatusFailed))
}

// loadConfig reads the config file (if there is one) and returns the merged configuration.
func loadConfig(configFilePath string) (config, error) {
	var cfg config

	if configFilePath != "" {
		viper.SetConfigFile(configFilePath)
	} else {
		viper.SetConfigName(configFileName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFilePath != "" || !errors.As(err, &notFound) {
			return cfg, errors.NewConfigurationError("unable to read config file: %s", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, errors.NewConfigurationError("unable to parse configuration: %s", err)
	}

	return cfg, nil
}

func (cfg config) statuses() testrail.Statuses {
	return testrail.Statuses{
		Passed:  testrail.StatusID(cfg.Statuses.Passed),
		Blocked: testrail.StatusID(cfg.Statuses.Blocked),
		Failed:  testrail.StatusID(cfg.Statuses.Failed),
	}
}

func (cfg config) casePattern() (*regexp.Regexp, error) {
	if cfg.CasePattern == "" {
		return nil, nil
	}

	re, err := regexp.Compile(cfg.CasePattern)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid case pattern %q: %s", cfg.CasePattern, err)
	}

	return re, nil
}
