// Package config provides configuration loading and management for testplan.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/metalagman/testplan/internal/cody"
	"github.com/metalagman/testplan/internal/jira"
	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Jira        JiraConfig        `json:"jira"        mapstructure:"jira"`
	Sourcegraph SourcegraphConfig `json:"sourcegraph" mapstructure:"sourcegraph"`
	Cody        CodyConfig        `json:"cody"        mapstructure:"cody"`
	Output      OutputConfig      `json:"output"      mapstructure:"output"`
}

// JiraConfig holds issue tracker credentials.
type JiraConfig struct {
	BaseURL  string `json:"base_url"  mapstructure:"base_url"`
	User     string `json:"user"      mapstructure:"user"`
	APIToken string `json:"api_token" mapstructure:"api_token"`
}

// SourcegraphConfig holds the Cody backend credentials.
type SourcegraphConfig struct {
	Endpoint    string `json:"endpoint"     mapstructure:"endpoint"`
	AccessToken string `json:"access_token" mapstructure:"access_token"`
}

// CodyConfig describes the chat executable.
type CodyConfig struct {
	Command   string   `json:"command"              mapstructure:"command"`
	Model     string   `json:"model"                mapstructure:"model"`
	ExtraArgs []string `json:"extra_args,omitempty" mapstructure:"extra_args"`
}

// OutputConfig controls where plans are written.
type OutputConfig struct {
	Dir     string `json:"dir"     mapstructure:"dir"`
	Persist bool   `json:"persist" mapstructure:"persist"`
}

var envBindings = map[string]string{
	"jira.base_url":            "JIRA_BASE_URL",
	"jira.user":                "JIRA_USER",
	"jira.api_token":           "JIRA_API_TOKEN",
	"sourcegraph.endpoint":     "SRC_ENDPOINT",
	"sourcegraph.access_token": "SRC_ACCESS_TOKEN",
	"cody.command":             "TESTPLAN_CODY_COMMAND",
	"cody.model":               "TESTPLAN_CODY_MODEL",
	"cody.extra_args":          "TESTPLAN_CODY_EXTRA_ARGS",
	"output.dir":               "TESTPLAN_OUTPUT_DIR",
	"output.persist":           "TESTPLAN_PERSIST",
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("jira.base_url", "")
	v.SetDefault("jira.user", "")
	v.SetDefault("jira.api_token", "")
	v.SetDefault("sourcegraph.endpoint", cody.DefaultEndpoint)
	v.SetDefault("sourcegraph.access_token", "")
	v.SetDefault("cody.command", cody.DefaultCommand)
	v.SetDefault("cody.model", cody.DefaultModel)
	v.SetDefault("cody.extra_args", []string{})
	v.SetDefault("output.dir", "")
	v.SetDefault("output.persist", true)
}

// BindEnv binds the well-known environment variables to config keys.
func BindEnv(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped; existing variables are kept.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}

// Load reads configuration from defaults, an optional config file and the
// environment, validates it and decodes it into Config.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	if err := BindEnv(v); err != nil {
		return Config{}, err
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config: %w", err)
		}
	}

	if err := ValidateSettings(v.AllSettings()); err != nil {
		return Config{}, err
	}

	var cfg Config
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Cody.ExtraArgs = trimArgs(cfg.Cody.ExtraArgs)
	return cfg, nil
}

// JiraClientConfig maps the config onto the Jira client.
func (c Config) JiraClientConfig() jira.Config {
	return jira.Config{
		BaseURL:  c.Jira.BaseURL,
		User:     c.Jira.User,
		APIToken: c.Jira.APIToken,
	}
}

// CodyClientConfig maps the config onto the Cody client.
func (c Config) CodyClientConfig() cody.Config {
	return cody.Config{
		Command:     c.Cody.Command,
		AccessToken: c.Sourcegraph.AccessToken,
		Endpoint:    c.Sourcegraph.Endpoint,
		Model:       c.Cody.Model,
		ExtraArgs:   c.Cody.ExtraArgs,
	}
}

func trimArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
