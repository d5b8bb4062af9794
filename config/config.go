// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package config holds the settings used to drive the bigv tool: which
// binary to run and the credentials to run it with.
//
// Settings are read from a YAML file and may be overridden by environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/schema"
	"github.com/juju/utils/v4"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/juju/environschema.v1"
	"gopkg.in/yaml.v3"

	"github.com/juju/bigv/tool"
)

var logger = loggo.GetLogger("bigv.config")

const (
	ToolPathKey = "tool-path"
	UsernameKey = "username"
	PasswordKey = "password"
	AccountKey  = "account"
	YubikeyKey  = "yubikey"
	TimeoutKey  = "timeout"
)

var configSchema = environschema.Fields{
	ToolPathKey: {
		Description: "Path to the bigv client.",
		Type:        environschema.Tstring,
		EnvVar:      "BIGV_TOOL",
	},
	UsernameKey: {
		Description: "The user to log in as.",
		Type:        environschema.Tstring,
		Mandatory:   true,
		EnvVar:      "BIGV_USER",
	},
	PasswordKey: {
		Description: "The user's password.",
		Type:        environschema.Tstring,
		Mandatory:   true,
		Secret:      true,
		EnvVar:      "BIGV_PASSWORD",
	},
	AccountKey: {
		Description: "The account to operate on.",
		Type:        environschema.Tstring,
		Mandatory:   true,
		EnvVar:      "BIGV_ACCOUNT",
	},
	YubikeyKey: {
		Description: "A one-time code from the user's hardware token.",
		Type:        environschema.Tstring,
		Secret:      true,
		EnvVar:      "BIGV_YUBIKEY",
	},
	TimeoutKey: {
		Description: "How long a single invocation of the tool may take, such as 5m. Unlimited if unset.",
		Type:        environschema.Tstring,
		EnvVar:      "BIGV_TIMEOUT",
	},
}

var configDefaults = schema.Defaults{
	ToolPathKey: tool.DefaultPath,
	YubikeyKey:  schema.Omit,
	TimeoutKey:  schema.Omit,
}

var configChecker = func() schema.Checker {
	fields, _, err := configSchema.ValidationSchema()
	if err != nil {
		panic(err)
	}
	return schema.FieldMap(fields, configDefaults)
}()

// Schema returns the description of the configuration attributes.
func Schema() environschema.Fields {
	return configSchema
}

// Config holds validated settings.
type Config struct {
	ToolPath string        `mapstructure:"tool-path"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Account  string        `mapstructure:"account"`
	Yubikey  string        `mapstructure:"yubikey"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Credentials returns the credentials to pass to the tool.
func (c *Config) Credentials() tool.Credentials {
	return tool.Credentials{
		Username: c.Username,
		Password: c.Password,
		Account:  c.Account,
		Yubikey:  c.Yubikey,
	}
}

// New validates attrs and returns the resulting Config.
func New(attrs map[string]interface{}) (*Config, error) {
	coerced, err := configChecker.Coerce(attrs, nil)
	if err != nil {
		return nil, errors.NewNotValid(err, "validating config")
	}
	validated := coerced.(map[string]interface{})
	for _, key := range []string{UsernameKey, AccountKey, ToolPathKey} {
		if validated[key] == "" {
			return nil, errors.NotValidf("empty %s", key)
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &cfg,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err := decoder.Decode(validated); err != nil {
		return nil, errors.NewNotValid(err, "decoding config")
	}
	if cfg.Timeout < 0 {
		return nil, errors.NotValidf("negative %s %v", TimeoutKey, cfg.Timeout)
	}
	return &cfg, nil
}

// DefaultPath returns the file Read uses when none is given.
func DefaultPath() string {
	return filepath.Join(utils.Home(), ".bigv", "client.yaml")
}

// Read loads the attributes in the YAML file at path, applies any
// environment variable overrides and validates the result. A missing file
// is not an error, so the settings may come from the environment alone.
func Read(path string) (*Config, error) {
	attrs := make(map[string]interface{})
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Debugf("no config file at %q", path)
	case err != nil:
		return nil, errors.Annotatef(err, "reading %q", path)
	default:
		if err := yaml.Unmarshal(data, &attrs); err != nil {
			return nil, errors.Annotatef(err, "parsing %q", path)
		}
	}
	applyEnviron(attrs)
	cfg, err := New(attrs)
	if err != nil {
		return nil, errors.Annotatef(err, "loading %q", path)
	}
	return cfg, nil
}

// applyEnviron overrides attrs with the environment variables named in
// the schema. Unset or empty variables are ignored.
func applyEnviron(attrs map[string]interface{}) {
	for key, attr := range configSchema {
		if attr.EnvVar == "" {
			continue
		}
		if value := os.Getenv(attr.EnvVar); value != "" {
			logger.Tracef("%s set from $%s", key, attr.EnvVar)
			attrs[key] = value
		}
	}
}

// String renders the config with secrets hidden.
func (c *Config) String() string {
	yubikey := ""
	if c.Yubikey != "" {
		yubikey = " yubikey=<redacted>"
	}
	return fmt.Sprintf("%s@%s via %s%s", c.Username, c.Account, c.ToolPath, yubikey)
}
