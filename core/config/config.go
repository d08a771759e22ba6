// Package config loads and validates the interpreter's configuration
// directory.
package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	HostKeyName       = "host_key"
	AppLogName        = "app.log"
)

// Configuration is the interpreter's settings, one directory per install.
type Configuration struct {
	configFs afero.Fs

	Prompt        string `json:"prompt" validate:"required"`
	HistorySize   int    `json:"history_size" validate:"gte=1"`
	MaxLineLength int    `json:"max_line_length" validate:"gte=1"`
	HistoryFile   string `json:"history_file"`

	SSH SSH `json:"ssh"`
}

// SSH configures the `serve` transport.
type SSH struct {
	Port      int      `json:"port" validate:"gte=0,lte=65535"`
	Banner    string   `json:"banner"`
	Passwords []string `json:"passwords"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Fs returns the filesystem rooted at the configuration directory.
func (c *Configuration) Fs() afero.Fs {
	return c.configFs
}

// OpenAppLog opens the application event log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.configFs.OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the application event log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.configFs.OpenFile(AppLogName, os.O_RDONLY, 0600)
}

// HostKeyPem returns the bytes of the SSH host key.
func (c *Configuration) HostKeyPem() ([]byte, error) {
	return afero.ReadFile(c.configFs, HostKeyName)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
