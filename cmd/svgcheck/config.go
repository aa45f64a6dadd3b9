package main

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/svgcheck"
	"github.com/yacobolo/svgcheck/internal/logging"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".svgcheck.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags the user set are loaded so
	// that flag defaults do not shadow the config file.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return errors.Wrap(err, "loading command flags")
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return errors.Wrapf(err, "loading config file %s", configPath)
		}
	}

	// 2. Environment variables (SVGCHECK_* prefix), keyed like the flags
	if err := k.Load(env.Provider("SVGCHECK_", ".", func(s string) string {
		// SVGCHECK_ICONS_DIR -> icons-dir
		// SVGCHECK_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SVGCHECK_")),
			"_", "-",
		)
	}), nil); err != nil {
		return errors.Wrap(err, "loading environment variables")
	}

	return nil
}

// runConfig holds the settings shared by check and validate.
type runConfig struct {
	Verbose      bool   `koanf:"verbose"`
	Quiet        bool   `koanf:"quiet"`
	OutputFormat string `koanf:"output-format" validate:"omitempty,oneof=text issues json markdown md"`
	LogFormat    string `koanf:"log-format" validate:"oneof=text json"`
	EnvVar       string `koanf:"env-var" validate:"required"`
	Output       svgcheck.OutputConfig
}

// checkConfig holds the settings of the CI check.
type checkConfig struct {
	Run         runConfig
	DeviconJSON string `koanf:"devicon-json" validate:"required,file"`
	IcomoonJSON string `koanf:"icomoon-json" validate:"required,file"`
	IconsDir    string `koanf:"icons-dir" validate:"required,dir"`
}

// validateConfig holds the settings of an explicit validation run.
type validateConfig struct {
	Run   runConfig
	Paths []string `koanf:"paths" validate:"required,min=1,dive,required"`
}

// buildRunConfig constructs the shared settings from koanf state.
func buildRunConfig() runConfig {
	return runConfig{
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
		Quiet:        getBoolWithFallback("quiet", "quiet", false),
		OutputFormat: getStringWithFallback("output-format", "output-format", ""),
		LogFormat:    getStringWithFallback("log-format", "log-format", "text"),
		EnvVar:       getStringWithFallback("env-var", "check.env-var", svgcheck.DefaultErrorEnvVar),
		Output: svgcheck.OutputConfig{
			PrintLinterName: getBoolWithFallback("print-linter-name", "print-linter-name", true),
			UseColors:       getBoolWithFallback("color", "color", false),
		},
	}
}

// buildCheckConfig constructs the check settings from koanf state.
func buildCheckConfig() checkConfig {
	return checkConfig{
		Run:         buildRunConfig(),
		DeviconJSON: getStringWithFallback("devicon-json", "check.devicon-json", "devicon.json"),
		IcomoonJSON: getStringWithFallback("icomoon-json", "check.icomoon-json", "icomoon.json"),
		IconsDir:    getStringWithFallback("icons-dir", "check.icons-dir", "icons"),
	}
}

// buildValidateConfig constructs the validate settings from koanf state.
// Positional arguments win over configured paths.
func buildValidateConfig(args []string) validateConfig {
	var paths []string
	if len(args) > 0 {
		paths = args
	} else if p := k.Strings("validate.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = []string{"icons/**/*.svg"}
	}

	return validateConfig{
		Run:   buildRunConfig(),
		Paths: paths,
	}
}

// newLogger builds the stderr logger for a run.
func (c runConfig) newLogger() *slog.Logger {
	return logging.ForCLI(c.Verbose, c.Quiet, logging.Format(c.LogFormat))
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their config key
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("koanf"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// validateStruct checks a built config and turns validator errors into one
// readable error.
func validateStruct(cfg any) error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validating configuration")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.Newf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "file":
		return fmt.Sprintf("%s: file %q does not exist", fe.Field(), fe.Value())
	case "dir":
		return fmt.Sprintf("%s: directory %q does not exist", fe.Field(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
