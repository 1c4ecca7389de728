package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ralt/binsbom/internal/models"
	"github.com/ralt/binsbom/internal/sbom"
	"github.com/ralt/binsbom/internal/scanner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "BINSBOM"
	configName     = ".binsbom"
	defaultRootDir = "."
	defaultOutput  = "sbom.spdx.json"
)

// loadConfig layers flags, BINSBOM_* environment variables and an optional
// YAML config file into v, in that order of precedence.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("root", defaultRootDir)
	v.SetDefault("output", defaultOutput)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return &models.SBOMError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("failed to bind flags: %w", err),
		}
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return &models.SBOMError{
			Type: models.ErrInvalidConfig,
			Path: cfgFile,
			Err:  fmt.Errorf("failed to read config: %w", err),
		}
	}

	logrus.Debugf("Using config file: %s", v.ConfigFileUsed())
	return nil
}

// generateConfigFrom resolves the generation settings; positional
// arguments override the root and output keys.
func generateConfigFrom(v *viper.Viper, args []string) *models.GenerateConfig {
	config := &models.GenerateConfig{
		RootDir:       v.GetString("root"),
		OutputPath:    v.GetString("output"),
		Format:        v.GetString("format"),
		Compression:   v.GetString("compress"),
		Classifier:    v.GetString("classifier"),
		FileCommand:   v.GetString("file-command"),
		Checksums:     stringList(v, "checksum"),
		DocumentName:  v.GetString("name"),
		NamespaceBase: v.GetString("namespace-base"),
		Supplier:      v.GetString("supplier"),
		VersionInfo:   v.GetString("version-info"),
		Creators:      stringList(v, "creator"),
	}

	if len(args) > 0 {
		config.RootDir = args[0]
	}
	if len(args) > 1 {
		config.OutputPath = args[1]
	}

	return config
}

// stringList reads a list setting. Environment variables reach viper as a
// single string, which is split on commas like the equivalent flag.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func validateConfig(config *models.GenerateConfig) error {
	if config.RootDir == "" {
		config.RootDir = defaultRootDir
	}

	if config.OutputPath == "" {
		return &models.SBOMError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("output path is required"),
		}
	}

	if config.Classifier == "" {
		config.Classifier = classifierMagic
	}
	if config.Classifier != classifierMagic && config.Classifier != classifierFile {
		return &models.SBOMError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("unknown classifier %q (want %s or %s)", config.Classifier, classifierMagic, classifierFile),
		}
	}
	if config.FileCommand == "" {
		config.FileCommand = scanner.DefaultFileCommand
	}

	for _, c := range config.Creators {
		if err := sbom.ValidateCreator(c); err != nil {
			return &models.SBOMError{Type: models.ErrInvalidConfig, Err: err}
		}
	}
	if err := sbom.ValidateSupplier(config.Supplier); err != nil {
		return &models.SBOMError{Type: models.ErrInvalidConfig, Err: err}
	}

	// Default the document name to the root directory's name
	if config.DocumentName == "" {
		abs, err := filepath.Abs(config.RootDir)
		if err != nil {
			return &models.SBOMError{
				Type: models.ErrInvalidConfig,
				Path: config.RootDir,
				Err:  err,
			}
		}
		config.DocumentName = filepath.Base(abs)
	}

	return nil
}
