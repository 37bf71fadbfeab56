package config_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashumeet/markettrader/pkg/config"
)

func validFileContent() string {
	return strings.Join([]string{
		"# market trader credentials",
		"ALPACA_API_KEY=" + testAlpacaKey,
		"ALPACA_SECRET_KEY=" + testAlpacaSecret,
		"OPENAI_API_KEY=" + testOpenAIKey,
		"ALPACA_API_URL=" + paperAPIURL,
		"ALPACA_DATA_API_URL=" + dataAPIURL,
		"ENVIRONMENT=paper",
		"",
	}, "\n")
}

func TestLoad_HappyPath(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.dev"), validFileContent())

	cfg, warnings, err := config.Load("", dir)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, testAlpacaKey, cfg.AlpacaAPIKey)
	assert.Equal(t, config.Paper, cfg.Environment)
	assert.Equal(t, filepath.Join(dir, ".env.dev"), cfg.Source.Path)
	assert.Equal(t, config.OriginDevelopment, cfg.Source.Origin)
}

func TestLoad_DevelopmentWinsOverProduction(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.dev"), validFileContent())
	writeFile(t, filepath.Join(dir, ".env"), strings.ReplaceAll(validFileContent(), "paper", "live"))

	cfg, _, err := config.Load("", dir)

	require.NoError(t, err)
	assert.Equal(t, config.OriginDevelopment, cfg.Source.Origin)
	assert.Equal(t, config.Paper, cfg.Environment)
}

func TestLoad_EnvFileVariableOverride(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.dev"), "ALPACA_API_KEY=decoy\n")
	custom := filepath.Join(dir, "ci.env")
	writeFile(t, custom, validFileContent())
	t.Setenv(config.EnvFileVar, custom)

	cfg, _, err := config.Load("", dir)

	require.NoError(t, err)
	assert.Equal(t, config.OriginOverride, cfg.Source.Origin)
	assert.Equal(t, custom, cfg.Source.Path)
}

func TestLoad_ExplicitOverrideBeatsEnvFileVariable(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()
	flagged := filepath.Join(dir, "flag.env")
	writeFile(t, flagged, validFileContent())
	other := filepath.Join(dir, "var.env")
	writeFile(t, other, validFileContent())
	t.Setenv(config.EnvFileVar, other)

	cfg, _, err := config.Load(flagged, dir)

	require.NoError(t, err)
	assert.Equal(t, flagged, cfg.Source.Path)
}

func TestLoad_MissingOverrideFailsFast(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.dev"), validFileContent())

	_, _, err := config.Load(filepath.Join(dir, "missing.env"), dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrSourceNotFound)
}

func TestLoad_ProcessEnvWinsOverFile(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.dev"), validFileContent())
	t.Setenv("ALPACA_API_KEY", "PKOVERRIDEFROMPROCESS12345")

	cfg, _, err := config.Load("", dir)

	require.NoError(t, err)
	assert.Equal(t, "PKOVERRIDEFROMPROCESS12345", cfg.AlpacaAPIKey)
	assert.Equal(t, testAlpacaSecret, cfg.AlpacaSecretKey, "untouched keys keep the file value")
}

func TestLoad_ValidationFailureAbortsWithFullReport(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()
	content := strings.Join([]string{
		"ALPACA_API_KEY=" + testAlpacaKey,
		"ALPACA_API_URL=" + paperAPIURL,
	}, "\n")
	writeFile(t, filepath.Join(dir, ".env"), content)

	_, _, err := config.Load("", dir)

	require.Error(t, err)

	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	for _, missing := range []string{"ALPACA_SECRET_KEY", "OPENAI_API_KEY", "ALPACA_DATA_API_URL"} {
		assert.Contains(t, err.Error(), missing)
	}
}

func TestLoad_CarriesParseAndValidationWarnings(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()
	content := validFileContent() +
		"malformed line without separator\n" +
		"TARGET_INDEX_FUNDS= , ,\n"
	writeFile(t, filepath.Join(dir, ".env.dev"), content)

	cfg, warnings, err := config.Load("", dir)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	kinds := warningKinds(warnings)
	assert.Contains(t, kinds, config.WarnParse)
	assert.Contains(t, kinds, config.WarnEmptyFunds)
}

func TestLoad_NoConfigurationAnywhere(t *testing.T) {
	unsetRecognized(t)
	dir := t.TempDir()

	_, _, err := config.Load("", dir)

	require.Error(t, err)

	var notFound *config.SourceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Len(t, notFound.Checked, 4)
}

func TestFundList_String(t *testing.T) {
	assert.Equal(t, "SPY,QQQ,DIA", config.FundList{"SPY", "QQQ", "DIA"}.String())
	assert.Equal(t, "", config.FundList(nil).String())
}

func TestEnvironment_RoundTrip(t *testing.T) {
	for _, v := range []string{"paper", "live"} {
		var e config.Environment
		require.NoError(t, e.UnmarshalText([]byte(v)))
		assert.Equal(t, v, string(e))
	}

	var e config.Environment
	err := e.UnmarshalText([]byte("sandbox"))
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("invalid environment %q: must be one of %q, %q", "sandbox", "paper", "live"), err.Error())
}
