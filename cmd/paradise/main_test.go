package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/paradise-calc/paradise/internal/cli"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points preferences and history at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestProjectDefaults(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "project")
	require.NoError(t, err)
	assert.Contains(t, out, "경제적 자유 시뮬레이션")
	assert.Contains(t, out, "55세")
}

func TestProjectRemembersInput(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "project", "--capital", "2억", "--return", "8")
	require.NoError(t, err)

	out, _, err := run(t, "project", "-f", "json")
	require.NoError(t, err)
	var results domain.ScenarioComparison
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.True(t, results.Plan.Input.InitialCapital.Equal(decimal.NewFromInt(200_000_000)))
	assert.True(t, results.Plan.Input.AnnualReturnRate.Equal(decimal.NewFromInt(8)))
}

func TestProjectRejectsInvalidInput(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "project", "--age", "120")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current_age")

	_, _, err = run(t, "project", "--saving", "많이")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--saving")

	_, _, err = run(t, "project", "-f", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestProjectSaveAndHistory(t *testing.T) {
	isolate(t)
	_, stderr, err := run(t, "project", "--save", "--name", "baseline")
	require.NoError(t, err)
	assert.Contains(t, stderr, "saved run #1")

	out, _, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "55세")

	out, _, err = run(t, "history", "--delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted run #1")

	out, _, err = run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "기록된 실행이 없습니다")

	_, _, err = run(t, "history", "--delete", "1")
	assert.Error(t, err)
}

func TestProjectOutputDir(t *testing.T) {
	dir := isolate(t)
	reports := filepath.Join(dir, "reports")
	out, _, err := run(t, "project", "-f", "csv", "-o", reports)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".csv", filepath.Ext(entries[0].Name()))
}

func TestInitThenCompare(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "plan.yaml")

	_, _, err := run(t, "init", path)
	require.NoError(t, err)
	_, _, err = run(t, "init", path)
	assert.ErrorContains(t, err, "already exists")
	_, _, err = run(t, "init", "--force", path)
	require.NoError(t, err)

	out, _, err := run(t, "compare", path)
	require.NoError(t, err)
	assert.Contains(t, out, "aggressive")
	assert.Contains(t, out, "stable")
	assert.Contains(t, out, "46세")

	_, _, err = run(t, "compare", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestSweep(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "sweep", "--param", "annual_return_rate", "--min", "4", "--max", "10", "--steps", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "민감도 분석")
	assert.Contains(t, out, "46세")

	out, _, err = run(t, "sweep", "--steps", "2", "-f", "json")
	require.NoError(t, err)
	var resp struct {
		Parameter string                     `json:"parameter"`
		Results   []domain.SensitivityResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Results, 2)

	_, _, err = run(t, "sweep", "--param", "salary")
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "solve", "--by", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "필요 월 저축액")

	_, _, err = run(t, "solve", "--by", "60", "--capital", "0", "--saving", "0", "--return", "1", "--inflation", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), cli.NotAchievable)
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolate(t)
	_, stderr, err := run(t, "project", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DEBUG")
	assert.Contains(t, stderr, "reaches paradise at age 55")
}
