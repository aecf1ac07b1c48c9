package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	yamlv2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/pencraft/internal/config"
	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/testutils"
)

// setupProject points the global configuration at a fresh document path.
func setupProject(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := testutils.CreateTempProject(t)
	path := filepath.Join(dir, config.DefaultDocumentPath)
	viper.Set("document.path", path)
	viper.Set("log.level", "error")

	generateForce, extendForce = false, false
	appendPage = ""
	pagesFormat, sectionsFormat, validateFormat, doctorFormat = "table", "table", "text", "text"
	validateBands = false
	return path
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestGenerateCommand(t *testing.T) {
	path := setupProject(t)

	cmd, out := testCommand()
	require.NoError(t, runGenerate(cmd, nil))
	assert.Contains(t, out.String(), "base: wrote 8 sections")
	assert.Contains(t, out.String(), "components-2: wrote")
	assert.FileExists(t, path)

	doc := testutils.ReadDocument(t, path)
	assert.Len(t, doc.Pages(), len(config.DefaultPageNames))
	testutils.RequireUniqueIDs(t, doc)

	cmd, _ = testCommand()
	err := runGenerate(cmd, nil)
	assert.Equal(t, errors.ErrCodeDocumentExists, errors.Code(err))

	generateForce = true
	cmd, _ = testCommand()
	assert.NoError(t, runGenerate(cmd, nil))
}

func TestExtendCommand(t *testing.T) {
	path := setupProject(t)
	testutils.WriteArrayDocument(t, path, config.DefaultPageNames...)

	cmd, out := testCommand()
	err := runExtend(cmd, []string{"components-1"})
	assert.Equal(t, errors.ErrCodePassPrerequisite, errors.Code(err))

	require.NoError(t, runExtend(cmd, []string{"base"}))
	assert.Contains(t, out.String(), "base: wrote 8 sections")

	out.Reset()
	require.NoError(t, runExtend(cmd, []string{"base"}))
	assert.Contains(t, out.String(), "nothing to add")
	assert.NotContains(t, out.String(), "Wrote")

	err = runExtend(cmd, []string{"components-9"})
	assert.Equal(t, errors.ErrCodePassNotFound, errors.Code(err))
}

func TestAppendCommand(t *testing.T) {
	path := setupProject(t)
	testutils.WriteArrayDocument(t, path, config.DefaultPageNames...)

	appendPage = "Forms"
	cmd, out := testCommand()
	require.NoError(t, runAppend(cmd, []string{"card", "alert"}))
	assert.Contains(t, out.String(), "Forms")

	doc := testutils.ReadDocument(t, path)
	assert.Len(t, doc.PagesNamed("Forms")[0].Children, 2)
	assert.True(t, gjson.Parse(mustRead(t, path)).IsArray())

	appendPage = "Missing"
	err := runAppend(cmd, []string{"card"})
	assert.Equal(t, errors.ErrCodePageNotFound, errors.Code(err))
}

func TestPagesCommand(t *testing.T) {
	path := setupProject(t)
	testutils.WriteArrayDocument(t, path, "Typography", "Forms")

	cmd, out := testCommand()
	require.NoError(t, runPages(cmd, nil))
	assert.Contains(t, out.String(), "Typography")
	assert.Contains(t, out.String(), "2 pages")

	pagesFormat = "json"
	out.Reset()
	require.NoError(t, runPages(cmd, nil))
	result := gjson.Parse(out.String())
	assert.Equal(t, int64(2), result.Get("pages.#").Int())
	assert.Equal(t, "page2", result.Get("pages.1.id").String())
	assert.Equal(t, "array", result.Get("shape").String())
}

func TestPagesAddCommand(t *testing.T) {
	path := setupProject(t)
	testutils.WriteArrayDocument(t, path, "Typography")

	cmd, out := testCommand()
	require.NoError(t, runPagesAdd(cmd, []string{"Charts"}))
	assert.Contains(t, out.String(), "Added page Charts")

	doc := testutils.ReadDocument(t, path)
	require.Len(t, doc.PagesNamed("Charts"), 1)

	err := runPagesAdd(cmd, []string{"Charts"})
	assert.Equal(t, errors.ErrCodePageAmbiguous, errors.Code(err))
}

func TestSectionsCommand(t *testing.T) {
	setupProject(t)

	sectionsFormat = "yaml"
	cmd, out := testCommand()
	require.NoError(t, runSections(cmd, nil))

	var rows []sectionRow
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 27)

	byKey := make(map[string]sectionRow, len(rows))
	for _, r := range rows {
		byKey[r.Key] = r
	}
	assert.Equal(t, "components-2", byKey["alert"].Pass)
	assert.Equal(t, "base", byKey["button"].Pass)
	assert.Equal(t, "Actions", byKey["button"].Page)
}

func TestValidateCommand(t *testing.T) {
	path := setupProject(t)

	cmd, out := testCommand()
	require.NoError(t, runGenerate(cmd, nil))
	out.Reset()
	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "0 errors")

	testutils.WriteDocument(t, path, `[`+
		testutils.PageJSON("dup", "Forms")+`,`+
		testutils.PageJSON("dup", "Feedback")+`]`)
	err := runValidate(cmd, nil)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.Code(err))
}

func TestDoctorCommand(t *testing.T) {
	setupProject(t)

	cmd, _ := testCommand()
	require.NoError(t, runGenerate(cmd, nil))

	doctorFormat = "yaml"
	cmd, out := testCommand()
	require.NoError(t, runDoctor(cmd, nil))

	var report DoctorReport
	require.NoError(t, yamlv2.Unmarshal(out.Bytes(), &report))
	assert.Zero(t, report.Summary.Errors)
	require.Len(t, report.Passes, 3)
	for _, p := range report.Passes {
		assert.True(t, p.Done, p.Name)
	}
}

func TestSchemaCommand(t *testing.T) {
	setupProject(t)
	schemaOut = filepath.Join(t.TempDir(), "schema", "document.schema.json")
	t.Cleanup(func() { schemaOut = "" })

	cmd, out := testCommand()
	require.NoError(t, runSchema(cmd, nil))
	assert.Contains(t, out.String(), "Wrote")

	data := mustRead(t, schemaOut)
	assert.True(t, gjson.Valid(data))
	assert.True(t, gjson.Get(data, `\$defs.Frame`).Exists())
}

func TestVersionCommand(t *testing.T) {
	versionFormat = "json"
	t.Cleanup(func() { versionFormat = "text" })

	cmd, out := testCommand()
	require.NoError(t, runVersionCommand(cmd, nil))
	assert.NotEmpty(t, gjson.Get(out.String(), "version").String())
	assert.NotEmpty(t, gjson.Get(out.String(), "goVersion").String())
}

func TestOutputFlagRejectsUnknownFormat(t *testing.T) {
	err := pagesCmd.Flags().Set("output", "csv")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "table, json, yaml")
}

func TestExplainAddsSuggestions(t *testing.T) {
	path := setupProject(t)

	cmd, _ := testCommand()
	err := runPages(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, explain(err), "pencraft generate")

	testutils.WriteArrayDocument(t, path, "Forms")
	appendPage = "Froms"
	err = runAppend(cmd, []string{"card"})
	require.Error(t, err)
	assert.Contains(t, explain(err), "Forms")
}

func TestWatchCheckLogsFailuresByType(t *testing.T) {
	path := setupProject(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"children": [`), 0o644))

	var out, logs bytes.Buffer
	cmd, _ := testCommand()
	cmd.SetErr(&logs)
	a, err := loadApp(cmd)
	require.NoError(t, err)

	check := watchCheck(a, &out, false)
	check(context.Background())
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "Document error occurred")
	assert.Contains(t, logs.String(), errors.ErrCodeMalformedDocument)

	testutils.WriteArrayDocument(t, path, "Forms")
	logs.Reset()
	check(context.Background())
	assert.NotEmpty(t, out.String())
	assert.NotContains(t, logs.String(), "error occurred")
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
