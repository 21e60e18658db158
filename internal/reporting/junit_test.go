package reporting

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToJUnit(t *testing.T) {
	summary := summarize(
		passed("Dependency Audit", "Security"),
		failed("Code Style", "Code Quality", 1, "style drift"),
		skipped("Asset Build", "Assets"),
	)

	suites := ConvertToJUnit(summary)

	assert.Equal(t, 3, suites.Tests)
	assert.Equal(t, 1, suites.Failures)
	assert.Equal(t, 1, suites.Skipped)
	require.Len(t, suites.TestSuites, 3)

	assert.Equal(t, "Security", suites.TestSuites[0].Name)
	assert.Equal(t, "Code Quality", suites.TestSuites[1].Name)
	assert.Equal(t, "Assets", suites.TestSuites[2].Name)

	styleSuite := suites.TestSuites[1]
	require.Len(t, styleSuite.TestCases, 1)
	require.NotNil(t, styleSuite.TestCases[0].Failure)
	assert.Equal(t, "check failed with exit code 1", styleSuite.TestCases[0].Failure.Message)
	assert.Equal(t, "style drift", styleSuite.TestCases[0].Failure.Body)

	assetSuite := suites.TestSuites[2]
	require.Len(t, assetSuite.TestCases, 1)
	assert.NotNil(t, assetSuite.TestCases[0].Skipped)
	assert.Nil(t, assetSuite.TestCases[0].Failure)
}

func TestWriteJUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verify.xml")
	summary := summarize(passed("Test Suite", "Tests"))

	require.NoError(t, WriteJUnit(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<?xml")

	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal(data, &suites))
	assert.Equal(t, 1, suites.Tests)
	assert.Equal(t, 0, suites.Failures)
	require.Len(t, suites.TestSuites, 1)
	assert.Equal(t, "Tests", suites.TestSuites[0].Name)
}
