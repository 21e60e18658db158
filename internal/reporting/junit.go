package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/edneymatias/antigravity-laravel-kit/internal/checks"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Skipped    int              `xml:"skipped,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one check category.
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one check.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure carries the failed command's output.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a check as skipped.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// ConvertToJUnit maps a run summary to JUnit XML, one testsuite per check
// category, so CI systems that ingest JUnit can display verification runs.
func ConvertToJUnit(summary checks.RunSummary) *JUnitTestSuites {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	out := &JUnitTestSuites{
		Tests:    summary.Total,
		Failures: summary.Failed + summary.Advisories,
		Skipped:  summary.Skipped,
	}

	for _, category := range summary.Categories {
		results := summary.ByCategory[category]
		suite := JUnitTestSuite{
			Name:      category,
			Tests:     len(results),
			Timestamp: timestamp,
		}
		for _, r := range results {
			tc := JUnitTestCase{Name: r.Name, Classname: category}
			switch r.Status {
			case checks.StatusSkipped:
				suite.Skipped++
				tc.Skipped = &JUnitSkipped{Message: "prerequisite missing"}
			case checks.StatusFailed:
				suite.Failures++
				message := "check failed"
				if r.ExitCode != nil {
					message = fmt.Sprintf("check failed with exit code %d", *r.ExitCode)
				}
				tc.Failure = &JUnitFailure{
					Message: message,
					Type:    "CheckFailure",
					Body:    strings.Join(r.Output, "\n"),
				}
			}
			suite.TestCases = append(suite.TestCases, tc)
		}
		out.TestSuites = append(out.TestSuites, suite)
	}
	return out
}

// WriteJUnit writes the summary as a JUnit XML file at path.
func WriteJUnit(path string, summary checks.RunSummary) error {
	data, err := xml.MarshalIndent(ConvertToJUnit(summary), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}
	content := xml.Header + string(data) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing JUnit report: %w", err)
	}
	return nil
}
