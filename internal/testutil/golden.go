package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var updateGolden = flag.Bool("update", false, "update golden files")

// testdataDir is fixed when the test binary starts, in the package
// directory, so tests that chdir elsewhere still find their golden files.
var testdataDir = func() string {
	dir, err := filepath.Abs("testdata")
	if err != nil {
		return "testdata"
	}
	return dir
}()

// Update reports whether golden files should be rewritten (go test -update).
func Update() bool {
	return *updateGolden
}

// Golden compares actual against testdata/<name>.golden in the test's
// package directory, wherever the test has moved the working directory. With -update the file is rewritten instead.
//
//	func TestList(t *testing.T) {
//	    testutil.Golden(t, "list_all", buf.Bytes())
//	}
func Golden(t *testing.T, name string, actual []byte) {
	t.Helper()

	goldenPath := filepath.Join(testdataDir, name+".golden")

	if Update() {
		if err := os.MkdirAll(testdataDir, 0755); err != nil {
			t.Fatalf("Failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, actual, 0644); err != nil {
			t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("Output does not match golden file %s.\n"+
			"To update the golden file, run: go test -update ./...\n\n"+
			"Got:\n%s\n\nWant:\n%s",
			goldenPath, actual, expected)
	}
}

// GoldenString is Golden for strings.
func GoldenString(t *testing.T, name string, actual string) {
	t.Helper()
	Golden(t, name, []byte(actual))
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// StripANSI removes ANSI escape sequences.
func StripANSI(data []byte) []byte {
	return ansiPattern.ReplaceAll(data, nil)
}

// StripANSIString removes ANSI escape sequences from s.
func StripANSIString(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
