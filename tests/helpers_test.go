package tests_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectReport returns a comparator verifying the report at path contains every fragment.
func expectReport(path string, fragments ...string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		data, err := os.ReadFile(path) //nolint:gosec // test fixture path
		if err != nil {
			testing.Log(fmt.Sprintf("report %s not readable: %v", path, err))
			testing.Fail()

			return
		}

		for _, fragment := range fragments {
			if !strings.Contains(string(data), fragment) {
				testing.Log(fmt.Sprintf("expected %q in report:\n%s", fragment, data))
				testing.Fail()
			}
		}
	}
}

// expectNoFile returns a comparator verifying nothing was written at path.
func expectNoFile(path string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		if _, err := os.Stat(path); err == nil {
			testing.Log(fmt.Sprintf("expected no file at %s", path))
			testing.Fail()
		}
	}
}
