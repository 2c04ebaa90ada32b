package hyperdual_test

import (
	"bufio"
	"bytes"
	"os"
	"sort"
	"strings"
	"testing"
)

// directDeps is the complete set of modules the library and its commands may
// require directly. Anything else needs a conscious decision.
var directDeps = []string{
	"github.com/caarlos0/env/v11",
	"github.com/davecgh/go-spew",
	"github.com/shabbyrobe/golib",
	"golang.org/x/sync",
	"gonum.org/v1/gonum",
}

func TestDirectDeps(t *testing.T) {
	if os.Getenv("HYPERDUAL_SKIP_MOD") != "" {
		// Use this to avoid this check while trying out a new dependency:
		t.Skip()
	}

	bts, err := os.ReadFile("go.mod")
	if err != nil {
		t.Fatal(err)
	}

	var found []string
	inRequire := false
	scn := bufio.NewScanner(bytes.NewReader(bts))
	for scn.Scan() {
		line := strings.TrimSpace(scn.Text())
		switch {
		case line == "require (":
			inRequire = true
			continue
		case inRequire && line == ")":
			inRequire = false
			continue
		case strings.HasPrefix(line, "require "):
			line = strings.TrimPrefix(line, "require ")
		case !inRequire:
			continue
		}
		if line == "" || strings.HasSuffix(line, "// indirect") {
			continue
		}
		found = append(found, strings.Fields(line)[0])
	}
	if err := scn.Err(); err != nil {
		t.Fatal(err)
	}

	sort.Strings(found)
	if strings.Join(found, "\n") != strings.Join(directDeps, "\n") {
		t.Fatal("go.mod requires unexpected modules:\n" + strings.Join(found, "\n"))
	}
}
