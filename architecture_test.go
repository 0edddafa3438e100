/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package enumx_test

import (
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestCoreDoesNotImportAdapters keeps the core packages free of the wire
// adapters, the metrics exporter and their third-party dependencies.
func TestCoreDoesNotImportAdapters(t *testing.T) {
	const module = "dirpx.dev/enumx"
	core := []string{
		module,
		module + "/apis",
		module + "/bridge",
		module + "/builder",
		module + "/config",
		module + "/entity",
		module + "/lookup",
		module + "/registry",
		module + "/strategy",
		module + "/utils/reflect",
	}
	forbidden := []string{
		module + "/codec",
		module + "/metrics",
		module + "/cmd",
		"github.com/prometheus",
		"gopkg.in/yaml.v3",
		"modernc.org/sqlite",
		"github.com/spf13/cobra",
	}

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, core...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var violations []string
	for _, pkg := range pkgs {
		for importPath := range pkg.Imports {
			for _, prefix := range forbidden {
				if importPath == prefix || strings.HasPrefix(importPath, prefix+"/") {
					violations = append(violations, pkg.PkgPath+": "+importPath)
				}
			}
		}
	}
	sort.Strings(violations)
	for _, v := range violations {
		t.Errorf("forbidden import: %s", v)
	}
}
