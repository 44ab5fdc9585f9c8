// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"os"
	"path/filepath"
	"testing"

	"licensegate-cli/internal/engine"

	"golang.org/x/exp/slices"
)

const requestsMetadata = `Metadata-Version: 2.1
Name: requests
Version: 2.31.0
License: Apache 2.0
Classifier: Development Status :: 5 - Production/Stable
Classifier: License :: OSI Approved :: Apache Software License
Requires-Dist: charset-normalizer (<4,>=2)
Requires-Dist: idna (<4,>=2.5)
Requires-Dist: urllib3 (<3,>=1.21.1)
Requires-Dist: PySocks (!=1.5.7,>=1.5.6) ; extra == 'socks'

Requests is a simple HTTP library.
`

const legacyEggInfo = `Metadata-Version: 1.0
Name: olddist
Version: 0.3
License: MIT
`

// writeSiteDir lays out a synthetic site-packages directory with one
// dist-info package and one legacy bare egg-info record.
func writeSiteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	distInfo := filepath.Join(dir, "requests-2.31.0.dist-info")
	if err := os.Mkdir(distInfo, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(distInfo, "METADATA"), []byte(requestsMetadata), 0o644); err != nil {
		t.Fatalf("write METADATA: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "olddist-0.3.egg-info"), []byte(legacyEggInfo), 0o644); err != nil {
		t.Fatalf("write egg-info: %v", err)
	}

	// Noise that the scanner must ignore.
	if err := os.Mkdir(filepath.Join(dir, "requests"), 0o755); err != nil {
		t.Fatalf("mkdir package dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "six.py"), []byte("# module"), 0o644); err != nil {
		t.Fatalf("write module file: %v", err)
	}

	return dir
}

func TestScanSiteDir(t *testing.T) {
	t.Parallel()
	dir := writeSiteDir(t)

	index := make(map[string]*engine.Metadata)
	scanSiteDir(dir, index)

	if len(index) != 2 {
		t.Fatalf("indexed %d packages, want 2: %v", len(index), index)
	}

	req, ok := index["requests"]
	if !ok {
		t.Fatal("requests not indexed")
	}
	if req.License != "Apache 2.0" {
		t.Errorf("requests license = %q, want %q", req.License, "Apache 2.0")
	}
	if want := "License :: OSI Approved :: Apache Software License"; !slices.Contains(req.Classifiers, want) {
		t.Errorf("requests classifiers = %v, missing %q", req.Classifiers, want)
	}
	if len(req.Requires) != 4 {
		t.Errorf("requests has %d requirement strings, want 4", len(req.Requires))
	}

	old, ok := index["olddist"]
	if !ok {
		t.Fatal("olddist not indexed")
	}
	if old.License != "MIT" {
		t.Errorf("olddist license = %q, want %q", old.License, "MIT")
	}
	if len(old.Requires) != 0 {
		t.Errorf("olddist requirements = %v, want none", old.Requires)
	}
}

func TestScanSiteDir_MissingDir(t *testing.T) {
	t.Parallel()
	index := make(map[string]*engine.Metadata)
	scanSiteDir(filepath.Join(t.TempDir(), "does-not-exist"), index)
	if len(index) != 0 {
		t.Errorf("indexed %d packages from a missing dir, want 0", len(index))
	}
}

func TestScanSiteDir_FirstRecordWins(t *testing.T) {
	t.Parallel()
	dir := writeSiteDir(t)

	index := make(map[string]*engine.Metadata)
	scanSiteDir(dir, index)
	first := index["requests"]

	// A second scan of the same name must not replace the original record.
	scanSiteDir(dir, index)
	if index["requests"] != first {
		t.Error("second scan replaced an existing record")
	}
}

func TestParseMetadataFile_LicenseExpression(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "METADATA")
	content := "Metadata-Version: 2.4\nName: modern\nLicense-Expression: MIT\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write METADATA: %v", err)
	}

	md, err := parseMetadataFile(path)
	if err != nil {
		t.Fatalf("parseMetadataFile() returned error: %v", err)
	}
	if md.License != "MIT" {
		t.Errorf("license = %q, want %q (from License-Expression)", md.License, "MIT")
	}
}

func TestDistRecordPath(t *testing.T) {
	t.Parallel()
	dir := writeSiteDir(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	var records []string
	for _, entry := range entries {
		if record := distRecordPath(dir, entry); record != "" {
			records = append(records, filepath.Base(record))
		}
	}
	slices.Sort(records)
	if want := []string{"METADATA", "olddist-0.3.egg-info"}; !slices.Equal(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
}
