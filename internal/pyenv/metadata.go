// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"bufio"
	"fmt"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"licensegate-cli/internal/engine"

	"github.com/charmbracelet/log"
)

// distRecordPath resolves the actual metadata file for one directory entry
// in a site directory. Both layouts occur in the wild: a `.dist-info`
// directory holding METADATA (or an `.egg-info` directory holding
// PKG-INFO), and older bare `.egg-info` files that are themselves the
// metadata document. Anything else yields "".
func distRecordPath(dir string, entry os.DirEntry) string {
	name := entry.Name()
	full := filepath.Join(dir, name)

	switch {
	case entry.IsDir() && strings.HasSuffix(name, ".dist-info"):
		return filepath.Join(full, "METADATA")
	case entry.IsDir() && strings.HasSuffix(name, ".egg-info"):
		return filepath.Join(full, "PKG-INFO")
	case !entry.IsDir() && (strings.HasSuffix(name, ".dist-info") || strings.HasSuffix(name, ".egg-info")):
		return full
	}
	return ""
}

// parseMetadataFile reads the RFC 822 header block of a METADATA/PKG-INFO
// file into an engine.Metadata. The description body after the first blank
// line is ignored.
func parseMetadataFile(path string) (*engine.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metadata record: %w", err)
	}
	defer f.Close()

	reader := textproto.NewReader(bufio.NewReader(f))
	header, err := reader.ReadMIMEHeader()
	// ReadMIMEHeader reports io.EOF when the block is not terminated by a
	// blank line, which is common for records without a description body.
	if err != nil && len(header) == 0 {
		return nil, fmt.Errorf("parse metadata record %s: %w", path, err)
	}

	md := &engine.Metadata{
		Name:        header.Get("Name"),
		License:     header.Get("License"),
		Classifiers: header.Values("Classifier"),
		Requires:    header.Values("Requires-Dist"),
	}
	// Newer records declare the license as an SPDX expression instead of
	// the legacy free-text field.
	if md.License == "" {
		md.License = header.Get("License-Expression")
	}
	return md, nil
}

// scanSiteDir collects the metadata records under one site directory,
// keyed by normalized package name.
func scanSiteDir(dir string, index map[string]*engine.Metadata) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Site directories reported by the interpreter may not exist
		// (e.g. the user base on a fresh install). Not an error.
		log.Debug("skipping unreadable site dir", "dir", dir, "err", err)
		return
	}

	for _, entry := range entries {
		record := distRecordPath(dir, entry)
		if record == "" {
			continue
		}

		md, err := parseMetadataFile(record)
		if err != nil {
			log.Debug("skipping unparseable metadata record", "path", record, "err", err)
			continue
		}
		if md.Name == "" {
			continue
		}

		key := engine.NormalizeName(md.Name)
		if _, ok := index[key]; !ok {
			index[key] = md
		}
	}
}
