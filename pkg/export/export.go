// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package export serializes plans and apply results for review and
// scripting. The format follows the output path's extension: .json or
// .csv for plans, .json for post-apply journals. Files are written
// atomically (temp file + rename) so a crashed export never leaves a
// truncated artifact behind.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/execute"
	"github.com/walteh/renamerc/pkg/plan"
)

// 📝 WritePlanJSON writes the plan as an indented JSON document: the
// directory, the ordered entries with their statuses, and any warnings.
func WritePlanJSON(w io.Writer, p *plan.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return errors.Errorf("encoding plan: %w", err)
	}
	return nil
}

// 📝 WritePlanCSV writes the plan as CSV with a header row, one row per
// entry in plan order.
func WritePlanCSV(w io.Writer, p *plan.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "target", "status", "changed", "reason", "ordinal"}); err != nil {
		return errors.Errorf("writing CSV header: %w", err)
	}
	for _, e := range p.Entries {
		row := []string{
			e.Source,
			e.Proposed,
			string(e.Status),
			strconv.FormatBool(e.Changed),
			e.Reason,
			strconv.Itoa(e.Ordinal),
		}
		if err := cw.Write(row); err != nil {
			return errors.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// 📝 WritePlanFile writes the plan to path, picking JSON or CSV by
// extension.
func WritePlanFile(path string, p *plan.Plan) error {
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = WritePlanJSON(&buf, p)
	case ".csv":
		err = WritePlanCSV(&buf, p)
	default:
		return errors.Errorf("unsupported export extension %q, want .json or .csv", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

// 📝 WriteResultJSON writes an apply journal as indented JSON.
func WriteResultJSON(w io.Writer, r *execute.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Errorf("encoding result: %w", err)
	}
	return nil
}

// 📝 WriteResultFile writes an apply journal to path. Journals are
// JSON-only; the extension must agree.
func WriteResultFile(path string, r *execute.Result) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".json" {
		return errors.Errorf("unsupported journal extension %q, want .json", filepath.Ext(path))
	}
	var buf bytes.Buffer
	if err := WriteResultJSON(&buf, r); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it into place.
func writeFileAtomic(path string, content []byte) error {
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}
