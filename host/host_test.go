// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeWarrior(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func runScript(h *Host, script string) string {
	var out bytes.Buffer
	h.RunCommands(strings.NewReader(script), &out, false)
	return out.String()
}

func TestLoadAndRun(t *testing.T) {
	dir := t.TempDir()
	imp := writeWarrior(t, dir, "imp.red", ";name Imp\nMOV.I $0, $1\n")
	dat := writeWarrior(t, dir, "dat.red", "DAT.F #0, #0\n")

	h := New()
	h.params.MinDistance = 10
	h.params.MaxWarriorLength = 10
	h.params.Rounds = 1
	h.params.HasSeed, h.params.Seed = true, h.params.MinDistance

	out := runScript(h, "load1 "+imp+"\nload2 "+dat+"\nrun\nquit\n")

	if !strings.Contains(out, "Loaded warrior 1") || !strings.Contains(out, "Loaded warrior 2") {
		t.Fatalf("expected both warriors to load, got:\n%s", out)
	}
	if !strings.Contains(out, "'Imp'") {
		t.Errorf("expected the ;name comment to supply warrior 1's display name, got:\n%s", out)
	}
	if h.warriors[1].name != dat {
		t.Errorf("warrior 2 name = %q, want filename fallback %q (no ;name comment)", h.warriors[1].name, dat)
	}
	if !strings.Contains(out, "scores") {
		t.Fatalf("expected score lines in output, got:\n%s", out)
	}
}

func TestRunWithoutBothWarriorsLoaded(t *testing.T) {
	h := New()
	out := runScript(h, "run\nquit\n")
	if !strings.Contains(out, "must be loaded") {
		t.Errorf("expected a must-be-loaded message, got:\n%s", out)
	}
}

func TestSetAndShowRoundTrip(t *testing.T) {
	h := New()
	out := runScript(h, "set rounds 5\nshow\nquit\n")
	if !strings.Contains(out, "Setting updated.") {
		t.Fatalf("expected confirmation of the settings update, got:\n%s", out)
	}
	if h.params.Rounds != 5 {
		t.Errorf("Rounds = %d, want 5", h.params.Rounds)
	}
	if !strings.Contains(out, "not loaded") {
		t.Errorf("expected show to report unloaded warriors, got:\n%s", out)
	}
}

func TestTraceOnOff(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "trace.log")

	h := New()
	out := runScript(h, "trace "+tracePath+"\ntrace\ntrace off\nquit\n")
	if !strings.Contains(out, "Tracing to") || !strings.Contains(out, "Tracing is on") || !strings.Contains(out, "Tracing disabled") {
		t.Errorf("unexpected trace command transcript:\n%s", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	h := New()
	out := runScript(h, "boguscommand\nquit\n")
	if !strings.Contains(out, "Command not found.") {
		t.Errorf("expected 'Command not found.', got:\n%s", out)
	}
}
