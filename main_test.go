package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func assertLogos(t *testing.T, dir string, size int, ids ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(ids) {
		t.Fatalf("%s holds %d entries, want %d", dir, len(entries), len(ids))
	}
	for _, id := range ids {
		f, err := os.Open(filepath.Join(dir, "logo-"+id+".png"))
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("%s: %dx%d, want %dx%d", id, cfg.Width, cfg.Height, size, size)
		}
	}
}

var allIDs = []string{"team-1", "team-2", "team-3", "team-4", "team-5", "team-6", "team-7", "team-8"}

func TestRunDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	code, stdout, stderr := runCLI(t)
	if code != exitOK {
		t.Fatalf("exit %d, stderr:\n%s", code, stderr)
	}
	assertLogos(t, "team_logos", 512, allIDs...)
	if !strings.Contains(stdout, "Done! Created 8 logos") {
		t.Errorf("stdout:\n%s", stdout)
	}
}

func TestRunSizeAndDirectory(t *testing.T) {
	chdir(t, t.TempDir())
	if code, _, stderr := runCLI(t, "128", "out2"); code != exitOK {
		t.Fatalf("exit %d, stderr:\n%s", code, stderr)
	}
	assertLogos(t, "out2", 128, allIDs...)
}

func TestRunIsRepeatable(t *testing.T) {
	chdir(t, t.TempDir())
	if code, _, stderr := runCLI(t, "64", "again"); code != exitOK {
		t.Fatal(stderr)
	}
	first, err := os.ReadFile(filepath.Join("again", "logo-team-4.png"))
	if err != nil {
		t.Fatal(err)
	}
	if code, _, stderr := runCLI(t, "64", "again"); code != exitOK {
		t.Fatal(stderr)
	}
	second, err := os.ReadFile(filepath.Join("again", "logo-team-4.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("second run produced different bytes")
	}
	assertLogos(t, "again", 64, allIDs...)
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non-numeric size", []string{"big"}},
		{"zero size", []string{"0"}},
		{"negative size", []string{"--", "-5"}},
		{"too many arguments", []string{"64", "out", "extra"}},
		{"unknown flag", []string{"-nope"}},
		{"unknown team", []string{"-only", "team-9"}},
		{"blank team list", []string{"-only", " , ", "16", "o"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != exitUsage {
				t.Fatalf("exit %d, want %d", code, exitUsage)
			}
			if !strings.Contains(stderr, "Usage: logomaker") {
				t.Errorf("stderr missing usage:\n%s", stderr)
			}
			if stdout != "" {
				t.Errorf("unexpected stdout:\n%s", stdout)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Errorf("files written on usage error: %v", entries)
			}
		})
	}
}

func TestRunSizeOne(t *testing.T) {
	chdir(t, t.TempDir())
	if code, _, stderr := runCLI(t, "1", "tiny"); code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	assertLogos(t, "tiny", 1, allIDs...)
}

func TestRunOnlyAndPreview(t *testing.T) {
	chdir(t, t.TempDir())
	code, stdout, stderr := runCLI(t, "-only", "team-6,team-2", "-preview", "32", "subset")
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Done! Created 2 logos") {
		t.Errorf("stdout:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join("subset", "preview.png")); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join("subset", "preview.png")); err != nil {
		t.Fatal(err)
	}
	assertLogos(t, "subset", 32, "team-2", "team-6")
}

func TestRunOutputDirUnwritable(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("blocked", nil, 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := runCLI(t, "16", filepath.Join("blocked", "logos"))
	if code != exitFailure {
		t.Fatalf("exit %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr, "create output directory") {
		t.Errorf("stderr:\n%s", stderr)
	}
}

func TestRunWritesReportToStdioLog(t *testing.T) {
	chdir(t, t.TempDir())
	origOut, origErr := os.Stdout, os.Stderr
	var logFile *os.File
	redirectOutput = func(path string) error {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = f
		os.Stdout, os.Stderr = f, f
		return nil
	}
	t.Cleanup(func() {
		redirectOutput = redirectStdIO
		os.Stdout, os.Stderr = origOut, origErr
		if logFile != nil {
			logFile.Close()
		}
	})

	code, stdout, _ := runCLI(t, "-stdio-log", "run.log", "-only", "team-1", "8", "logged")
	os.Stdout, os.Stderr = origOut, origErr
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	if stdout != "" {
		t.Errorf("report went to the original writer:\n%s", stdout)
	}
	data, err := os.ReadFile("run.log")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Created logo-team-1.png") {
		t.Errorf("stdio log missing report:\n%s", data)
	}
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stderr, "-keep-going") {
		t.Errorf("help missing flags:\n%s", stderr)
	}
}

func TestFontCandidatesPrependsExtra(t *testing.T) {
	got := fontCandidates("/opt/fonts/Brand.ttf")
	if got[0].Path != "/opt/fonts/Brand.ttf" || got[0].Name != "Brand.ttf" {
		t.Fatalf("first candidate = %+v", got[0])
	}
	if len(fontCandidates("")) != len(got)-1 {
		t.Error("extra font not added exactly once")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
