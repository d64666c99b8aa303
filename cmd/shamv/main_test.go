package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sivchari/shamv/pkg/shamv"
)

const abcSHA256 = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func writeTemp(t *testing.T, name, content string) (dir, path string) {
	t.Helper()

	dir = t.TempDir()
	path = filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	return dir, path
}

func TestExecute_DefaultAlgorithm(t *testing.T) {
	dir, path := writeTemp(t, "file_with_extension.txt", "abc")
	newName := abcSHA256 + ".txt"

	code, stdout, stderr := runCLI(t, "--dry-run", path)
	if code != shamv.ExitSuccess {
		t.Fatalf("dry run exit = %d, stderr = %q", code, stderr)
	}

	if !strings.Contains(stdout, newName) || !strings.Contains(stdout, path) {
		t.Errorf("dry run output %q should mention %s and %s", stdout, path, newName)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("dry run must not touch the file: %v", err)
	}

	code, stdout, _ = runCLI(t, path)
	if code != shamv.ExitSuccess {
		t.Fatalf("exit = %d", code)
	}

	if stdout != "" {
		t.Errorf("execute mode should print nothing, got %q", stdout)
	}

	if _, err := os.Stat(filepath.Join(dir, newName)); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
}

func TestExecute_Algorithms(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		content string
		file    string
		want    string
	}{
		{
			name:    "sha224 of empty file",
			args:    []string{"-a", "sha224"},
			content: "",
			file:    "empty.txt",
			want:    "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f.txt",
		},
		{
			name:    "sha384 of NIST.1",
			args:    []string{"--algorithm", "sha384"},
			content: "abc",
			file:    "NIST.1.txt",
			want:    "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7.txt",
		},
		{
			name:    "sha512 without extension",
			args:    []string{"--algorithm=sha512"},
			content: "",
			file:    "empty",
			want:    "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, path := writeTemp(t, tt.file, tt.content)

			code, stdout, _ := runCLI(t, append(append([]string{"-n"}, tt.args...), path)...)
			if code != shamv.ExitSuccess || !strings.Contains(stdout, tt.want) {
				t.Fatalf("dry run exit = %d, stdout = %q, want %s", code, stdout, tt.want)
			}

			if code, _, stderr := runCLI(t, append(tt.args, path)...); code != shamv.ExitSuccess {
				t.Fatalf("exit = %d, stderr = %q", code, stderr)
			}

			if _, err := os.Stat(filepath.Join(dir, tt.want)); err != nil {
				t.Errorf("expected %s to exist: %v", tt.want, err)
			}
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	dir, path := writeTemp(t, "a.txt", "abc")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "file not found",
			args:       []string{"-a", "sha256", "test/file/doesnt/exist"},
			wantCode:   shamv.ExitFileNotFound,
			wantStderr: "file not found",
		},
		{
			name:       "directory operand",
			args:       []string{dir},
			wantCode:   shamv.ExitDigestError,
			wantStderr: "is a directory",
		},
		{
			name:       "unsupported algorithm",
			args:       []string{"--algorithm", "doesnotexist", path},
			wantCode:   shamv.ExitUnsupportedAlgorithm,
			wantStderr: "unsupported algorithm doesnotexist",
		},
		{
			name:       "no files",
			args:       []string{"-n"},
			wantCode:   shamv.ExitInsufficientArgs,
			wantStderr: "must specify at least one file",
		},
		{
			name:       "unsupported output format",
			args:       []string{"-o", "html", path},
			wantCode:   shamv.ExitInsufficientArgs,
			wantStderr: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
			}

			if !strings.HasPrefix(stderr, shamv.ProgramName+": ") {
				t.Errorf("stderr should be prefixed with program name, got %q", stderr)
			}

			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr %q should contain %q", stderr, tt.wantStderr)
			}
		})
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("failing runs must not rename files: %v", err)
	}
}

func TestExecute_HelpAndVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "--help", "ignored-file")
	if code != shamv.ExitSuccess || !strings.Contains(stdout, "--dry-run") {
		t.Errorf("help: exit = %d, stdout = %q", code, stdout)
	}

	code, stdout, _ = runCLI(t, "-V")
	if code != shamv.ExitSuccess || stdout != "shamv version "+version+"\n" {
		t.Errorf("version: exit = %d, stdout = %q", code, stdout)
	}
}

func TestExecute_ListAlgorithms(t *testing.T) {
	code, stdout, _ := runCLI(t, "--list-algorithms")
	if code != shamv.ExitSuccess {
		t.Fatalf("exit = %d", code)
	}

	for _, name := range []string{"sha224", "sha256", "sha384", "sha512", "blake3"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("missing %s in %q", name, stdout)
		}
	}
}
