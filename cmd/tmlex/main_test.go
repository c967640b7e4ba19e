package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "src.tm")
	if err := os.WriteFile(name, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRun(t *testing.T) {
	name := writeSource(t, "let x = 'a'\n@ 7")
	td := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{name}, "Let\nIdent \"x\"\nEquals\nSym 97\nExec\nSym 7\n"},
		{"pos", []string{"-pos", name}, name + ":1:1\tLet\n" +
			name + ":1:5\tIdent \"x\"\n" +
			name + ":1:7\tEquals\n" +
			name + ":1:9\tSym 97\n" +
			name + ":2:1\tExec\n" +
			name + ":2:3\tSym 7\n"},
	}
	for _, tt := range td {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("\nGot     : %q\nExpected: %q", got, tt.want)
			}
		})
	}
}

func TestRun_json(t *testing.T) {
	name := writeSource(t, "accept 0 q")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-json", name}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	want := `{"pos":"` + name + `:1:1","token":"Accept"}` + "\n" +
		`{"pos":"` + name + `:1:8","token":"Sym","sym":0}` + "\n" +
		`{"pos":"` + name + `:1:10","token":"Ident","text":"q"}` + "\n"
	if got := stdout.String(); got != want {
		t.Errorf("\nGot     : %q\nExpected: %q", got, want)
	}
}

func TestRun_lexError(t *testing.T) {
	name := writeSource(t, "let x = 300")
	var stdout, stderr bytes.Buffer
	if code := run([]string{name}, &stdout, &stderr); code != 1 {
		t.Fatalf("got exit code %d, expected 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected output %q", stdout.String())
	}
	want := name + ":1:9: error symbol number too big (max 255)\n|let x = 300\n|        ^\n"
	if got := stderr.String(); got != want {
		t.Errorf("\nGot     : %q\nExpected: %q", got, want)
	}
}

func TestRun_verbose(t *testing.T) {
	name := writeSource(t, "reject")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v", "2", name}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	for _, s := range []string{"level=debug msg=lexing", "level=trace msg=emit", "msg=\"lexing done\""} {
		if !strings.Contains(stderr.String(), s) {
			t.Errorf("missing %q in log output:\n%s", s, stderr.String())
		}
	}
}

func TestRun_badArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Errorf("no args: got exit code %d, expected 2", code)
	}
	if !strings.Contains(stderr.String(), "usage: tmlex") {
		t.Errorf("missing usage in %q", stderr.String())
	}
	if code := run([]string{"-nope", "x"}, &stdout, &stderr); code != 2 {
		t.Errorf("bad flag: got exit code %d, expected 2", code)
	}
}

func TestRun_missingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	name := filepath.Join(t.TempDir(), "missing.tm")
	if code := run([]string{name}, &stdout, &stderr); code != 1 {
		t.Fatalf("got exit code %d, expected 1", code)
	}
	if !strings.Contains(stderr.String(), "tmlex: read") {
		t.Errorf("unexpected log output %q", stderr.String())
	}
}
