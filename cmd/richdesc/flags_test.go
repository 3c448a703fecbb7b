package main

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    cliFlags
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{"richdesc"},
			want: cliFlags{dialect: "constrained"},
		},
		{
			name: "positional input",
			args: []string{"richdesc", "desc.md"},
			want: cliFlags{input: "desc.md", dialect: "constrained"},
		},
		{
			name: "all flags",
			args: []string{"richdesc", "--output", "out.html", "--policy", "p.yaml", "--dialect", "extended", "--fallback", "n/a", "-q", "in.md"},
			want: cliFlags{
				input:    "in.md",
				output:   "out.html",
				policy:   "p.yaml",
				dialect:  "extended",
				fallback: "n/a",
				quiet:    true,
			},
		},
		{
			name: "short output flag",
			args: []string{"richdesc", "-o", "out.html"},
			want: cliFlags{output: "out.html", dialect: "constrained"},
		},
		{
			name:    "too many positionals",
			args:    []string{"richdesc", "a.md", "b.md"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"richdesc", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseFlags_TooManyArgsError(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"richdesc", "a", "b"})
	if !errors.Is(err, ErrTooManyArgs) {
		t.Errorf("want ErrTooManyArgs, got %v", err)
	}
}
