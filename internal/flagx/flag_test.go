package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-d", "-s"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate value form",
			args: []string{"-d", "/tmp/data", "-x", "ignored"},
			want: []string{"-d", "/tmp/data"},
		},
		{
			name: "equals form",
			args: []string{"-s=sqlite", "-x=ignored"},
			want: []string{"-s=sqlite"},
		},
		{
			name: "mixed forms",
			args: []string{"-d=/tmp", "-s", "memory"},
			want: []string{"-d=/tmp", "-s", "memory"},
		},
		{
			name: "boolean-style flag followed by another flag",
			args: []string{"-d", "-s", "file"},
			want: []string{"-d", "-s", "file"},
		},
		{
			name: "nothing allowed",
			args: []string{"-x", "1", "-y=2"},
			want: []string{},
		},
		{
			name: "empty args",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"long form", []string{"app", "-config", "/etc/app.json"}, "/etc/app.json"},
		{"short form", []string{"app", "-c", "cfg.json"}, "cfg.json"},
		{"equals form", []string{"app", "-config=/opt/cfg.json"}, "/opt/cfg.json"},
		{"absent", []string{"app", "-d", "/tmp"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
