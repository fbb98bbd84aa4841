package parse

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "switches and values",
			input: "-F log.txt --verbose",
			want:  []string{"-F", "log.txt", "--verbose"},
		},
		{
			name:  "quoted value keeps its spaces",
			input: `--message "hello world"`,
			want:  []string{"--message", "hello world"},
		},
		{
			name:  "single and double quotes",
			input: `--first "one two" --second 'three four'`,
			want:  []string{"--first", "one two", "--second", "three four"},
		},
		{
			name:  "escaped quotes",
			input: `--say \"hi\"`,
			want:  []string{"--say", `"hi"`},
		},
		{
			name:  "switch=params stays a single token",
			input: "--set=a,b,c",
			want:  []string{"--set=a,b,c"},
		},
		{
			name:  "runs of whitespace collapse",
			input: "cmd   arg1    arg2",
			want:  []string{"cmd", "arg1", "arg2"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:    "unterminated quote",
			input:   `--message "unterminated`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Split() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}
