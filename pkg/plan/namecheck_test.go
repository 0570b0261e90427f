package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	tests := []struct {
		name        string
		proposed    string
		windowsSafe bool
		wantErr     bool
		errContains string
	}{
		{name: "plain_name", proposed: "photo_0001.jpg"},
		{name: "dotfile", proposed: ".bashrc"},
		{name: "unicode", proposed: "fotografía.jpg"},
		{name: "windows_chars_pass_without_windows_safe", proposed: `a:b?.jpg`},
		{name: "trailing_dot_passes_without_windows_safe", proposed: "a."},
		{
			name:        "empty",
			proposed:    "",
			wantErr:     true,
			errContains: "empty name",
		},
		{
			name:        "dot",
			proposed:    ".",
			wantErr:     true,
			errContains: "directory reference",
		},
		{
			name:        "dotdot",
			proposed:    "..",
			wantErr:     true,
			errContains: "directory reference",
		},
		{
			name:        "path_separator",
			proposed:    "a/b.jpg",
			wantErr:     true,
			errContains: "path separator",
		},
		{
			name:        "nul_byte",
			proposed:    "a\x00b.jpg",
			wantErr:     true,
			errContains: "NUL",
		},
		{
			name:        "control_character",
			proposed:    "a\tb.jpg",
			wantErr:     true,
			errContains: "control character",
		},
		{
			name:        "windows_reserved_character",
			proposed:    "a?.jpg",
			windowsSafe: true,
			wantErr:     true,
			errContains: "reserved on Windows",
		},
		{
			name:        "windows_backslash",
			proposed:    `a\b.jpg`,
			windowsSafe: true,
			wantErr:     true,
			errContains: "reserved on Windows",
		},
		{
			name:        "windows_trailing_dot",
			proposed:    "a.",
			windowsSafe: true,
			wantErr:     true,
			errContains: "ends with a dot or space",
		},
		{
			name:        "windows_trailing_space",
			proposed:    "a ",
			windowsSafe: true,
			wantErr:     true,
			errContains: "ends with a dot or space",
		},
		{
			name:        "windows_device_name",
			proposed:    "CON",
			windowsSafe: true,
			wantErr:     true,
			errContains: "reserved device name",
		},
		{
			name:        "windows_device_name_with_extension",
			proposed:    "con.txt",
			windowsSafe: true,
			wantErr:     true,
			errContains: "reserved device name",
		},
		{
			name:        "windows_device_name_compound_extension",
			proposed:    "COM3.tar.gz",
			windowsSafe: true,
			wantErr:     true,
			errContains: "reserved device name",
		},
		{
			name:        "windows_device_prefix_is_fine",
			proposed:    "CONSOLE.txt",
			windowsSafe: true,
		},
		{
			name:        "windows_plain_name_is_fine",
			proposed:    "report-2024.pdf",
			windowsSafe: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validator{WindowsSafe: tt.windowsSafe}.Validate(tt.proposed)
			if tt.wantErr {
				require.Error(t, err, "Validate should reject the name")
				assert.Contains(t, err.Error(), tt.errContains, "error should name the rule")
				return
			}
			assert.NoError(t, err, "Validate should accept the name")
		})
	}
}

func TestValidateFragment(t *testing.T) {
	tests := []struct {
		name        string
		fragment    string
		windowsSafe bool
		wantErr     bool
		errContains string
	}{
		{name: "underscore", fragment: "_"},
		{name: "empty_is_fine", fragment: ""},
		{name: "dot", fragment: "."},
		{name: "colon_without_windows_safe", fragment: ":"},
		{
			name:        "path_separator",
			fragment:    "a/b",
			wantErr:     true,
			errContains: "path separator",
		},
		{
			name:        "control_character",
			fragment:    "\t",
			wantErr:     true,
			errContains: "control character",
		},
		{
			name:        "windows_colon",
			fragment:    ":",
			windowsSafe: true,
			wantErr:     true,
			errContains: "reserved on Windows",
		},
		{
			name:        "windows_backslash",
			fragment:    `\`,
			windowsSafe: true,
			wantErr:     true,
			errContains: "reserved on Windows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validator{WindowsSafe: tt.windowsSafe}.ValidateFragment(tt.fragment)
			if tt.wantErr {
				require.Error(t, err, "ValidateFragment should reject the fragment")
				assert.Contains(t, err.Error(), tt.errContains, "error should name the rule")
				return
			}
			assert.NoError(t, err, "ValidateFragment should accept the fragment")
		})
	}
}
