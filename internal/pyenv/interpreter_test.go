// SPDX-License-Identifier: MPL-2.0

package pyenv

import "testing"

func TestFreezeLineName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "pinned", line: "requests==2.31.0", want: "requests"},
		{name: "direct reference", line: "mypkg @ file:///tmp/mypkg", want: "mypkg"},
		{name: "pinned with spaces", line: "  idna==3.4  ", want: "idna"},
		{name: "empty line", line: "", want: ""},
		{name: "blank line", line: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := freezeLineName(tt.line); got != tt.want {
				t.Errorf("freezeLineName(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
