// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestExtractRequirements(t *testing.T) {
	t.Parallel()
	host := Version{3, 9, 0}

	tests := []struct {
		name     string
		requires []string
		want     []string
	}{
		{
			name:     "unconditional requirements",
			requires: []string{"requests", "urllib3>=1.26", "charset-normalizer (<4,>=2)"},
			want:     []string{"requests", "urllib3", "charset-normalizer"},
		},
		{
			name:     "python_version satisfied",
			requires: []string{`importlib-metadata ; python_version < "3.10"`},
			want:     []string{"importlib-metadata"},
		},
		{
			name:     "python_version not satisfied",
			requires: []string{`tomli ; python_version < "3.9"`},
			want:     nil,
		},
		{
			name:     "extra marker excluded",
			requires: []string{`coverage ; extra == "test"`, `mypy ; extra == "test"`},
			want:     nil,
		},
		{
			name:     "platform marker excluded",
			requires: []string{`colorama ; platform_system == "Windows"`},
			want:     nil,
		},
		{
			name: "mixed markers keep declaration order",
			requires: []string{
				"idna",
				`zipp ; python_version < "3.10"`,
				`pytest ; extra == "dev"`,
				"certifi>=2017.4.17",
			},
			want: []string{"idna", "zipp", "certifi"},
		},
		{
			name:     "qualifier stripping",
			requires: []string{"pkg!=1.0", "other~=2.1", "spaced >= 1.0"},
			want:     []string{"pkg", "other", "spaced"},
		},
		{
			name:     "empty requires",
			requires: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := &Metadata{Requires: tt.requires}
			got := ExtractRequirements(md, host)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExtractRequirements() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractRequirements_NilMetadata(t *testing.T) {
	t.Parallel()
	if got := ExtractRequirements(nil, Version{3, 9, 0}); got != nil {
		t.Errorf("ExtractRequirements(nil) = %v, want nil", got)
	}
}
