package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePullRequestRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PullRequestRef
		wantErr bool
	}{
		{
			name:  "full HTTPS URL",
			input: "https://github.com/codariq/reviewkit/pull/123",
			want:  PullRequestRef{Owner: "codariq", Repo: "reviewkit", Number: 123},
		},
		{
			name:  "URL without scheme",
			input: "github.com/codariq/reviewkit/pull/456",
			want:  PullRequestRef{Owner: "codariq", Repo: "reviewkit", Number: 456},
		},
		{
			name:  "URL with trailing slash",
			input: "https://github.com/codariq/reviewkit/pull/789/",
			want:  PullRequestRef{Owner: "codariq", Repo: "reviewkit", Number: 789},
		},
		{
			name:  "short form",
			input: "codariq/reviewkit#42",
			want:  PullRequestRef{Owner: "codariq", Repo: "reviewkit", Number: 42},
		},
		{
			name:    "non-numeric PR number",
			input:   "https://github.com/codariq/reviewkit/pull/abc",
			wantErr: true,
		},
		{
			name:    "issue URL",
			input:   "https://github.com/codariq/reviewkit/issues/123",
			wantErr: true,
		},
		{
			name:    "extra path segments",
			input:   "https://github.com/codariq/reviewkit/pull/123/files",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePullRequestRef(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPullRequestRefString(t *testing.T) {
	ref := PullRequestRef{Owner: "codariq", Repo: "reviewkit", Number: 7}
	assert.Equal(t, "codariq/reviewkit#7", ref.String())
}
