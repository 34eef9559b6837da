package github

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
)

func TestResolveAccountType(t *testing.T) {
	tests := []struct {
		name   string
		login  string
		status int
		body   string
		want   domain.AccountType
	}{
		{
			name:   "user resolves to individual",
			login:  "octocat",
			status: http.StatusOK,
			body:   `{"login": "octocat", "type": "User"}`,
			want:   domain.AccountIndividual,
		},
		{
			name:   "organization resolves to group",
			login:  "acme",
			status: http.StatusOK,
			body:   `{"login": "acme", "type": "Organization"}`,
			want:   domain.AccountGroup,
		},
		{
			name:   "not found fails open to individual",
			login:  "ghost-user",
			status: http.StatusNotFound,
			body:   `{"message": "Not Found"}`,
			want:   domain.AccountIndividual,
		},
		{
			name:   "server error fails open to individual",
			login:  "octocat",
			status: http.StatusInternalServerError,
			body:   `{"message": "boom"}`,
			want:   domain.AccountIndividual,
		},
		{
			name:   "missing type defaults to individual",
			login:  "octocat",
			status: http.StatusOK,
			body:   `{"login": "octocat"}`,
			want:   domain.AccountIndividual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/users/"+tt.login, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			client := newTestClient(t, mux, &nopQuota{})
			got := client.ResolveAccountType(context.Background(), tt.login)
			assert.Equal(t, tt.want, got)
		})
	}
}
