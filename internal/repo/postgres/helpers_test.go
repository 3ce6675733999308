package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	nameUniq := &pgconn.PgError{Code: "23505", ConstraintName: "registrations_name_uniq"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", nameUniq, "registrations_name_uniq", true},
		{"any constraint", nameUniq, "", true},
		{"different constraint", nameUniq, "deliveries_pkey", false},
		{"wrapped", fmt.Errorf("insert: %w", nameUniq), "registrations_name_uniq", true},
		{"other pg code", &pgconn.PgError{Code: "23503"}, "", false},
		{"plain error", errors.New("db down"), "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err, tt.constraint); got != tt.want {
				t.Fatalf("IsUniqueViolation(%v, %q) = %v, want %v", tt.err, tt.constraint, got, tt.want)
			}
		})
	}
}
