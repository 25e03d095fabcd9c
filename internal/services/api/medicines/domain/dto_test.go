package domain

import (
	"testing"

	"pillbox/internal/platform/net/http/bind"
)

func TestQueryDTOs_Bind(t *testing.T) {
	for name, check := range map[string]func() error{
		"SearchQuery":  bind.CheckQuery[SearchQuery],
		"RelatedQuery": bind.CheckQuery[RelatedQuery],
	} {
		if err := check(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}
