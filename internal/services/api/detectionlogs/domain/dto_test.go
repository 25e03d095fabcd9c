package domain

import (
	"testing"

	"pillbox/internal/platform/net/http/bind"
)

func TestListQuery_Binds(t *testing.T) {
	if err := bind.CheckQuery[ListQuery](); err != nil {
		t.Fatal(err)
	}
}
