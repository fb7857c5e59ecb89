package server_test

import (
	"testing"
	"time"

	"shop-audit/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_CacheTTL(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"Configured", 15, 15 * time.Second},
		{"Zero", 0, time.Minute},
		{"Negative", -5, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{CacheTTLSeconds: tt.seconds}
			assert.Equal(t, tt.want, c.CacheTTL())
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Address())
}
