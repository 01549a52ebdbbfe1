package aigateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{12.345, 12.35},
		{12.344, 12.34},
		{0.005, 0.01},
		{100, 100},
		{-3.5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundMoney(tt.in), "RoundMoney(%v)", tt.in)
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.3, 0.5},
		{0, 0.5},
		{-2, 0.5},
		{1.2, 1.0},
		{1.25, 1.5},
		{7.8, 8.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHours(tt.in), "RoundHours(%v)", tt.in)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("Error 429, Message: quota"), true},
		{errors.New("Rate limit reached"), true},
		{errors.New("RESOURCE_EXHAUSTED"), true},
		{errors.New("503 Service Unavailable"), true},
		{errors.New("The model is overloaded"), true},
		{errors.New("i/o timeout"), true},
		{errors.New("context deadline exceeded"), true},
		{errors.New("400 INVALID_ARGUMENT"), false},
		{errors.New("permission denied"), false},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTransient(tt.err), "IsTransient(%v)", tt.err)
	}
}

func TestCleanPostcode(t *testing.T) {
	assert.Equal(t, "SW1A 1AA", cleanPostcode(" sw1a   1aa"))
	assert.Equal(t, "", cleanPostcode("  "))
}
