package domain_test

import (
	"testing"

	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestStatusText(t *testing.T) {
	tests := []struct {
		code *int
		want string
	}{
		{intPtr(0), "not finalized"},
		{intPtr(1), "authorized"},
		{intPtr(2), "captured"},
		{intPtr(3), "denied"},
		{intPtr(10), "voided"},
		{intPtr(11), "refunded"},
		{intPtr(12), "pending"},
		{intPtr(13), "aborted"},
		{intPtr(20), "scheduled"},
		{intPtr(99), "Unknown (99)"},
		{intPtr(-1), "Unknown (-1)"},
		{nil, "Unknown (not informed)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.StatusText(tt.code))
	}
}

func TestReturnCodeText(t *testing.T) {
	assert.Equal(t, "Transaction approved (authorized).", domain.ReturnCodeText("00"))
	assert.Equal(t, "Transaction approved (authorized).", domain.ReturnCodeText("0"))
	assert.Equal(t, "Invalid CVV.", domain.ReturnCodeText("83"))
	assert.Equal(t, "Issuer unavailable. Try again.", domain.ReturnCodeText("91"))

	assert.Equal(t, "Return code not informed; contact the acquirer for details.", domain.ReturnCodeText(""))
	assert.Equal(t, "Return code 1234; contact the acquirer for details.", domain.ReturnCodeText("1234"))
	assert.Equal(t, "Return code GF; contact the acquirer for details.", domain.ReturnCodeText("GF"))
}
