package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"trainer@vitalfit.kr",
		"first.last@example.com",
		"user+tag@sub.domain.org",
	}
	invalid := []string{
		"",
		"not-an-email",
		"@missing-local.com",
		"missing-domain@",
		"spaces in@email.com",
	}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190e7d3-7b2a-7c4d-8f3e-1a2b3c4d5e6f"))
	// Version 4 is rejected, only v7 is accepted
	assert.False(t, IsValidUUID("123e4567-e89b-42d3-a456-426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-07-05")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("05-07-2024")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("010-1234-5678"))
	assert.True(t, IsValidPhoneNumber("01012345678"))
	assert.True(t, IsValidPhoneNumber("010-123-4567"))
	assert.False(t, IsValidPhoneNumber("02-1234-5678"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber(""))
}

func TestIsValidYearMonth(t *testing.T) {
	assert.True(t, IsValidYearMonth(2024, 7))
	assert.True(t, IsValidYearMonth(2024, 1))
	assert.True(t, IsValidYearMonth(2024, 12))
	assert.False(t, IsValidYearMonth(2024, 0))
	assert.False(t, IsValidYearMonth(2024, 13))
	assert.False(t, IsValidYearMonth(1999, 6))
}
