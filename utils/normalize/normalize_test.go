package normalize_test

import (
	"testing"

	"github.com/muhammadheryan/contact-manager/utils/normalize"
	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", normalize.Email("  Jane.DOE@Example.COM "))
	assert.Equal(t, "a@x.com", normalize.Email("A@x.com"))
	assert.Equal(t, "", normalize.Email("   "))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "1234567890", normalize.Phone("(123) 456-7890"))
	assert.Equal(t, "1234567890", normalize.Phone("1234567890"))
	assert.Equal(t, "12345", normalize.Phone("call 1-23-45 now"))
	assert.Equal(t, "", normalize.Phone("no digits here"))
}

func TestIdempotency(t *testing.T) {
	emails := []string{"A@X.Com", "  mixed.Case@Domain.io ", "a@b.co"}
	for _, e := range emails {
		once := normalize.Email(e)
		assert.Equal(t, once, normalize.Email(once))
	}

	phones := []string{"(123) 456-7890", "+1 800 555 0100", "1234567890"}
	for _, p := range phones {
		once := normalize.Phone(p)
		assert.Equal(t, once, normalize.Phone(once))
	}
}
