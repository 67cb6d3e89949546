package service

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"devtools/backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() RandSource {
	return rand.New(rand.NewPCG(1, 2))
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestGeneratePassword(t *testing.T) {
	all := CharsetOptions{Upper: true, Lower: true, Digits: true, Symbols: true}

	t.Run("zero length", func(t *testing.T) {
		assert.Equal(t, "", GeneratePassword(seeded(), 0, all))
	})

	t.Run("every class present", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			pw := GeneratePassword(NewRand(), 8, all)
			require.Len(t, pw, 8)
			assert.True(t, strings.ContainsAny(pw, upperChars), pw)
			assert.True(t, strings.ContainsAny(pw, lowerChars), pw)
			assert.True(t, strings.ContainsAny(pw, digitChars), pw)
			assert.True(t, strings.ContainsAny(pw, symbolChars), pw)
		}
	})

	t.Run("shorter than class count", func(t *testing.T) {
		assert.Len(t, GeneratePassword(seeded(), 2, all), 2)
	})

	t.Run("digits only", func(t *testing.T) {
		pw := GeneratePassword(seeded(), 12, CharsetOptions{Digits: true})
		assert.Regexp(t, `^[0-9]{12}$`, pw)
	})

	t.Run("no classes", func(t *testing.T) {
		assert.Equal(t, noCharsetMessage, GeneratePassword(seeded(), 12, CharsetOptions{}))
	})

	t.Run("deterministic with a seeded source", func(t *testing.T) {
		assert.Equal(t, GeneratePassword(seeded(), 16, all), GeneratePassword(seeded(), 16, all))
	})
}

func TestGenerateToken(t *testing.T) {
	tok := GenerateToken(seeded(), 32, CharsetOptions{Lower: true})
	assert.Regexp(t, `^[a-z]{32}$`, tok)
	assert.Equal(t, noCharsetMessage, GenerateToken(seeded(), 32, CharsetOptions{}))
	assert.Len(t, GenerateToken(seeded(), 5000, CharsetOptions{Lower: true}), maxSecretLength)
}

func TestCharsetFromRequest(t *testing.T) {
	length, opts := CharsetFromRequest(model.CharsetRequest{}, defaultPasswordLength)
	assert.Equal(t, 16, length)
	assert.Equal(t, CharsetOptions{Upper: true, Lower: true, Digits: true, Symbols: true}, opts)

	length, opts = CharsetFromRequest(model.CharsetRequest{
		Length:  intPtr(0),
		Symbols: boolPtr(false),
	}, defaultTokenLength)
	assert.Equal(t, 0, length)
	assert.False(t, opts.Symbols)
	assert.True(t, opts.Upper)
}

func TestGenerateUUIDs(t *testing.T) {
	ids, err := GenerateUUIDs(3, true, false)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, id)
	}

	ids, err = GenerateUUIDs(100, false, true)
	require.NoError(t, err)
	assert.Len(t, ids, maxUUIDs)
	assert.Regexp(t, `^[0-9A-F]{32}$`, ids[0])
}

func TestGenerateCreditCards(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		issuer string
		prefix string
		length int
		cvv    int
	}{
		{"visa", "4", 16, 3},
		{"mastercard", "5", 16, 3},
		{"amex", "3", 15, 4},
		{"discover", "6011", 16, 3},
	}

	for _, tc := range tests {
		t.Run(tc.issuer, func(t *testing.T) {
			cards := GenerateCreditCards(seeded(), 10, tc.issuer, now)
			require.Len(t, cards, 10)
			for _, c := range cards {
				assert.True(t, strings.HasPrefix(c.Number, tc.prefix), c.Number)
				assert.Len(t, c.Number, tc.length)
				assert.True(t, LuhnValid(c.Number), c.Number)
				assert.Len(t, c.CVV, tc.cvv)
				assert.Regexp(t, `^(0[1-9]|1[0-2])/(2[5-9])$`, c.Expiry)
				assert.Equal(t, tc.issuer, c.Issuer)
			}
		})
	}

	assert.Len(t, GenerateCreditCards(seeded(), 0, "", now), 5)
	assert.Len(t, GenerateCreditCards(seeded(), 500, "visa", now), 50)
	assert.Len(t, GenerateCreditCards(seeded(), -3, "visa", now), 1)
}

func TestLuhnValid(t *testing.T) {
	assert.True(t, LuhnValid("4111111111111111"))
	assert.True(t, LuhnValid("378282246310005"))
	assert.False(t, LuhnValid("4111111111111112"))
	assert.False(t, LuhnValid("4111-1111"))
	assert.False(t, LuhnValid("4"))
}

func TestGenerateFakeUsers(t *testing.T) {
	users := GenerateFakeUsers(seeded(), 0, "en")
	require.Len(t, users, 5)
	for _, u := range users {
		assert.Contains(t, u.Name, " ")
		assert.Contains(t, u.Email, "@")
		assert.True(t, strings.HasPrefix(u.Phone, "+1-555-"), u.Phone)
	}

	cn := GenerateFakeUsers(seeded(), 2, "cn")
	require.Len(t, cn, 2)
	assert.Regexp(t, `^1\d{10}$`, cn[0].Phone)
	assert.Contains(t, cn[0].Address, "市")

	assert.Len(t, GenerateFakeUsers(seeded(), 99, "en"), 50)
}

func TestGenerateLorem(t *testing.T) {
	words := GenerateLorem(seeded(), 7, "words")
	assert.Len(t, strings.Fields(words), 7)

	sentences := GenerateLorem(seeded(), 2, "sentences")
	assert.Equal(t, 2, strings.Count(sentences, "."))

	paragraphs := GenerateLorem(seeded(), 0, "paragraphs")
	assert.Len(t, strings.Split(paragraphs, "\n\n"), 3)
}
