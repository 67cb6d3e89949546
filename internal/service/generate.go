package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"devtools/backend/internal/model"

	"github.com/google/uuid"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	noCharsetMessage = "select at least one character set"

	defaultPasswordLength = 16
	defaultTokenLength    = 32
	maxSecretLength       = 1024
)

// CharsetOptions selects the character classes of a generated secret.
type CharsetOptions struct {
	Upper, Lower, Digits, Symbols bool
}

func (o CharsetOptions) sets() []string {
	var sets []string
	if o.Upper {
		sets = append(sets, upperChars)
	}
	if o.Lower {
		sets = append(sets, lowerChars)
	}
	if o.Digits {
		sets = append(sets, digitChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// GenerateToken draws length characters uniformly from the enabled sets.
func GenerateToken(r RandSource, length int, opts CharsetOptions) string {
	charset := strings.Join(opts.sets(), "")
	if charset == "" {
		return noCharsetMessage
	}
	length = clamp(length, 0, maxSecretLength)
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[r.IntN(len(charset))]
	}
	return string(b)
}

// GeneratePassword is GenerateToken with at least one character from every
// enabled set. When length is shorter than the number of sets it falls back
// to a plain token.
func GeneratePassword(r RandSource, length int, opts CharsetOptions) string {
	sets := opts.sets()
	if len(sets) == 0 {
		return noCharsetMessage
	}
	length = clamp(length, 0, maxSecretLength)
	if length < len(sets) {
		return GenerateToken(r, length, opts)
	}

	charset := strings.Join(sets, "")
	b := make([]byte, 0, length)
	for _, set := range sets {
		b = append(b, set[r.IntN(len(set))])
	}
	for len(b) < length {
		b = append(b, charset[r.IntN(len(charset))])
	}
	for i := len(b) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// CharsetFromRequest resolves the request defaults: every flag on unless
// explicitly disabled, length from defaultLength unless given.
func CharsetFromRequest(req model.CharsetRequest, defaultLength int) (int, CharsetOptions) {
	flag := func(b *bool) bool { return b == nil || *b }
	length := defaultLength
	if req.Length != nil {
		length = *req.Length
	}
	return length, CharsetOptions{
		Upper:   flag(req.Uppercase),
		Lower:   flag(req.Lowercase),
		Digits:  flag(req.Numbers),
		Symbols: flag(req.Symbols),
	}
}

const maxUUIDs = 20

// GenerateUUIDs returns count random (v4) UUIDs, at most maxUUIDs.
func GenerateUUIDs(count int, hyphens, upper bool) ([]string, error) {
	count = clamp(count, 0, maxUUIDs)
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		u, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("generate uuid: %w", err)
		}
		s := u.String()
		if !hyphens {
			s = strings.ReplaceAll(s, "-", "")
		}
		if upper {
			s = strings.ToUpper(s)
		}
		out = append(out, s)
	}
	return out, nil
}

// GenerateCreditCards produces test card numbers with a valid Luhn check
// digit. They are not real accounts.
func GenerateCreditCards(r RandSource, count int, issuer string, now time.Time) []model.CreditCard {
	if count == 0 {
		count = 5
	}
	count = clamp(count, 1, 50)
	if issuer == "" {
		issuer = "visa"
	}

	cards := make([]model.CreditCard, 0, count)
	for i := 0; i < count; i++ {
		length, digits := 16, []int{4}
		switch issuer {
		case "mastercard":
			digits = []int{5, between(r, 1, 6)}
		case "amex":
			length, digits = 15, []int{3, pick(r, []int{4, 7})}
		case "discover":
			digits = []int{6, 0, 1, 1}
		}
		for len(digits) < length-1 {
			digits = append(digits, r.IntN(10))
		}
		digits = append(digits, luhnCheckDigit(digits))

		var number strings.Builder
		for _, d := range digits {
			number.WriteString(strconv.Itoa(d))
		}
		cvvLen := 3
		if issuer == "amex" {
			cvvLen = 4
		}
		cvv := make([]byte, cvvLen)
		for j := range cvv {
			cvv[j] = digitChars[r.IntN(10)]
		}

		cards = append(cards, model.CreditCard{
			Number: number.String(),
			Issuer: issuer,
			Expiry: fmt.Sprintf("%02d/%02d", between(r, 1, 13), (now.Year()+between(r, 1, 6))%100),
			CVV:    string(cvv),
		})
	}
	return cards
}

// luhnCheckDigit computes the digit that makes payload+digit pass Luhn.
func luhnCheckDigit(payload []int) int {
	sum := 0
	for i := len(payload) - 1; i >= 0; i-- {
		v := payload[i]
		if (len(payload)-1-i)%2 == 0 {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	return (10 - sum%10) % 10
}

// LuhnValid reports whether number passes the Luhn checksum.
func LuhnValid(number string) bool {
	if len(number) < 2 {
		return false
	}
	sum := 0
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		v := int(c - '0')
		if (len(number)-1-i)%2 == 1 {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	return sum%10 == 0
}

type namePool struct {
	first, last, cities []string
}

var (
	enNames = namePool{
		first:  []string{"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda"},
		last:   []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"},
		cities: []string{"New York", "Los Angeles", "Chicago", "Houston"},
	}
	cnNames = namePool{
		first:  []string{"伟", "芳", "娜", "敏", "静", "秀英", "丽", "强", "磊", "军"},
		last:   []string{"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周"},
		cities: []string{"北京", "上海", "广州", "深圳"},
	}
	emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "example.com"}
)

// GenerateFakeUsers returns count fake profiles for the "en" or "cn" locale.
func GenerateFakeUsers(r RandSource, count int, locale string) []model.FakeUser {
	if count == 0 {
		count = 5
	}
	count = clamp(count, 1, 50)

	pool := enNames
	if locale == "cn" {
		pool = cnNames
	}

	users := make([]model.FakeUser, 0, count)
	for i := 0; i < count; i++ {
		first, last := pick(r, pool.first), pick(r, pool.last)
		domain, city := pick(r, emailDomains), pick(r, pool.cities)

		var u model.FakeUser
		if locale == "cn" {
			u = model.FakeUser{
				Name:    last + first,
				Email:   fmt.Sprintf("user%d@%s", between(r, 1000, 10000), domain),
				Address: fmt.Sprintf("%s市人民路 %d号", city, between(r, 1, 1000)),
				Phone:   fmt.Sprintf("1%d%d", between(r, 30, 100), between(r, 10000000, 100000000)),
			}
		} else {
			u = model.FakeUser{
				Name:    first + " " + last,
				Email:   fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), domain),
				Address: fmt.Sprintf("%d Main St, %s", between(r, 1, 10000), city),
				Phone:   fmt.Sprintf("+1-555-%d-%d", between(r, 100, 1000), between(r, 1000, 10000)),
			}
		}
		users = append(users, u)
	}
	return users
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit", "sed", "do",
	"eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore", "magna", "aliqua",
}

const loremParagraph = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

// GenerateLorem returns count words, sentences or paragraphs of filler text.
func GenerateLorem(r RandSource, count int, mode string) string {
	if count == 0 {
		count = 3
	}
	count = clamp(count, 1, 100)

	parts := make([]string, 0, count)
	switch mode {
	case "words":
		for i := 0; i < count; i++ {
			parts = append(parts, pick(r, loremWords))
		}
		return strings.Join(parts, " ")
	case "sentences":
		for i := 0; i < count; i++ {
			n := between(r, 5, 15)
			words := make([]string, n)
			for j := range words {
				words[j] = pick(r, loremWords)
			}
			s := strings.Join(words, " ")
			parts = append(parts, strings.ToUpper(s[:1])+s[1:]+".")
		}
		return strings.Join(parts, " ")
	default:
		for i := 0; i < count; i++ {
			parts = append(parts, loremParagraph)
		}
		return strings.Join(parts, "\n\n")
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
