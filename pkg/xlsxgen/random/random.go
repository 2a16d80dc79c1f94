// Package random provides seeded generators for synthetic cell values.
package random

import (
	"math/rand/v2"
	"strings"
)

// Letters is the alphabet used for random names and email local parts.
const Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// EmailLocalLength is the number of letters before the @ in generated emails.
const EmailLocalLength = 10

// MaxBalance is the exclusive upper bound of generated balances.
const MaxBalance = 1_000_000

// balanceCents is MaxBalance expressed in hundredths.
const balanceCents = MaxBalance * 100

// Domains lists the email domains drawn by Email.
var Domains = []string{"example.com", "mail.com", "test.org", "bigdata.net"}

// Source produces random values from an explicit PRNG instance.
// A Source is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed. Equal seeds yield equal sequences.
func New(seed uint64) *Source {
	return &Source{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// String returns length letters drawn uniformly from Letters.
// Non-positive lengths yield an empty string.
func (s *Source) String(length int) string {
	if length <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(Letters[s.rng.IntN(len(Letters))])
	}
	return sb.String()
}

// Email returns an address of the form <10 letters>@<domain>.
func (s *Source) Email() string {
	local := s.String(EmailLocalLength)
	return local + "@" + Domains[s.rng.IntN(len(Domains))]
}

// Balance returns a value in [0, MaxBalance) with two decimal places.
// Sampling whole cents keeps the rounded value below MaxBalance.
func (s *Source) Balance() float64 {
	return float64(s.rng.Int64N(balanceCents)) / 100
}
