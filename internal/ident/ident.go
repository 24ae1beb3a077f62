package ident

import (
	"math/rand"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Length of every generated identifier.
const Length = 9

// New returns a short base-36 identifier. Uniqueness is probabilistic: at
// 36^9 possible values, collisions are accepted as negligible rather than
// checked.
func New() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
