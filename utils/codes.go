package utils

import (
	"math/rand"
	"strconv"
	"strings"
)

// Generate6DigitCode returns a random 6-digit numeric code (user/friend codes)
func Generate6DigitCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}

// Generate5DigitCode returns a random 5-digit numeric code (list invite codes)
func Generate5DigitCode() string {
	return strconv.Itoa(10000 + rand.Intn(90000))
}

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateBase36Code returns a random uppercase alphanumeric code of length n
func GenerateBase36Code(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return b.String()
}
