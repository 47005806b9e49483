package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandomInt generates a random integer between min and max
func RandomInt(min, max int32) int32 {
	return min + rand.Int31n(max-min+1)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomEmail generates a random email
func RandomEmail() string {
	return fmt.Sprintf("%s@email.com", RandomString(6))
}

// RandomRate generates a random rate between min and max, in percent
func RandomRate(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomCurve generates an upward-drifting spot curve of n points in percent
func RandomCurve(n int) []float64 {
	curve := make([]float64, n)
	level := RandomRate(3.0, 7.0)
	for i := range curve {
		level += rand.Float64() * 0.5
		curve[i] = level
	}
	return curve
}

func RandomFloats() float64 {
	return rand.Float64()
}
