package utils

import (
	"strconv"
	"testing"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateOTP()

		if len(code) != 4 {
			t.Fatalf("GenerateOTP() = %q, want 4 digits", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("GenerateOTP() = %q, not numeric: %v", code, err)
		}
		if n < 1000 || n > 9999 {
			t.Fatalf("GenerateOTP() = %d, want in [1000, 9999]", n)
		}
	}
}
