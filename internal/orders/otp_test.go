package orders

import "testing"

func TestGenerateOTP_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp, err := GenerateOTP()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(otp) != 6 {
			t.Fatalf("expected 6 characters, got %q", otp)
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit character in otp %q", otp)
			}
		}
	}
}
