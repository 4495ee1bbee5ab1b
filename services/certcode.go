package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateCertificateCode builds a code of the form WORKSHOP-DDDD-XXXX. The
// middle part is the last four digits of the registration number; when the
// number has no digits at all a random zero-padded group stands in. The
// tail is four random charset characters. Codes are not checked for
// uniqueness against existing winners; collisions are accepted.
func GenerateCertificateCode(workshopID, regNo string) string {
	workshop := strings.ToUpper(workshopID)
	if workshop == "" {
		workshop = "WS"
	}

	digits := keepDigits(regNo)
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	if digits == "" {
		digits = fmt.Sprintf("%04d", seededRand.Intn(10000))
	}

	var sb strings.Builder
	sb.Grow(4)
	for i := 0; i < 4; i++ {
		sb.WriteByte(codeCharset[seededRand.Intn(len(codeCharset))])
	}

	return fmt.Sprintf("%s-%s-%s", workshop, digits, sb.String())
}

func keepDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
