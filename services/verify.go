package services

import "strings"

// VerifyCertificate looks up a winner by registration number and
// certificate code and returns the certificate file name. The registration
// number is compared case-insensitively, the code case-sensitively; both
// sides are trimmed before comparison.
func (s *WinnerStore) VerifyCertificate(regNo, certificateCode string) (string, error) {
	if strings.TrimSpace(regNo) == "" || strings.TrimSpace(certificateCode) == "" {
		return "", &ValidationError{Message: "Registration number and certificate code are required."}
	}

	wantReg := strings.ToLower(strings.TrimSpace(regNo))
	wantCode := strings.TrimSpace(certificateCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.winners {
		if strings.ToLower(strings.TrimSpace(w.RegNo)) == wantReg &&
			strings.TrimSpace(w.CertificateCode) == wantCode {
			return w.CertificateFile, nil
		}
	}
	return "", ErrNoMatch
}
