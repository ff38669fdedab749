package shell

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const loanIDPrefix = "loan"

// NewLoanID creates a prefixed unique loan id, e.g. "loan-V1StGXR8_Z5jdHi6B-myT".
func NewLoanID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate loan id: %w", err)
	}

	return loanIDPrefix + "-" + id, nil
}
