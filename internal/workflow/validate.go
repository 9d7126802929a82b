package workflow

import "regexp"

// Same patterns the form applies inline: a standard local@domain.tld
// shape and exactly ten digits.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)
