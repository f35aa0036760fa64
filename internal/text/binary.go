package text

// BinarySampleSize is how many leading bytes of a file the binary heuristic
// inspects.
const BinarySampleSize = 8 * 1024

// nonPrintableLimit is the fraction of sampled bytes allowed to fall outside
// the printable set before the sample counts as binary. The threshold is a
// judgment call, kept here so it can be tuned in one place.
const nonPrintableLimit = 0.30

// LooksBinary reports whether sample is more likely binary than text. A null
// byte anywhere is taken as proof. Otherwise the sample is binary when more
// than 30% of its bytes fall outside the printable set: tab, LF, CR, form
// feed, escape, and everything from 0x20 upward.
func LooksBinary(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range sample {
		if b == 0x00 {
			return true
		}
		if !printable(b) {
			nonPrintable++
		}
	}

	return float64(nonPrintable) > nonPrintableLimit*float64(len(sample))
}

func printable(b byte) bool {
	switch b {
	case '\t', '\n', '\r', '\f', 0x1b:
		return true
	}
	return b >= 0x20
}
