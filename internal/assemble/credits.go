package assemble

import "github.com/Matheusmno/MWebCrawler/internal/patterns"

// Credits is the theory/practice/extension/study breakdown of a discipline.
// All four keys are always serialized.
type Credits struct {
	Theory    int `json:"Teoria"`
	Practice  int `json:"Prática"`
	Extension int `json:"Extensão"`
	Study     int `json:"Estudo"`
}

func (c Credits) Total() int {
	return c.Theory + c.Practice + c.Extension + c.Study
}

func NewCredits(theory, practice, extension, study string) (Credits, error) {
	var out Credits
	var err error
	if out.Theory, err = Int("credits.theory", theory); err != nil {
		return Credits{}, err
	}
	if out.Practice, err = Int("credits.practice", practice); err != nil {
		return Credits{}, err
	}
	if out.Extension, err = Int("credits.extension", extension); err != nil {
		return Credits{}, err
	}
	if out.Study, err = Int("credits.study", study); err != nil {
		return Credits{}, err
	}
	return out, nil
}

// CreditsFrom reads the "theory", "practice", "extension" and "study"
// fields of a capture.
func CreditsFrom(c patterns.Capture) (Credits, error) {
	return NewCredits(
		c.Field("theory"),
		c.Field("practice"),
		c.Field("extension"),
		c.Field("study"),
	)
}
