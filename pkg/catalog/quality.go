package catalog

import "strings"

// QualityTier identifies a material or finish quality tier.
type QualityTier string

const (
	QualityStandard QualityTier = "standard"
	QualityPremium  QualityTier = "premium"
	QualityLuxury   QualityTier = "luxury"
)

// ParseQualityTier matches a tier label case-insensitively. The boolean
// reports whether the label is one of the recognized tiers.
func ParseQualityTier(label string) (QualityTier, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case string(QualityStandard):
		return QualityStandard, true
	case string(QualityPremium):
		return QualityPremium, true
	case string(QualityLuxury):
		return QualityLuxury, true
	}
	return QualityStandard, false
}

// factor returns the built-in quantity multiplier for a tier. Unknown tiers
// deliberately fall through to 1.00 rather than erroring so that forward-
// compatible quality labels degrade to standard quantities; the default arm
// keeps that leniency visible.
func (t QualityTier) factor() float64 {
	switch t {
	case QualityStandard:
		return 1.00
	case QualityPremium:
		return 1.10
	case QualityLuxury:
		return 1.20
	default:
		return 1.00
	}
}
