package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// DeriveID builds a stable property identifier from the fields that survive
// relisting. The source assigns fresh listing ids when a property reappears,
// so identity is derived instead: strip punctuation, lowercase, join with
// underscores.
func DeriveID(title, location, size string) string {
	clean := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(nonWord.ReplaceAllString(s, "")), " ", "_")
	}
	return strings.ToLower(clean(title) + "_" + clean(location) + "_" + clean(size))
}

// ParsePrice extracts a numeric RM value from a raw price string such as
// "RM351,000", "RM 1.2m" or "850k".
func ParsePrice(raw string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "rm")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "m")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("parse price %q: non-positive value", raw)
	}
	return v * multiplier, nil
}

// ParseSize extracts square feet from a raw size string such as "1,755 sq.ft".
func ParseSize(raw string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, suffix := range []string{"sq.ft.", "sq.ft", "sqft", "sq ft"} {
		s = strings.TrimSuffix(s, suffix)
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("parse size %q: non-positive value", raw)
	}
	return v, nil
}

// ParsePropertyType maps a raw category string onto a tracked type.
func ParsePropertyType(raw string) PropertyType {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range TrackedTypes {
		if strings.Contains(s, strings.ToLower(string(t))) {
			return t
		}
	}
	return TypeUnknown
}
