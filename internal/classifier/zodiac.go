package classifier

import (
	"strings"
	"time"
)

// Sign is one of the twelve zodiac categories
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// Signs lists every sign starting at Aries
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

func (s Sign) String() string {
	return string(s)
}

// Valid reports whether s is one of the twelve signs
func (s Sign) Valid() bool {
	for _, known := range Signs {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSign looks a sign up by name, ignoring case and surrounding spaces
func ParseSign(name string) (Sign, bool) {
	name = strings.TrimSpace(name)
	for _, s := range Signs {
		if strings.EqualFold(name, string(s)) {
			return s, true
		}
	}
	return "", false
}

// ZodiacSign returns the sign owning the civil date's month and day.
// Ranges are checked in order and Pisces (Feb 19 - Mar 20) is the fallback.
func ZodiacSign(date time.Time) Sign {
	month := date.Month()
	day := date.Day()

	if (month == time.March && day >= 21) || (month == time.April && day <= 19) {
		return Aries
	} else if (month == time.April && day >= 20) || (month == time.May && day <= 20) {
		return Taurus
	} else if (month == time.May && day >= 21) || (month == time.June && day <= 20) {
		return Gemini
	} else if (month == time.June && day >= 21) || (month == time.July && day <= 22) {
		return Cancer
	} else if (month == time.July && day >= 23) || (month == time.August && day <= 22) {
		return Leo
	} else if (month == time.August && day >= 23) || (month == time.September && day <= 22) {
		return Virgo
	} else if (month == time.September && day >= 23) || (month == time.October && day <= 22) {
		return Libra
	} else if (month == time.October && day >= 23) || (month == time.November && day <= 21) {
		return Scorpio
	} else if (month == time.November && day >= 22) || (month == time.December && day <= 21) {
		return Sagittarius
	} else if (month == time.December && day >= 22) || (month == time.January && day <= 19) {
		return Capricorn
	} else if (month == time.January && day >= 20) || (month == time.February && day <= 18) {
		return Aquarius
	}
	return Pisces
}
