// Package seed implements the deterministic domain-data generator. Given a
// single integer seed it produces the complete, internally consistent entity
// graph served by the backend; every run with the same seed produces
// identical output.
package seed

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// streams bundles the two independent deterministic random sources: a text
// stream for names, emails and phone numbers, and a numeric stream for
// floats, integers and enum picks. Re-seeding from the same seed reproduces
// the same sequence of draws on both.
type streams struct {
	text *gofakeit.Faker
	num  *rand.Rand
}

func newStreams(seed int64) *streams {
	return &streams{
		text: gofakeit.New(seed),
		num:  rand.New(rand.NewSource(seed)),
	}
}

// uniform draws a float in [min, max) from the numeric stream.
func (s *streams) uniform(min, max float64) float64 {
	return min + s.num.Float64()*(max-min)
}

// intBetween draws an integer in [min, max] from the numeric stream.
func (s *streams) intBetween(min, max int) int {
	return min + s.num.Intn(max-min+1)
}

// pick draws one element of choices from the numeric stream.
func pick[T any](s *streams, choices ...T) T {
	return choices[s.num.Intn(len(choices))]
}

// date draws a calendar date between Jan 1 of startYear and Dec 31 of
// endYear from the numeric stream.
func (s *streams) date(startYear, endYear int) time.Time {
	start := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.intBetween(0, days))
}

// datetime draws a business-hours timestamp on a random date.
func (s *streams) datetime(startYear, endYear int) time.Time {
	d := s.date(startYear, endYear)
	hour := s.intBetween(6, 20)
	minute := pick(s, 0, 15, 30, 45)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

// round2 rounds a monetary value to 2 decimal places exactly.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// round1 rounds to 1 decimal place, used for ratings and percentages.
func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

const dateLayout = "2006-01-02"
