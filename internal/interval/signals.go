package interval

import (
	"regexp"
	"strconv"
	"strings"
)

// numberWords covers the spelled-out counts people actually write in plans.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
}

const countExpr = `(\d{1,3}|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)`

var (
	reYearRange     = regexp.MustCompile(`\b((?:19|20)\d{2})\s*(?:to|through|until|-|–|—)\s*((?:19|20)\d{2})\b`)
	reYearCount     = regexp.MustCompile(`\b` + countExpr + `\s*-?\s*years?\b`)
	reMonthCount    = regexp.MustCompile(`\b` + countExpr + `\s*-?\s*months?\b`)
	reWeekCount     = regexp.MustCompile(`\b` + countExpr + `\s*-?\s*weeks?\b`)
	reSprintCount   = regexp.MustCompile(`\b` + countExpr + `\s*-?\s*sprints?\b`)
	reQuarterPhrase = regexp.MustCompile(`\b(q[1-4]|quarterly|quarter\s+plan|quarter\s+roadmap|fiscal\s+quarters?)\b`)
	reFiscalYear    = regexp.MustCompile(`\bfiscal\s+year\b`)
	reSprint        = regexp.MustCompile(`\b(sprints?|iterations?)\b`)
	reLongHorizon   = regexp.MustCompile(`\b(decades?|long-?term|strategic|multi-?year)\b`)
)

// YearRange is an explicit calendar range such as "2020 to 2030".
type YearRange struct {
	Start int
	End   int
}

// Span returns the inclusive number of years covered.
func (r YearRange) Span() int {
	return r.End - r.Start + 1
}

// Signals are the time cues found in a piece of text. Zero counts mean the
// cue is absent. Only the first occurrence of each count phrase is kept.
type Signals struct {
	YearRange      *YearRange
	Years          int
	Months         int
	Weeks          int
	Sprints        int
	QuarterPhrase  bool
	FiscalYear     bool
	SprintLanguage bool
	LongHorizon    bool
}

// Scan extracts Signals from text. Matching is case-insensitive.
func Scan(text string) Signals {
	text = strings.ToLower(text)

	var s Signals
	for _, m := range reYearRange.FindAllStringSubmatch(text, -1) {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if end >= start {
			s.YearRange = &YearRange{Start: start, End: end}
			break
		}
	}
	s.Years = firstCount(reYearCount, text)
	s.Months = firstCount(reMonthCount, text)
	s.Weeks = firstCount(reWeekCount, text)
	s.Sprints = firstCount(reSprintCount, text)
	s.QuarterPhrase = reQuarterPhrase.MatchString(text)
	s.FiscalYear = reFiscalYear.MatchString(text)
	s.SprintLanguage = reSprint.MatchString(text)
	s.LongHorizon = reLongHorizon.MatchString(text)
	return s
}

func firstCount(re *regexp.Regexp, text string) int {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if n := parseCount(m[1]); n > 0 {
			return n
		}
	}
	return 0
}

func parseCount(s string) int {
	if n, ok := numberWords[s]; ok {
		return n
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
