package dialogue

import (
	"regexp"
	"strconv"
	"strings"
)

// Extraction carries whatever a single message yielded. Zero values mean the
// field was not mentioned; several fields may be filled by one message.
type Extraction struct {
	Destination   string
	Budget        int
	DurationDays  int
	Travelers     int
	Departure     string
	Accommodation string
	TravelStyle   string
}

func (x Extraction) Empty() bool {
	return x.Destination == "" && x.Budget == 0 && x.DurationDays == 0 &&
		x.Travelers == 0 && x.Departure == "" && x.Accommodation == "" && x.TravelStyle == ""
}

// Extractor runs the per-field matchers over raw message text. Extraction
// never fails: an unparsable message just yields an empty Extraction.
type Extractor struct {
	destinations []string
	destPatterns []*regexp.Regexp
}

func NewExtractor(destinations []string) *Extractor {
	e := &Extractor{destinations: destinations}
	for _, d := range destinations {
		e.destPatterns = append(e.destPatterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(d)+`\b`))
	}
	return e
}

var (
	// The digit run after a currency symbol must be captured whole,
	// commas included: £2,000 is 2000, never 2.
	amountSymbolRe = regexp.MustCompile(`[£$€]\s*([0-9][0-9,]*)`)
	amountWordRe   = regexp.MustCompile(`(?i)\b([0-9][0-9,]*)\s*(?:pounds?|quid|gbp|dollars?|bucks|usd|euros?|eur)\b`)

	durationDaysRe  = regexp.MustCompile(`(?i)\b([0-9]+)\s*(?:-\s*)?(?:days?|nights?)\b`)
	durationWeeksRe = regexp.MustCompile(`(?i)\b([0-9]+)\s*(?:-\s*)?weeks?\b`)
	oneWeekRe       = regexp.MustCompile(`(?i)\ba week\b`)
	fortnightRe     = regexp.MustCompile(`(?i)\ba fortnight\b`)

	travelerCountRe = regexp.MustCompile(`(?i)\b([0-9]+)\s*(?:people|persons?|adults?|travell?ers|guests?|pax|of us)\b`)
	familyOfRe      = regexp.MustCompile(`(?i)\bfamily of\s+([0-9]+)\b`)
	soloRe          = regexp.MustCompile(`(?i)\b(?:just me|only me|solo|by myself|on my own|travell?ing alone)\b`)
	coupleRe        = regexp.MustCompile(`(?i)\b(?:a couple|my partner|my wife|my husband|two of us|both of us)\b`)

	departureRe = regexp.MustCompile(`(?i)\b(?:flying|departing|leaving|travell?ing)?\s*from\s+([a-zA-Z][a-zA-Z .'-]{1,40})`)
)

// departureStop ends the free-text capture after "from ...".
var departureStop = map[string]bool{
	"to": true, "on": true, "in": true, "for": true, "with": true,
	"and": true, "next": true, "this": true, "the": true, "at": true,
}

var accommodationTiers = []struct {
	tier     string
	keywords []string
}{
	{"luxury", []string{"luxury", "5-star", "five star", "five-star", "high-end", "upscale"}},
	{"boutique", []string{"boutique"}},
	{"budget", []string{"hostel", "budget", "cheap", "backpack"}},
	{"apartment", []string{"apartment", "airbnb", "self-catering", "flat"}},
	{"hotel", []string{"hotel", "mid-range", "midrange", "3-star", "three star"}},
}

var travelStyles = []struct {
	style    string
	keywords []string
}{
	{"relaxed", []string{"relaxed", "relaxing", "chill", "laid-back", "laid back", "slow pace", "easy pace"}},
	{"adventure", []string{"adventure", "adventurous", "active", "adrenaline", "hiking"}},
	{"cultural", []string{"cultural", "culture", "history", "museums"}},
	{"romantic", []string{"romantic", "honeymoon"}},
}

// Extract runs every field matcher against the message.
func (e *Extractor) Extract(text string) Extraction {
	var x Extraction
	lower := strings.ToLower(text)

	for i, re := range e.destPatterns {
		if re.MatchString(text) {
			x.Destination = e.destinations[i]
			break
		}
	}

	if m := amountSymbolRe.FindStringSubmatch(text); m != nil {
		x.Budget = parseAmount(m[1])
	} else if m := amountWordRe.FindStringSubmatch(text); m != nil {
		x.Budget = parseAmount(m[1])
	}

	if m := durationDaysRe.FindStringSubmatch(text); m != nil {
		x.DurationDays, _ = strconv.Atoi(m[1])
	} else if m := durationWeeksRe.FindStringSubmatch(text); m != nil {
		if weeks, err := strconv.Atoi(m[1]); err == nil {
			x.DurationDays = weeks * 7
		}
	} else if fortnightRe.MatchString(lower) {
		x.DurationDays = 14
	} else if oneWeekRe.MatchString(lower) {
		x.DurationDays = 7
	}

	if m := travelerCountRe.FindStringSubmatch(text); m != nil {
		x.Travelers, _ = strconv.Atoi(m[1])
	} else if m := familyOfRe.FindStringSubmatch(text); m != nil {
		x.Travelers, _ = strconv.Atoi(m[1])
	} else if soloRe.MatchString(lower) {
		x.Travelers = 1
	} else if coupleRe.MatchString(lower) {
		x.Travelers = 2
	}

	if m := departureRe.FindStringSubmatch(text); m != nil {
		dep := trimDeparture(m[1])
		// "from Italy" names the destination, not the departure point
		if dep != "" && !strings.EqualFold(dep, x.Destination) {
			x.Departure = dep
		}
	}

	for _, tier := range accommodationTiers {
		if containsAny(lower, tier.keywords) {
			x.Accommodation = tier.tier
			break
		}
	}

	for _, st := range travelStyles {
		if containsAny(lower, st.keywords) {
			x.TravelStyle = st.style
			break
		}
	}

	return x
}

func parseAmount(raw string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func trimDeparture(raw string) string {
	words := strings.Fields(strings.Trim(raw, " .,!?"))
	var kept []string
	for _, w := range words {
		if departureStop[strings.ToLower(w)] || len(kept) == 3 {
			break
		}
		kept = append(kept, titleWord(strings.Trim(w, ".,!?")))
	}
	return strings.Join(kept, " ")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

var prefSplitRe = regexp.MustCompile(`(?i)\s*(?:,|;|/|\band\b|&)\s*`)

// prefNoise strips filler so "I really love food and history" becomes the
// tags [food, history].
var prefNoise = map[string]bool{
	"i": true, "we": true, "like": true, "love": true, "enjoy": true,
	"really": true, "mostly": true, "maybe": true, "some": true, "the": true,
	"a": true, "lots": true, "of": true, "to": true, "am": true, "into": true,
	"stuff": true, "things": true, "please": true, "definitely": true,
}

// ParsePreferenceTags turns a free-text preference answer into tags. An
// answer with nothing usable yields no tags, which is fine: the sub-flow
// question still advances.
func ParsePreferenceTags(text string) []string {
	var tags []string
	for _, part := range prefSplitRe.Split(strings.ToLower(text), -1) {
		words := strings.Fields(strings.Trim(part, " .,!?"))
		var kept []string
		for _, w := range words {
			if !prefNoise[w] {
				kept = append(kept, w)
			}
		}
		if len(kept) == 0 || len(kept) > 3 {
			continue
		}
		tags = append(tags, strings.Join(kept, " "))
		if len(tags) == 6 {
			break
		}
	}
	return tags
}
