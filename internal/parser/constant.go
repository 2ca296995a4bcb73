package parser

import "time"

// Log prefixes
const (
	LogPrefixParse   = "internal.parser.Parse"
	LogPrefixExtract = "internal.parser.Extract"
)

// Recognizer configuration
const (
	// maxScans bounds how many matches one text can yield per recognizer.
	maxScans = 32
	// dateDistance lets "lundi 15 janvier" resolve as one mention.
	dateDistance = 1
	// timeDistance keeps "14:00 15:00" as two mentions.
	timeDistance = 0
	// maxYearSpan is how far from today an explicit date may be.
	maxYearSpan = 100
)

// Confidence model
const (
	confidenceBase       = 0.5
	confidenceDates      = 0.2
	confidenceTimes      = 0.1
	confidenceRecurrence = 0.1
	confidencePassed     = 0.1
	confidencePenalty    = 0.1
)

// Recurrence values
const (
	PatternWeekly   = "weekly"
	PatternDaily    = "daily"
	FrequencyWeekly = "weekly"
	FrequencyDaily  = "daily"
)

// Fixed clock values used by constraints and checks.
const (
	clockNoon    = "12:00"
	clockEvening = "18:00"
)

// Verifier messages
const (
	MsgWeekdayMismatch    = "Date %s tombe un %s, pas un %s"
	MsgWeekdaySuggestion  = "Vérifier la correspondance entre le jour et la date %s"
	MsgWeekendMismatch    = "Date %s tombe en semaine alors que le texte demande le weekend"
	MsgWeekendSuggestion  = "Choisir un samedi ou un dimanche à la place de %s"
	MsgWeekdayClassError  = "Date %s tombe un weekend alors que le texte demande la semaine"
	MsgWeekdayClassSugg   = "Choisir un jour du lundi au vendredi à la place de %s"
	MsgOrderingConflict   = "Incohérence temporelle: avant doit être antérieur à après"
	MsgOrderingSuggestion = "Vérifier les bornes: avant %s et après %s ne laissent aucun créneau"
	MsgMorningConflict    = "Heure %s incompatible avec le matin"
	MsgMorningSuggestion  = "Choisir une heure avant 12:00"
	MsgAfternoonConflict  = "Heure %s incompatible avec l'après-midi"
	MsgAfternoonSugg      = "Choisir une heure entre 12:00 et 18:00"
	MsgEveningConflict    = "Heure %s incompatible avec le soir"
	MsgEveningSuggestion  = "Choisir une heure après 18:00"
)

// normalizeRules are applied in order after lowercasing and whitespace collapsing.
// The après-midi canonicalization must run before the midi rule.
var normalizeRules = []struct {
	Pattern string
	Replace string
}{
	{`’`, `'`},
	{`\b(\d{1,2})h(\d{2})\b`, `$1:$2`},
	{`\b(\d{1,2})h\b`, `$1:00`},
	{`\bapr[eè]s[ -]midi\b|\bapr[eè]m\b`, `après-midi`},
	{`(^|[^-\p{L}])midi($|[^\p{L}])`, `${1}12:00${2}`},
	{`\bminuit\b`, `00:00`},
	{`\bweek[ -]end(s?)\b`, `weekend$1`},
	{`\bfins? de semaine\b`, `weekend`},
	{`\bcette semaine\b`, `this week`},
	{`\b(?:la )?semaine (?:prochaine|suivante)\b`, `next week`},
}

// weekdayNames maps French and English weekday names to time.Weekday.
var weekdayNames = map[string]time.Weekday{
	"lundi":     time.Monday,
	"mardi":     time.Tuesday,
	"mercredi":  time.Wednesday,
	"jeudi":     time.Thursday,
	"vendredi":  time.Friday,
	"samedi":    time.Saturday,
	"dimanche":  time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// frenchWeekdays is indexed by time.Weekday.
var frenchWeekdays = [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var monthNames = map[string]time.Month{
	"janvier":   time.January,
	"january":   time.January,
	"février":   time.February,
	"fevrier":   time.February,
	"february":  time.February,
	"mars":      time.March,
	"march":     time.March,
	"avril":     time.April,
	"april":     time.April,
	"mai":       time.May,
	"may":       time.May,
	"juin":      time.June,
	"june":      time.June,
	"juillet":   time.July,
	"july":      time.July,
	"août":      time.August,
	"aout":      time.August,
	"august":    time.August,
	"septembre": time.September,
	"september": time.September,
	"octobre":   time.October,
	"october":   time.October,
	"novembre":  time.November,
	"november":  time.November,
	"décembre":  time.December,
	"decembre":  time.December,
	"december":  time.December,
}

var (
	weekdaysAll      = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	weekdaysWorkweek = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	weekdaysWeekend  = []time.Weekday{time.Saturday, time.Sunday}
)

// recurrenceRule maps a set of phrases to a repeating pattern.
type recurrenceRule struct {
	Phrases   []string
	Pattern   string
	Frequency string
	Weekdays  []time.Weekday
}

// recurrenceRules is scanned in order; the first matching rule wins.
// Longer phrases that contain shorter ones must come first.
var recurrenceRules = []recurrenceRule{
	{Phrases: []string{"tous les lundis", "chaque lundi", "les lundis", "every monday", "mondays"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: []time.Weekday{time.Monday}},
	{Phrases: []string{"tous les mardis", "chaque mardi", "les mardis", "every tuesday", "tuesdays"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: []time.Weekday{time.Tuesday}},
	{Phrases: []string{"tous les mercredis", "chaque mercredi", "les mercredis", "every wednesday", "wednesdays"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: []time.Weekday{time.Wednesday}},
	{Phrases: []string{"tous les jeudis", "chaque jeudi", "les jeudis", "every thursday", "thursdays"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: []time.Weekday{time.Thursday}},
	{Phrases: []string{"tous les vendredis", "chaque vendredi", "les vendredis", "every friday", "fridays"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: []time.Weekday{time.Friday}},
	{Phrases: []string{"tous les samedis", "chaque samedi", "les samedis", "every saturday", "saturdays"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: []time.Weekday{time.Saturday}},
	{Phrases: []string{"tous les dimanches", "chaque dimanche", "les dimanches", "every sunday", "sundays"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: []time.Weekday{time.Sunday}},
	{Phrases: []string{"tous les weekends", "chaque weekend", "les weekends", "every weekend", "weekends"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: weekdaysWeekend},
	{Phrases: []string{"tous les jours de semaine", "tous les jours ouvrables", "every weekday", "weekdays"}, Pattern: PatternWeekly, Frequency: FrequencyWeekly, Weekdays: weekdaysWorkweek},
	{Phrases: []string{"tous les jours", "chaque jour", "every day", "daily"}, Pattern: PatternDaily, Frequency: FrequencyDaily, Weekdays: weekdaysAll},
}

// constraintEffect is what one vocabulary entry contributes.
type constraintEffect struct {
	BeforeTime   string
	AfterTime    string
	WorkingHours bool
	WeekendsOnly bool
	WeekdaysOnly bool
}

// Day-period vocabulary, shared by constraints and checks.
const (
	morningWords   = `matin(?:ée|s)?|mornings?`
	afternoonWords = `après-midi|afternoons?`
	eveningWords   = `soir(?:ée|s)?|evenings?`
)

// constraintRules is applied in order; later entries overwrite the time bounds of earlier ones.
// Patterns match whole words only. Exclude, when set, disables the entry if that pattern also matches.
var constraintRules = []struct {
	Pattern string
	Exclude string
	Effect  constraintEffect
}{
	{Pattern: morningWords, Effect: constraintEffect{BeforeTime: clockNoon}},
	{Pattern: afternoonWords, Effect: constraintEffect{AfterTime: clockNoon, BeforeTime: clockEvening}},
	{Pattern: eveningWords, Effect: constraintEffect{AfterTime: clockEvening}},
	{Pattern: `heures de bureau|heures ouvrables|office hours|business hours`, Effect: constraintEffect{WorkingHours: true}},
	{Pattern: `weekends?`, Effect: constraintEffect{WeekendsOnly: true}},
	{Pattern: `semaines?`, Exclude: `weekends?`, Effect: constraintEffect{WeekdaysOnly: true}},
}

// durationRules turn an amount of some unit into minutes.
var durationRules = []struct {
	Pattern    string
	Multiplier int
}{
	{`\b(\d{1,3})\s*(?:minutes?|mins?|mn)\b`, 1},
	{`\b(\d{1,2})\s*(?:heures?|hours?|hrs?)\b`, 60},
	{`\b(?:pendant|durant|for|durée de)\s+(\d{1,2}):(\d{2})\b`, 0},
}

// fixedDurations are phrases with an implied amount.
var fixedDurations = []struct {
	Pattern string
	Minutes int
}{
	{`\bune demi-heure\b|\bhalf an hour\b`, 30},
	{`\bun quart d'heure\b|\ba quarter of an hour\b`, 15},
	{`\bune heure\b|\ban hour\b`, 60},
}
