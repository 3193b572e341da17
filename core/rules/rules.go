// Package rules implements the numeric conversion rules between the source
// system and ETF: challenge-rating parsing and banding, hit-point scaling,
// ability-score algebra, and damage-to-hit-count conversion.
//
// Every function here is total: malformed input yields a documented default,
// never an error.
package rules

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var crPrefix = regexp.MustCompile(`(?i)^CR\s*`)

// ParseChallengeRating parses a challenge rating from text like "CR 1/8",
// "CR 1/2" or "CR 5". The leading marker is optional. Returns 0 when the
// value is missing, negative, or unparseable.
func ParseChallengeRating(text string) float64 {
	t := crPrefix.ReplaceAllString(strings.TrimSpace(text), "")

	if num, den, ok := strings.Cut(t, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0
		}
		if v := n / d; v > 0 {
			return v
		}
		return 0
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// LevelFromCR maps a challenge rating onto the ETF level band [1,10].
// The step table is monotonic and total.
func LevelFromCR(cr float64) int {
	switch {
	case cr <= 1:
		return 1
	case cr <= 3:
		return 2
	case cr <= 5:
		return 3
	case cr <= 7:
		return 4
	case cr <= 9:
		return 5
	case cr <= 11:
		return 6
	case cr <= 13:
		return 7
	case cr <= 15:
		return 8
	case cr <= 17:
		return 9
	default:
		return 10
	}
}

// ScaleHitPoints converts source hit points to ETF hit points: divide by 10
// and round up, never below 1.
func ScaleHitPoints(raw int) int {
	hp := (raw + 9) / 10
	if hp < 1 {
		return 1
	}
	return hp
}

// ScoreFromModifier converts an ability modifier to its score: mod*2 + 10.
func ScoreFromModifier(mod int) int {
	return mod*2 + 10
}

// ModifierFromScore converts an ability score to its modifier:
// floor((score-10)/2). Odd scores lose the half point; this is the exact
// inverse of ScoreFromModifier except at those rounding boundaries.
func ModifierFromScore(score int) int {
	return floorDiv(score-10, 2)
}

// Composite holds the three ETF ability modifiers derived from the six
// source modifiers.
type Composite struct {
	Fitness   int
	Insight   int
	Willpower int
}

// CompositeFromModifiers derives the ETF composite modifiers from the six
// source ability modifiers. Each composite score is the floored mean of its
// source scores: Fitness from STR/DEX/CON, Insight from INT/WIS, Willpower
// from WIS/CHA.
func CompositeFromModifiers(str, dex, con, intel, wis, cha int) Composite {
	fitness := floorDiv(ScoreFromModifier(str)+ScoreFromModifier(dex)+ScoreFromModifier(con), 3)
	insight := floorDiv(ScoreFromModifier(intel)+ScoreFromModifier(wis), 2)
	willpower := floorDiv(ScoreFromModifier(wis)+ScoreFromModifier(cha), 2)

	return Composite{
		Fitness:   ModifierFromScore(fitness),
		Insight:   ModifierFromScore(insight),
		Willpower: ModifierFromScore(willpower),
	}
}

// SaveDC converts a source attack bonus to an ETF Defense Save DC.
func SaveDC(attackBonus int) int {
	return 11 + attackBonus
}

// HitsFromDamage converts a dice damage expression to an abstract hit count:
// round(diceCount*dieSize/6), never below 1, plus round(bonus/6) when the
// bonus is positive. The bonus never reduces the dice-derived minimum.
//
// Weapon-attack damage never reaches this formula; it is fixed to 1 hit by
// the weapon-damage rewrite pass.
func HitsFromDamage(diceCount, dieSize, bonus int) int {
	hits := int(math.Round(float64(diceCount*dieSize) / 6.0))
	if hits < 1 {
		hits = 1
	}
	if bonus > 0 {
		hits += int(math.Round(float64(bonus) / 6.0))
	}
	return hits
}

// ParseModifier parses a signed modifier cell like "+3", "-2" or "0".
// Returns 0 for empty or unparseable text.
func ParseModifier(text string) int {
	t := strings.TrimSpace(text)
	if t == "" || t == "+" || t == "-" {
		return 0
	}
	t = strings.TrimPrefix(t, "+")
	v, err := strconv.Atoi(t)
	if err != nil {
		return 0
	}
	return v
}

// FormatModifier renders a modifier with an explicit sign: "+3", "+0", "-2".
func FormatModifier(mod int) string {
	if mod >= 0 {
		return "+" + strconv.Itoa(mod)
	}
	return strconv.Itoa(mod)
}

// floorDiv divides rounding toward negative infinity, unlike Go's
// truncating integer division.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
