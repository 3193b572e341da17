package rewrite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/remideboer/easytabletopfantasy/core/rules"
)

// --- Pass 1: attack bonus to Defense Save DC ---

var toHitRE = regexp.MustCompile(`\+(\d+)\s+to hit`)

// attackToDC replaces every "+N to hit" with "Defense Save DC <11+N>". The
// "Melee/Ranged Weapon Attack:" label is deliberately left in place here:
// the weapon-damage pass still needs it to classify the clause, and strips
// it when done.
func attackToDC(text string) string {
	return toHitRE.ReplaceAllStringFunc(text, func(m string) string {
		sub := toHitRE.FindStringSubmatch(m)
		bonus, err := strconv.Atoi(sub[1])
		if err != nil {
			return m
		}
		return fmt.Sprintf("Defense Save DC %d", rules.SaveDC(bonus))
	})
}

// --- Pass 2: weapon-damage override ---

// weaponWindow bounds how far past a weapon-attack marker the damage clause
// may sit. Unusually long intervening text can cause a miss; known
// approximation.
const weaponWindow = 400

var weaponMarkerRE = regexp.MustCompile(`(Melee|Ranged) Weapon Attack:\s*`)

// weaponHitRE matches a dice damage clause, with an optional secondary
// "plus" clause, as it appears after a weapon attack.
var weaponHitRE = regexp.MustCompile(
	`Hit:\s*\d+\s*\((\d+)d(\d+)(?:\s*[+-]\s*\d+)?\)\s*(\w+)\s+damage` +
		`(\s+plus\s+\d+\s*\((\d+)d(\d+)(?:\s*[+-]\s*\d+)?\)\s*(\w+)\s+damage)?`)

// weaponDamage fixes weapon-attack damage to exactly 1 hit per clause,
// regardless of dice. For each weapon marker it scans a bounded window for
// the nearest damage clause, rewrites it, and drops both the dice notation
// and the marker label. Non-weapon clauses are untouched.
func weaponDamage(text string) string {
	var b strings.Builder
	rest := text
	for {
		loc := weaponMarkerRE.FindStringIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:loc[0]])
		tail := rest[loc[1]:]

		window := tail
		if len(window) > weaponWindow {
			window = window[:weaponWindow]
		}

		m := weaponHitRE.FindStringSubmatchIndex(window)
		if m == nil {
			// No damage clause in range; drop only the marker label.
			rest = tail
			continue
		}

		b.WriteString(window[:m[0]])
		b.WriteString("Hit: 1 hit of ")
		b.WriteString(window[m[6]:m[7]])
		b.WriteString(" damage")
		if m[8] >= 0 {
			b.WriteString(" plus 1 hit of ")
			b.WriteString(window[m[14]:m[15]])
			b.WriteString(" damage")
		}
		rest = tail[m[1]:]
	}
	return b.String()
}

// --- Pass 3: general damage to abstract hits ---

// damageRE matches "D (XdY[+/-B]) type damage" with optional "Hit: " prefix
// and optional average value D. Weapon clauses are already gone by the time
// this pass runs, so everything left is spell or effect damage.
var damageRE = regexp.MustCompile(`(Hit:\s*)?(?:\d+\s*)?\((\d+)d(\d+)(?:\s*([+-])\s*(\d+))?\)\s*((\w+)\s+)?damage`)

func damageToHits(text string) string {
	return damageRE.ReplaceAllStringFunc(text, func(m string) string {
		sub := damageRE.FindStringSubmatch(m)
		count, _ := strconv.Atoi(sub[2])
		size, _ := strconv.Atoi(sub[3])
		bonus := 0
		if sub[5] != "" {
			bonus, _ = strconv.Atoi(sub[5])
			if sub[4] == "-" {
				bonus = -bonus
			}
		}

		hits := rules.HitsFromDamage(count, size, bonus)
		unit := "hits"
		if hits == 1 {
			unit = "hit"
		}

		var out strings.Builder
		out.WriteString(sub[1])
		fmt.Fprintf(&out, "%d %s of ", hits, unit)
		if sub[7] != "" {
			out.WriteString(sub[7] + " ")
		}
		out.WriteString("damage")
		return out.String()
	})
}

// --- Pass 4: ability names ---

type textRule struct {
	re   *regexp.Regexp
	repl string
}

// abilityNameRules maps the six source abilities onto the three ETF
// composites; codes first, then full names. Whole-word, case-insensitive.
var abilityNameRules = []textRule{
	{regexp.MustCompile(`(?i)\bSTR\b`), "FIT"},
	{regexp.MustCompile(`(?i)\bDEX\b`), "FIT"},
	{regexp.MustCompile(`(?i)\bCON\b`), "FIT"},
	{regexp.MustCompile(`(?i)\bINT\b`), "INS"},
	{regexp.MustCompile(`(?i)\bWIS\b`), "INS"},
	{regexp.MustCompile(`(?i)\bCHA\b`), "WIL"},
	{regexp.MustCompile(`(?i)\bStrength\b`), "Fitness"},
	{regexp.MustCompile(`(?i)\bDexterity\b`), "Fitness"},
	{regexp.MustCompile(`(?i)\bConstitution\b`), "Fitness"},
	{regexp.MustCompile(`(?i)\bIntelligence\b`), "Insight"},
	{regexp.MustCompile(`(?i)\bWisdom\b`), "Insight"},
	{regexp.MustCompile(`(?i)\bCharisma\b`), "Willpower"},
}

func abilityNames(text string) string {
	for _, r := range abilityNameRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

// --- Pass 5: terminology ---

// terminologyRules holds the fixed label replacements. The save-DC rules
// also accept already-composite codes so the pass is a no-op on converted
// text.
var terminologyRules = []textRule{
	{regexp.MustCompile(`(?i)\bActions\b`), "Moments"},
	{regexp.MustCompile(`(?i)\bopportunity attacks\b`), "reactions"},
	{regexp.MustCompile(`(?i)\bhalf the damage\b`), "half as much damage"},
	{regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+STR\s+save\b`), "DC ${1} FIT save"},
	{regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+DEX\s+save\b`), "DC ${1} FIT save"},
	{regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+CON\s+save\b`), "DC ${1} FIT save"},
	{regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+INT\s+save\b`), "DC ${1} INS save"},
	{regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+WIS\s+save\b`), "DC ${1} INS save"},
	{regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+CHA\s+save\b`), "DC ${1} WIL save"},
}

func terminology(text string) string {
	for _, r := range terminologyRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

// --- Pass 6: hit-point restamp ---

var hpStampRE = regexp.MustCompile(`(?i)<strong>Hit Points</strong>\s*(\d+)`)

// restampHitPoints replaces the literal hit-point value next to its label
// with the scaled ETF value, so the visible number matches the record.
func restampHitPoints(text string) string {
	return hpStampRE.ReplaceAllStringFunc(text, func(m string) string {
		sub := hpStampRE.FindStringSubmatch(m)
		raw, err := strconv.Atoi(sub[1])
		if err != nil {
			return m
		}
		return fmt.Sprintf("<strong>Hit Points</strong> %d", rules.ScaleHitPoints(raw))
	})
}
