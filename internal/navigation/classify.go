// Package navigation sorts subaction names into the buckets used to navigate
// a fighter's subaction pages.
package navigation

import (
	"strings"
	"unicode"
)

// Tag is the rule that claimed a subaction name.
type Tag string

const (
	TagLedge             Tag = "ledge-options"
	TagItem              Tag = "item"
	TagMisc              Tag = "misc"
	TagStun              Tag = "stun"
	TagSleep             Tag = "sleep"
	TagFinal             Tag = "finals"
	TagSwim              Tag = "swim"
	TagTrip              Tag = "trips"
	TagGlide             Tag = "glide"
	TagCrawl             Tag = "crawl"
	TagKnockdown         Tag = "knockdowns"
	TagAirCatch          Tag = "misc-air-catch"
	TagGrab              Tag = "grabs"
	TagItemThrow         Tag = "item-throw"
	TagFootstool         Tag = "footstool"
	TagMovement          Tag = "movement"
	TagSpecial           Tag = "specials"
	TagAttackEnd         Tag = "misc-attack-end"
	TagJab               Tag = "attacks-jab"
	TagTilt              Tag = "attacks-tilt"
	TagSmash             Tag = "attacks-smash"
	TagDash              Tag = "attacks-dash"
	TagAerial            Tag = "attacks-aerial"
	TagTaunt             Tag = "taunts"
	TagMovementSecondary Tag = "movement-secondary"
	TagTech              Tag = "wall-ceiling-tech"
	TagDodge             Tag = "dodges"
	TagNone              Tag = "none"
	TagDefault           Tag = "default-misc"
)

// Character specific subactions that would otherwise be caught by a
// generic rule further down.
var miscFragments = []string{"Lasso", "Fuwafuwa", "Hovering", "Transform", "Chanpon", "Ridley"}

var crawlFragments = []string{"SquatF", "SquatB", "Crawl"}

var movementKeywords = []string{"Walk", "Run", "Dash", "Turn", "Jump", "Squat", "Wait", "Ottotto", "Brake"}

type rule struct {
	tag   Tag
	match func(name string) bool
}

// rules is evaluated top to bottom and the first match wins. Later rules rely
// on earlier ones having claimed overlapping names, so order matters.
var rules = []rule{
	{TagLedge, contains("Cliff")},
	{TagItem, containsAny("Item", "Dragoon")},
	{TagMisc, containsAny(miscFragments...)},
	{TagStun, contains("FuraFura")},
	{TagSleep, contains("FuraSleep")},
	{TagFinal, contains("Final")},
	{TagSwim, contains("Swim")},
	{TagTrip, contains("Slip")},
	{TagGlide, contains("Glide")},
	{TagCrawl, containsAny(crawlFragments...)},
	{TagKnockdown, contains("Down")},
	{TagAirCatch, contains("AirCatch")},
	{TagGrab, func(n string) bool {
		return strings.Contains(n, "Catch") || (strings.HasPrefix(n, "Throw") && !strings.Contains(n, "Thrown"))
	}},
	{TagItemThrow, func(n string) bool {
		return strings.Contains(n, "Throw") && !strings.HasPrefix(n, "Throw") && !strings.Contains(n, "Thrown")
	}},
	{TagFootstool, contains("Step")},
	{TagMovement, containsAny("Fall", "Landing")},
	{TagSpecial, contains("Special")},
	{TagAttackEnd, contains("AttackEnd")},
	{"", contains("Attack")}, // resolved by classifyAttack
	{TagTaunt, containsAny("Appeal", "Win", "Lose")},
	{TagMovementSecondary, containsAny(movementKeywords...)},
	{TagTech, containsAny("Passive", "StopWall", "StopCeil")},
	{TagDodge, containsAny("Escape", "Guard")},
	{TagNone, func(n string) bool { return strings.HasPrefix(n, "_") || strings.Contains(n, "NONE") }},
}

// Classify returns the tag of a subaction name. It returns false only for an
// attack-named subaction that none of the attack rules recognise; such names
// belong to no bucket.
func Classify(name string) (Tag, bool) {
	for _, r := range rules {
		if !r.match(name) {
			continue
		}
		if r.tag == "" {
			return classifyAttack(name)
		}
		return r.tag, true
	}
	return TagDefault, true
}

// classifyAttack looks at the leading digit of the name: 1 is a jab, 3 a tilt
// and 4 a smash.
func classifyAttack(name string) (Tag, bool) {
	if strings.Contains(name, "Air") {
		return TagAerial, true
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, name)

	if digits == "" {
		if strings.Contains(name, "Dash") {
			return TagDash, true
		}
		return "", false
	}

	switch digits[0] {
	case '1':
		return TagJab, true
	case '3':
		return TagTilt, true
	case '4':
		return TagSmash, true
	default:
		return "", false
	}
}

func contains(sub string) func(string) bool {
	return func(n string) bool { return strings.Contains(n, sub) }
}

func containsAny(subs ...string) func(string) bool {
	return func(n string) bool {
		for _, s := range subs {
			if strings.Contains(n, s) {
				return true
			}
		}
		return false
	}
}
