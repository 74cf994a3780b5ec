package decode

import (
	"strings"

	"github.com/retroenv/retrodump/internal/dump"
	"github.com/retroenv/retrodump/internal/tables"
)

// Rule names.
const (
	RuleMoney       = "money"
	RuleCasinoChips = "casino chips"
	RuleBadges      = "badges"
	RuleTrainerName = "trainer name"
	RuleRivalName   = "rival name"
	RuleMove        = "move"
	RuleType        = "type"
	RuleItemID      = "item id"
	RuleStatus      = "status"
	RuleFlag        = "flag"
	RuleRaw         = "raw"
)

// fixedFields are the multi byte fields read from fixed addresses of the
// layout before the entries are classified.
type fixedFields struct {
	money       [3]byte
	casinoChips [2]byte
	trainerName []byte
	rivalName   []byte
}

// ruleInput is passed to the decoder of a matched rule.
type ruleInput struct {
	entry  dump.Entry
	fixed  *fixedFields
	tables *tables.Set
}

// Rule maps dump labels matched by a predicate to a decoder.
type Rule struct {
	Name   string
	Match  func(label string) bool
	decode func(in ruleInput) Value
}

var flagPrefixes = []string{"Fought ", "Defeated ", "Have "}

// IsFlagLabel returns whether the label names a boolean event flag.
func IsFlagLabel(label string) bool {
	for _, prefix := range flagPrefixes {
		if strings.HasPrefix(label, prefix) {
			return true
		}
	}
	return strings.HasSuffix(label, " gone")
}

func labelIs(s string) func(string) bool {
	return func(label string) bool { return label == s }
}

func labelHasPrefix(s string) func(string) bool {
	return func(label string) bool { return strings.HasPrefix(label, s) }
}

func labelHasSuffix(s string) func(string) bool {
	return func(label string) bool { return strings.HasSuffix(label, s) }
}

func labelContains(s string) func(string) bool {
	return func(label string) bool { return strings.Contains(label, s) }
}

// rules in precedence order, the first matching rule decodes the entry.
var rules = []Rule{
	{
		Name:  RuleMoney,
		Match: labelIs("Money[1]"),
		decode: func(in ruleInput) Value {
			m := in.fixed.money
			return Int(PackedBCD3(m[0], m[1], m[2]))
		},
	},
	{
		Name:  RuleCasinoChips,
		Match: labelIs("Casino Chips[1]"),
		decode: func(in ruleInput) Value {
			c := in.fixed.casinoChips
			return Int(PackedBCD2(c[0], c[1]))
		},
	},
	{
		Name:  RuleBadges,
		Match: labelIs("Badges Bitfield"),
		decode: func(in ruleInput) Value {
			return List(Badges(in.entry.Raw))
		},
	},
	{
		Name:  RuleTrainerName,
		Match: labelHasPrefix("Trainer Name"),
		decode: func(in ruleInput) Value {
			return String(FixedString(in.tables.Charset, in.fixed.trainerName))
		},
	},
	{
		Name:  RuleRivalName,
		Match: labelHasPrefix("Rival Name"),
		decode: func(in ruleInput) Value {
			return String(FixedString(in.tables.Charset, in.fixed.rivalName))
		},
	},
	{
		Name:  RuleMove,
		Match: labelContains("Move"),
		decode: func(in ruleInput) Value {
			return String(in.tables.Moves.Lookup(int(in.entry.Raw)))
		},
	},
	{
		Name:  RuleType,
		Match: labelContains("Type"),
		decode: func(in ruleInput) Value {
			return String(in.tables.Types.Lookup(int(in.entry.Raw)))
		},
	},
	{
		Name:  RuleItemID,
		Match: labelHasSuffix("ID"),
		decode: func(in ruleInput) Value {
			return String(in.tables.Items.Lookup(int(in.entry.Raw)))
		},
	},
	{
		Name:  RuleStatus,
		Match: labelHasSuffix("Status"),
		decode: func(in ruleInput) Value {
			return List(StatusFlags(in.entry.Raw))
		},
	},
	{
		Name:  RuleFlag,
		Match: IsFlagLabel,
		decode: func(in ruleInput) Value {
			return Bool(in.entry.Raw != 0)
		},
	},
}

// Rules returns the names of all decoding rules in precedence order.
func Rules() []string {
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = rule.Name
	}
	return names
}

// Classify returns the name of the rule that decodes the label, or
// RuleRaw if the raw byte is kept.
func Classify(label string) string {
	if rule, ok := match(label); ok {
		return rule.Name
	}
	return RuleRaw
}

func match(label string) (Rule, bool) {
	for _, rule := range rules {
		if rule.Match(label) {
			return rule, true
		}
	}
	return Rule{}, false
}
