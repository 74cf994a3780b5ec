// Package decode converts the raw bytes of a memory dump into typed values
// keyed by their dump label.
package decode

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrodump/internal/dump"
	"github.com/retroenv/retrodump/internal/layout"
	"github.com/retroenv/retrodump/internal/tables"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Engine decodes dumps of a specific memory layout.
type Engine struct {
	logger *log.Logger
	tables *tables.Set
	layout layout.Layout
}

// New returns a decoding engine. The table set is only read.
func New(logger *log.Logger, tbls *tables.Set, lay layout.Layout) *Engine {
	return &Engine{
		logger: logger,
		tables: tbls,
		layout: lay,
	}
}

// Decode decodes all entries of a dump into the flat label mapping.
// It fails if an address of a fixed multi byte field is missing.
func (e *Engine) Decode(entries []dump.Entry) (*Values, error) {
	if err := e.checkRequiredAddresses(entries); err != nil {
		return nil, err
	}

	fixed, err := e.extractFixedFields(dump.NewIndex(entries))
	if err != nil {
		return nil, err
	}

	values := NewValues()
	var decoded int

	for _, entry := range entries {
		value := Int(int(entry.Raw))
		if rule, ok := match(entry.Label); ok {
			e.checkRuleAddress(rule, entry)

			result := rule.decode(ruleInput{entry: entry, fixed: fixed, tables: e.tables})
			if !result.Equal(value) {
				value = result
				decoded++
			}
		}
		values.Set(entry.Label, value, entry.Raw)
	}

	e.logger.Debug("Decoded dump",
		log.String("layout", e.layout.Revision),
		log.Int("entries", len(entries)),
		log.Int("labels", values.Len()),
		log.Int("decoded", decoded))

	return values, nil
}

// checkRequiredAddresses returns an error listing every required address
// of the layout that is not part of the dump.
func (e *Engine) checkRequiredAddresses(entries []dump.Entry) error {
	present := set.New[uint16]()
	for _, entry := range entries {
		present.Add(entry.Address)
	}

	missing := e.layout.RequiredAddresses().Difference(present)
	if missing.IsEmpty() {
		return nil
	}

	errs := make([]error, 0, missing.Size())
	for _, address := range set.Sorted(missing) {
		field, _ := e.layout.FieldOf(address)
		errs = append(errs, &dump.MissingAddressError{Field: field, Address: address})
	}
	return fmt.Errorf("%d required addresses missing: %w", len(errs), errors.Join(errs...))
}

func (e *Engine) extractFixedFields(idx *dump.Index) (*fixedFields, error) {
	l := e.layout
	fixed := &fixedFields{}

	money, err := idx.Bytes(layout.FieldMoney, l.Money[:]...)
	if err != nil {
		return nil, fmt.Errorf("reading money: %w", err)
	}
	copy(fixed.money[:], money)

	chips, err := idx.Bytes(layout.FieldCasinoChips, l.CasinoChips[:]...)
	if err != nil {
		return nil, fmt.Errorf("reading casino chips: %w", err)
	}
	copy(fixed.casinoChips[:], chips)

	fixed.trainerName, err = idx.Range(layout.FieldTrainerName, l.TrainerName.Base, l.TrainerName.Length)
	if err != nil {
		return nil, fmt.Errorf("reading trainer name: %w", err)
	}

	fixed.rivalName, err = idx.Range(layout.FieldRivalName, l.RivalName.Base, l.RivalName.Length)
	if err != nil {
		return nil, fmt.Errorf("reading rival name: %w", err)
	}

	return fixed, nil
}

// checkRuleAddress logs labels of fixed fields that are carried by an
// unexpected address, the decoded value does not depend on it.
func (e *Engine) checkRuleAddress(rule Rule, entry dump.Entry) {
	var expected uint16
	switch rule.Name {
	case RuleMoney:
		expected = e.layout.Money[0]
	case RuleCasinoChips:
		expected = e.layout.CasinoChips[0]
	case RuleBadges:
		expected = e.layout.Badges
	default:
		return
	}

	if entry.Address != expected {
		e.logger.Debug("Label found at unexpected address",
			log.String("label", entry.Label),
			log.Hex("address", entry.Address),
			log.Hex("expected", expected))
	}
}
