// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SerialType tags which identifier scheme a serial clause carries.
type SerialType string

const (
	SerialISBN SerialType = "ISBN"
	SerialISSN SerialType = "ISSN"
	SerialNone SerialType = ""
)

// SerialInfo is the parse result of one "serial number + medium + price"
// clause, e.g. "ISBN 978-1-4058-6246-2 (pbk.) : Unpriced". It is transient:
// produced by the serial-line parser and merged into a Record immediately.
type SerialInfo struct {
	// Type is the identifier scheme, or SerialNone for price-only clauses.
	Type SerialType `json:"type" yaml:"type"`

	// Number is the bare identifier with the type tag removed.
	Number string `json:"number" yaml:"number"`

	// Medium is the binding annotation found in parentheses, e.g. "pbk.".
	Medium string `json:"medium" yaml:"medium"`

	// Price is the price amount with the currency token removed. It may be
	// non-numeric text such as "Unpriced".
	Price string `json:"price" yaml:"price"`

	// Currency is the matched currency token, empty when none matched.
	Currency string `json:"currency" yaml:"currency"`
}
