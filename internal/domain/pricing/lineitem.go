package pricing

import (
	"errors"
	"strings"
)

// Titles owned by the occurrence synchronizer. Items carrying these titles
// are machine-generated and replaced wholesale on every resync; everything
// else is professional-authored and passes through untouched.
const (
	TitleBookingDetailsCost = "Booking Details Cost"
	TitleAdditionalPetRate  = "Additional Pet Rate"
)

var (
	ErrEmptyLineItemTitle   = errors.New("line item title is required")
	ErrDuplicateLineItem    = errors.New("line item titles must be unique per occurrence")
	ErrReservedLineItemEdit = errors.New("line item title is reserved for computed costs")
)

type LineItem struct {
	title       string
	description string
	amount      Money
}

// NewLineItem validates a professional-authored item: title required and not
// reserved, amount non-negative (fail closed at write time).
func NewLineItem(title, description string, amount Money) (LineItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return LineItem{}, ErrEmptyLineItemTitle
	}
	if IsSynchronizerTitle(title) {
		return LineItem{}, ErrReservedLineItemEdit
	}
	if amount.IsNegative() {
		return LineItem{}, ErrNegativeAmount
	}
	return LineItem{title: title, description: description, amount: amount}, nil
}

func ReconstructLineItem(title, description string, amount Money) LineItem {
	return LineItem{title: title, description: description, amount: amount}
}

func (li LineItem) Title() string       { return li.title }
func (li LineItem) Description() string { return li.description }
func (li LineItem) Amount() Money       { return li.amount }

func IsSynchronizerTitle(title string) bool {
	return title == TitleBookingDetailsCost || title == TitleAdditionalPetRate
}

// ReplaceSynchronizerItems removes every machine-owned item from items and
// appends computed in order. Professional-authored items keep their relative
// order. Remove-then-append, never a field-by-field merge.
func ReplaceSynchronizerItems(items []LineItem, computed []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items)+len(computed))
	for _, li := range items {
		if !IsSynchronizerTitle(li.title) {
			out = append(out, li)
		}
	}
	return append(out, computed...)
}

// ValidateUniqueTitles enforces per-occurrence title uniqueness.
func ValidateUniqueTitles(items []LineItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, li := range items {
		if _, dup := seen[li.title]; dup {
			return ErrDuplicateLineItem
		}
		seen[li.title] = struct{}{}
	}
	return nil
}

// LineItemRecord is the wire and storage shape of a line item. Amount is
// always the currency-prefixed decimal string, e.g. "$12.50".
type LineItemRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

func EncodeLineItems(items []LineItem) []LineItemRecord {
	records := make([]LineItemRecord, len(items))
	for i, li := range items {
		records[i] = LineItemRecord{
			Title:       li.title,
			Description: li.description,
			Amount:      li.amount.String(),
		}
	}
	return records
}

// DecodeLineItems parses stored records back into items, rejecting malformed
// amounts rather than coercing them.
func DecodeLineItems(records []LineItemRecord) ([]LineItem, error) {
	items := make([]LineItem, len(records))
	for i, rec := range records {
		amount, err := ParseMoney(rec.Amount)
		if err != nil {
			return nil, err
		}
		items[i] = LineItem{title: rec.Title, description: rec.Description, amount: amount}
	}
	if err := ValidateUniqueTitles(items); err != nil {
		return nil, err
	}
	return items, nil
}
