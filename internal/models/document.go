// Package models defines the typed entity graph produced by parsing an OFX
// document: sign-on data, accounts, statements and transactions.
package models

// HeaderField is a single key/value pair from the OFX header block.
type HeaderField struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Header is the ordered sequence of header fields preceding the <OFX> body.
// Duplicate keys are preserved in order; Get returns the last value written.
type Header []HeaderField

// Get returns the value for the given key, or an empty string when the key
// is absent. When a key appears more than once the last occurrence wins.
func (h Header) Get(key string) string {
	value := ""
	for _, f := range h {
		if f.Key == key {
			value = f.Value
		}
	}
	return value
}

// Has reports whether the header block contains the given key.
func (h Header) Has(key string) bool {
	for _, f := range h {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Document is the root of one parsed OFX message. It is constructed once per
// parse call and never mutated afterwards.
type Document struct {
	Header   Header    `json:"header" yaml:"header"`
	SignOn   SignOn    `json:"signOn" yaml:"signOn"`
	Accounts []Account `json:"accounts" yaml:"accounts"`
}

// Account returns the single parsed account as a convenience, or nil when
// the document holds zero or several accounts.
func (d *Document) Account() *Account {
	if len(d.Accounts) != 1 {
		return nil
	}
	return &d.Accounts[0]
}

// Transactions returns the banking transactions of the single account, or
// nil when the document does not hold exactly one account.
func (d *Document) Transactions() []Transaction {
	acct := d.Account()
	if acct == nil {
		return nil
	}
	return acct.Statement.Transactions
}
