// Package registry talks to the public cadastral registry web service:
// it resolves logical operations into request URLs and performs the GETs.
package registry

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultBaseURL is the root of the public registry API.
const DefaultBaseURL = "http://rosreestr.ru/api/online"

// Operation names a logical registry request.
type Operation int

const (
	OpObjectByID Operation = iota
	OpObjectsByNumber
	OpObjectsByAddress
	OpMacroRegions
	OpSubRegions
)

// String returns the operation name used in logs, metrics and the journal.
func (op Operation) String() string {
	switch op {
	case OpObjectByID:
		return "object_by_id"
	case OpObjectsByNumber:
		return "objects_by_number"
	case OpObjectsByAddress:
		return "objects_by_address"
	case OpMacroRegions:
		return "macro_regions"
	case OpSubRegions:
		return "sub_regions"
	default:
		return "unknown"
	}
}

// placeholder is the single substitution point of every template.
const placeholder = "{param}"

var templates = map[Operation]string{
	OpObjectByID:       "/fir_object/" + placeholder,
	OpObjectsByNumber:  "/fir_objects/" + placeholder,
	OpObjectsByAddress: "/address/fir_objects?" + placeholder,
	OpMacroRegions:     "/macro_regions",
	OpSubRegions:       "/regions/" + placeholder,
}

// Resolver maps operations onto request URLs below a base URL.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	baseURL string
}

// NewResolver creates a Resolver. An empty baseURL selects DefaultBaseURL.
func NewResolver(baseURL string) *Resolver {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Resolver{baseURL: baseURL}
}

// BaseURL returns the registry root used by the resolver.
func (r *Resolver) BaseURL() string {
	return r.baseURL
}

// ByID resolves the object-by-id endpoint.
func (r *Resolver) ByID(id string) string {
	return r.expand(OpObjectByID, url.PathEscape(id))
}

// ByNumber resolves the search-by-number endpoint.
func (r *Resolver) ByNumber(number string) string {
	return r.expand(OpObjectsByNumber, url.PathEscape(number))
}

// ByAddress resolves the search-by-address endpoint. The query must already
// be encoded, see AddressQuery.Encode.
func (r *Resolver) ByAddress(query string) string {
	return r.expand(OpObjectsByAddress, query)
}

// MacroRegions resolves the macro-region listing endpoint.
func (r *Resolver) MacroRegions() string {
	return r.expand(OpMacroRegions, "")
}

// SubRegions resolves the child-region listing endpoint.
func (r *Resolver) SubRegions(parentID string) string {
	return r.expand(OpSubRegions, url.PathEscape(parentID))
}

func (r *Resolver) expand(op Operation, param string) string {
	return r.baseURL + strings.Replace(templates[op], placeholder, param, 1)
}

// AddressQuery holds the parameters of an address search. MacroRegionID is
// required; the rest are optional and omitted when empty.
type AddressQuery struct {
	MacroRegionID string
	RegionID      string
	SettlementID  string
	Street        string
	House         string
}

// Encode builds the query string with keys in the fixed order
// macroRegionId, regionId, settlementId, street, house. Values are NFC
// normalized and query-escaped. An empty MacroRegionID yields "".
func (q AddressQuery) Encode() string {
	if q.MacroRegionID == "" {
		return ""
	}

	pairs := []struct{ key, value string }{
		{"macroRegionId", q.MacroRegionID},
		{"regionId", q.RegionID},
		{"settlementId", q.SettlementID},
		{"street", q.Street},
		{"house", q.House},
	}

	var b strings.Builder
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(norm.NFC.String(p.value)))
	}
	return b.String()
}
