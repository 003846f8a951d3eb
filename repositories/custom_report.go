package repositories

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// deniedKeywords are rejected anywhere in a custom report query.
var deniedKeywords = []string{"DROP", "DELETE", "UPDATE", "INSERT", "ALTER", "CREATE", "TRUNCATE"}

// ValidateCustomQuery applies the SELECT-only gate to a free-form report
// query: after trimming, the upper-cased text must begin with SELECT and
// contain none of the denied keywords as substrings.
//
// This is a denylist over the raw text, not a SQL parser, and it is a
// known-weak boundary: comments, casts and multi-statement payloads can
// slip past substring matching. Running the endpoint under a read-only
// database credential is the real containment.
func ValidateCustomQuery(query string) error {
	upper := strings.ToUpper(strings.TrimSpace(query))
	if upper == "" {
		return fmt.Errorf("query is required")
	}
	if !strings.HasPrefix(upper, "SELECT") {
		return fmt.Errorf("only SELECT queries are allowed")
	}
	for _, keyword := range deniedKeywords {
		if strings.Contains(upper, keyword) {
			return fmt.Errorf("query contains forbidden keyword %s", keyword)
		}
	}
	return nil
}

// RunCustomReport executes a validated free-form query and returns its
// rows as field-named maps. The query text is the documented exception to
// the bound-parameters rule; ValidateCustomQuery must pass first.
func RunCustomReport(db *gorm.DB, query string) ([]map[string]interface{}, error) {
	if err := ValidateCustomQuery(query); err != nil {
		return nil, err
	}
	rows := []map[string]interface{}{}
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
