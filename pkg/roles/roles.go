package roles

import (
	"database/sql/driver"
	"fmt"
	"leaguecatalog/pkg/apperrors"
	"leaguecatalog/pkg/messages"
	"strings"
)

// Role is one of the lanes a champion can be played in.
type Role string

const (
	Solo    Role = "SOLO"
	Jungle  Role = "JUNGLE"
	Mid     Role = "MID"
	Adc     Role = "ADC"
	Support Role = "SUPPORT"
)

// All lists the accepted roles, in the same order as the database enum.
var All = []Role{Solo, Jungle, Mid, Adc, Support}

// IsValid reports whether r is part of the role enum.
func (r Role) IsValid() bool {
	switch r {
	case Solo, Jungle, Mid, Adc, Support:
		return true
	}
	return false
}

// Roles is an ordered role list stored as a postgres champion_role[] column.
type Roles []Role

// Parse splits a comma separated role list, trimming each entry.
// Order and duplicates are preserved.
func Parse(csv string) (Roles, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, apperrors.InvalidInput(messages.InvalidRoles)
	}

	parts := strings.Split(csv, ",")
	parsed := make(Roles, 0, len(parts))
	var invalid []string

	for _, part := range parts {
		role := Role(strings.TrimSpace(part))
		if !role.IsValid() {
			invalid = append(invalid, string(role))
			continue
		}
		parsed = append(parsed, role)
	}

	if len(invalid) > 0 {
		return nil, &apperrors.Error{
			Kind:    apperrors.KindInvalidInput,
			Message: messages.InvalidRoles,
			Err:     fmt.Errorf("unknown roles %q", invalid),
		}
	}

	return parsed, nil
}

// Value encodes the list as a postgres array literal.
func (r Roles) Value() (driver.Value, error) {
	values := make([]string, len(r))
	for i, role := range r {
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid role %q", role)
		}
		values[i] = string(role)
	}
	return "{" + strings.Join(values, ",") + "}", nil
}

// Scan decodes a postgres array literal such as {SOLO,MID}.
func (r *Roles) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("can't scan %T into roles", src)
	}

	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "{"), "}")
	if raw == "" {
		*r = Roles{}
		return nil
	}

	parts := strings.Split(raw, ",")
	scanned := make(Roles, len(parts))
	for i, part := range parts {
		scanned[i] = Role(strings.Trim(part, `"`))
	}

	*r = scanned
	return nil
}
