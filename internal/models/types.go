package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Role is the job role of a user. Access rules key off these values.
type Role string

const (
	RoleDev     Role = "Dev"
	RoleQA      Role = "QA"
	RoleRMO     Role = "RMO"
	RoleTL      Role = "TL"
	RoleManager Role = "Manager"
)

// Roles lists every valid role value.
var Roles = []Role{RoleDev, RoleQA, RoleRMO, RoleTL, RoleManager}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// BadgeType splits awards into routine work and stretch objectives.
type BadgeType string

const (
	BadgeTypeWork      BadgeType = "work"
	BadgeTypeObjective BadgeType = "objective"
)

func (t BadgeType) Valid() bool {
	return t == BadgeTypeWork || t == BadgeTypeObjective
}

// SprintStatus is only changed by explicit start/complete actions.
type SprintStatus string

const (
	SprintUpcoming  SprintStatus = "upcoming"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

func (s SprintStatus) Valid() bool {
	return s == SprintUpcoming || s == SprintActive || s == SprintCompleted
}

// DateFormat is the wire and storage format for all date fields. ISO dates
// compare correctly as strings, which the sprint window queries rely on.
const DateFormat = "2006-01-02"

// Today returns the current date in storage format.
func Today() string {
	return time.Now().Format(DateFormat)
}

// StringList is a list column stored as JSON text, matching the schema's
// text-typed eligible_roles and goals columns.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

// Mapper is the serialization boundary every entity implements. FromMap
// counterparts live as package functions next to each entity.
type Mapper interface {
	ToMap() map[string]any
}
