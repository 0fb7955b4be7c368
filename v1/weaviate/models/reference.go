package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
)

const beaconPrefix = "weaviate://localhost/"

// Beacon is the wire form of a reference target.
type Beacon struct {
	Beacon string `json:"beacon"`
}

// NewBeacon points at the object id of class. An empty class produces the
// legacy class-less form.
func NewBeacon(class string, id strfmt.UUID) Beacon {
	if class == "" {
		return Beacon{Beacon: beaconPrefix + id.String()}
	}
	return Beacon{Beacon: beaconPrefix + class + "/" + id.String()}
}

// ParseBeacon splits a beacon into its class and id.
func ParseBeacon(beacon string) (class string, id strfmt.UUID, err error) {
	rest, ok := strings.CutPrefix(beacon, beaconPrefix)
	if !ok {
		return "", "", fmt.Errorf("beacon %q does not start with %q", beacon, beaconPrefix)
	}
	parts := strings.Split(rest, "/")
	switch len(parts) {
	case 1:
		return "", strfmt.UUID(parts[0]), nil
	case 2:
		return parts[0], strfmt.UUID(parts[1]), nil
	default:
		return "", "", fmt.Errorf("beacon %q has %d segments", beacon, len(parts))
	}
}

// Reference is a directed cross-reference from a property of one object to
// another object. Its JSON form is the batch reference body
//
//	{"from": "weaviate://localhost/{fromClass}/{fromID}/{property}",
//	 "to":   "weaviate://localhost/{toClass}/{toID}"}
type Reference struct {
	FromClass string
	FromID    strfmt.UUID
	Property  string
	ToClass   string
	ToID      strfmt.UUID
	Tenant    string
}

// NewReference links property of one object to another object.
func NewReference(fromClass string, fromID strfmt.UUID, property, toClass string, toID strfmt.UUID) Reference {
	return Reference{
		FromClass: fromClass,
		FromID:    fromID,
		Property:  property,
		ToClass:   toClass,
		ToID:      toID,
	}
}

// WithTenant sets the tenant of the source object.
func (r Reference) WithTenant(tenant string) Reference {
	r.Tenant = tenant
	return r
}

// Beacon returns the target of r.
func (r Reference) Beacon() Beacon {
	return NewBeacon(r.ToClass, r.ToID)
}

func (r Reference) from() string {
	return beaconPrefix + r.FromClass + "/" + r.FromID.String() + "/" + r.Property
}

// Validate requires both ends, the property and valid ids.
func (r Reference) Validate() error {
	if r.FromClass == "" {
		return errors.New("reference source class is empty")
	}
	if r.Property == "" {
		return errors.New("reference property is empty")
	}
	if err := ValidateID(r.FromID); err != nil {
		return fmt.Errorf("reference source: %w", err)
	}
	if err := ValidateID(r.ToID); err != nil {
		return fmt.Errorf("reference target: %w", err)
	}
	return nil
}

type batchReference struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Tenant string `json:"tenant,omitempty"`
}

func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(batchReference{From: r.from(), To: r.Beacon().Beacon, Tenant: r.Tenant})
}

func (r *Reference) UnmarshalJSON(data []byte) error {
	var br batchReference
	if err := json.Unmarshal(data, &br); err != nil {
		return err
	}

	rest, ok := strings.CutPrefix(br.From, beaconPrefix)
	if !ok {
		return fmt.Errorf("reference source %q does not start with %q", br.From, beaconPrefix)
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return fmt.Errorf("reference source %q must be class/id/property", br.From)
	}
	toClass, toID, err := ParseBeacon(br.To)
	if err != nil {
		return err
	}

	*r = Reference{
		FromClass: parts[0],
		FromID:    strfmt.UUID(parts[1]),
		Property:  parts[2],
		ToClass:   toClass,
		ToID:      toID,
		Tenant:    br.Tenant,
	}
	return nil
}
